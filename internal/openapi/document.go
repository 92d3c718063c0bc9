// Package openapi is the in-memory OpenAPI document builder plus its
// serialization to JSON/YAML and structural validation.
//
// The builder API below offers chained path/operation/param/body/response/
// schema construction, using a hand-rolled Document/Operation/Schema struct
// tree with custom MarshalJSON methods, rather than a generated OpenAPI
// client type.
package openapi

import "strings"

// Document is the root OpenAPI 3.0 document: top-level
// {openapi, info, paths, components: {schemas}}.
type Document struct {
	OpenAPI string
	Info    Info
	Servers []Server

	pathOrder []string
	paths     map[string]*PathItem

	Components *Components
}

// Info is the OpenAPI `info` object.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server is one entry of the OpenAPI `servers` array.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewDocument creates an empty document with title/version set and an
// initialized (empty) components.schemas container.
func NewDocument(title, version string) *Document {
	return &Document{
		OpenAPI:    "3.0.3",
		Info:       Info{Title: title, Version: version},
		paths:      make(map[string]*PathItem),
		Components: newComponents(),
	}
}

// Path returns (creating if absent) the PathItem for p, preserving
// first-seen order for deterministic serialization.
func (d *Document) Path(p string) *PathItem {
	item, ok := d.paths[p]
	if !ok {
		item = &PathItem{path: p, ops: make(map[string]*Operation)}
		d.paths[p] = item
		d.pathOrder = append(d.pathOrder, p)
	}
	return item
}

// Paths returns every path item in insertion order.
func (d *Document) Paths() []*PathItem {
	items := make([]*PathItem, len(d.pathOrder))
	for i, p := range d.pathOrder {
		items[i] = d.paths[p]
	}
	return items
}

// PathItem holds the operations registered against one route.
type PathItem struct {
	path    string
	opOrder []string
	ops     map[string]*Operation
}

// Path is the route string this item was created under.
func (pi *PathItem) Path() string { return pi.path }

// Operation returns (creating if absent) the Operation for method
// (case-insensitive; stored lower-case).
func (pi *PathItem) Operation(method string) *Operation {
	method = strings.ToLower(method)
	op, ok := pi.ops[method]
	if !ok {
		op = &Operation{
			RoutePath: pi.path,
			Method:    method,
			paramKeys: nil,
			params:    make(map[string]*Parameter),
			Responses: newResponses(),
		}
		pi.ops[method] = op
		pi.opOrder = append(pi.opOrder, method)
	}
	return op
}

// Operations returns every operation on this path item in insertion order.
func (pi *PathItem) Operations() []*Operation {
	ops := make([]*Operation, len(pi.opOrder))
	for i, m := range pi.opOrder {
		ops[i] = pi.ops[m]
	}
	return ops
}

// Operation is one HTTP method handler registered on a path.
type Operation struct {
	RoutePath string // the path string this operation was registered under
	Method    string
	tags      []string

	paramKeys []string
	params    map[string]*Parameter

	body *Parameter

	Responses *Responses
}

// Tags sets the operation's tags.
func (op *Operation) Tags(tags []string) *Operation {
	op.tags = tags
	return op
}

// TagList returns the operation's tags.
func (op *Operation) TagList() []string { return op.tags }

// Param returns (creating if absent) the Parameter named name at location
// (one of "query", "path", "header").
func (op *Operation) Param(name, location string) *Parameter {
	key := location + ":" + name
	p, ok := op.params[key]
	if !ok {
		p = &Parameter{Name: name, In: location}
		op.params[key] = p
		op.paramKeys = append(op.paramKeys, key)
	}
	return p
}

// Params returns every parameter in insertion order.
func (op *Operation) Params() []*Parameter {
	ps := make([]*Parameter, len(op.paramKeys))
	for i, k := range op.paramKeys {
		ps[i] = op.params[k]
	}
	return ps
}

// Body returns (creating if absent) the request-body parameter.
func (op *Operation) Body() *Parameter {
	if op.body == nil {
		op.body = &Parameter{In: "body"}
	}
	return op.body
}

// HasBody reports whether Body() was ever called.
func (op *Operation) HasBody() bool { return op.body != nil }

// ResponseOptions carries the Response(...) options object fields.
type ResponseOptions struct {
	StatusCode  string
	Description string
	Example     interface{}
	HasExample  bool
	Namespace   string
}

// Response registers (or updates) the response for opts.StatusCode,
// referencing typeName's materialized schema (empty typeName means no
// response body schema).
func (op *Operation) Response(typeName string, opts ResponseOptions) *Response {
	code := opts.StatusCode
	if code == "" {
		code = "200"
	}
	r := op.Responses.get(code)
	r.Description = opts.Description
	r.Example = opts.Example
	r.HasExample = opts.HasExample
	if typeName != "" {
		r.Schema = newSchema()
		r.Schema.Reference(typeName, false).Namespace(opts.Namespace)
	}
	return r
}

// ResponseWithSchema registers (or updates) the response for opts.StatusCode
// with an already-built schema fragment — used for response values that
// resolve to a primitive keyword type (`"x" as string`) rather than a named
// user type, which has no component schema to $ref. schema may be nil when
// the matched Response(...) call's value expression didn't match any
// recognized pattern.
func (op *Operation) ResponseWithSchema(schema *Schema, opts ResponseOptions) *Response {
	code := opts.StatusCode
	if code == "" {
		code = "200"
	}
	r := op.Responses.get(code)
	r.Description = opts.Description
	r.Example = opts.Example
	r.HasExample = opts.HasExample
	r.Schema = schema
	return r
}

// Parameter is a query/path/header parameter or (when In == "body") the
// request body.
type Parameter struct {
	Name     string
	In       string
	required bool
	schema   *Schema
}

// Required sets whether the parameter is required.
func (p *Parameter) Required(v bool) *Parameter {
	p.required = v
	return p
}

// IsRequired reports the parameter's required flag.
func (p *Parameter) IsRequired() bool { return p.required }

// Content is a pass-through step supporting a
// Parameter.content().schema() chain; OpenAPI's `content` wrapper has no
// state of its own in this model, only the schema it holds.
func (p *Parameter) Content() *Parameter { return p }

// Schema returns (creating if absent) the parameter/body's schema.
func (p *Parameter) Schema() *Schema {
	if p.schema == nil {
		p.schema = newSchema()
	}
	return p.schema
}

// Responses is the per-operation, insertion-ordered map of status code to
// Response.
type Responses struct {
	order  []string
	byCode map[string]*Response
}

func newResponses() *Responses {
	return &Responses{byCode: make(map[string]*Response)}
}

func (r *Responses) get(code string) *Response {
	resp, ok := r.byCode[code]
	if !ok {
		resp = &Response{}
		r.byCode[code] = resp
		r.order = append(r.order, code)
	}
	return resp
}

// Entries returns (code, *Response) pairs in insertion order.
func (r *Responses) Entries() []ResponseEntry {
	entries := make([]ResponseEntry, len(r.order))
	for i, code := range r.order {
		entries[i] = ResponseEntry{Code: code, Response: r.byCode[code]}
	}
	return entries
}

// ResponseEntry pairs a status code with its Response.
type ResponseEntry struct {
	Code     string
	Response *Response
}

// Response is one entry of an operation's `responses` map.
type Response struct {
	Description string
	Example     interface{}
	HasExample  bool
	Schema      *Schema
}

// Components is the document's components.schemas container.
type Components struct {
	order   []string
	schemas map[string]*Schema
}

func newComponents() *Components {
	return &Components{schemas: make(map[string]*Schema)}
}

// Schema returns (creating if absent) the named top-level component
// schema — idempotent create-or-get.
func (c *Components) Schema(name string) *Schema {
	s, ok := c.schemas[name]
	if !ok {
		s = newSchema()
		c.schemas[name] = s
		c.order = append(c.order, name)
	}
	return s
}

// Has reports whether name was already created in this Components.
func (c *Components) Has(name string) bool {
	_, ok := c.schemas[name]
	return ok
}

// Entries returns (name, *Schema) pairs in insertion order.
func (c *Components) Entries() []SchemaEntry {
	entries := make([]SchemaEntry, len(c.order))
	for i, name := range c.order {
		entries[i] = SchemaEntry{Name: name, Schema: c.schemas[name]}
	}
	return entries
}

// SchemaEntry pairs a component schema name with its Schema.
type SchemaEntry struct {
	Name   string
	Schema *Schema
}

// Schema is a tree-shaped OpenAPI schema fragment: {type, properties, items,
// $ref, format, required[]}.
type Schema struct {
	dataType string
	format   string

	ref       string
	refInline bool
	namespace string

	propOrder  []string
	properties map[string]*Schema
	required   []string

	items *Schema

	enum []interface{}
}

func newSchema() *Schema {
	return &Schema{}
}

// NewSchema exposes newSchema to sibling packages building schema fragments
// directly (the schema materializer).
func NewSchema() *Schema { return newSchema() }

// DataType sets the schema's `type` (e.g. "string", "number", "object",
// "array", "boolean").
func (s *Schema) DataType(t string) *Schema {
	s.dataType = t
	return s
}

// Type returns the schema's `type`.
func (s *Schema) Type() string { return s.dataType }

// Format sets the schema's `format` (e.g. "date-time").
func (s *Schema) Format(f string) *Schema {
	s.format = f
	return s
}

// FormatValue returns the schema's `format`.
func (s *Schema) FormatValue() string { return s.format }

// Reference turns this schema into a $ref to a component schema named name.
// inline is recorded for callers that need to distinguish an
// embedded-by-reference schema from a fully inlined one; the current
// serializer always emits a $ref when Reference was called.
func (s *Schema) Reference(name string, inline bool) *Schema {
	s.ref = name
	s.refInline = inline
	return s
}

// RefName returns the referenced component schema name, or "" if this schema
// is not a reference.
func (s *Schema) RefName() string { return s.ref }

// Namespace sets the namespace the referenced schema is grouped under.
func (s *Schema) Namespace(ns string) *Schema {
	s.namespace = ns
	return s
}

// NamespaceValue returns the configured namespace.
func (s *Schema) NamespaceValue() string { return s.namespace }

// Property returns (creating if absent) the named object property schema.
func (s *Schema) Property(name string) *Schema {
	if s.properties == nil {
		s.properties = make(map[string]*Schema)
	}
	p, ok := s.properties[name]
	if !ok {
		p = newSchema()
		s.properties[name] = p
		s.propOrder = append(s.propOrder, name)
	}
	return p
}

// MarkRequired records name as a required property of this (object) schema.
func (s *Schema) MarkRequired(name string) *Schema {
	for _, r := range s.required {
		if r == name {
			return s
		}
	}
	s.required = append(s.required, name)
	return s
}

// Properties returns (name, *Schema) pairs in insertion order.
func (s *Schema) Properties() []SchemaEntry {
	entries := make([]SchemaEntry, len(s.propOrder))
	for i, name := range s.propOrder {
		entries[i] = SchemaEntry{Name: name, Schema: s.properties[name]}
	}
	return entries
}

// RequiredProperties returns the required-property names.
func (s *Schema) RequiredProperties() []string { return s.required }

// Items returns (creating if absent) the array element schema.
func (s *Schema) Items() *Schema {
	if s.items == nil {
		s.items = newSchema()
	}
	return s.items
}

// ItemsSchema returns the array element schema, or nil.
func (s *Schema) ItemsSchema() *Schema { return s.items }

// SetEnum records the allowed literal values for an enum-backed schema.
func (s *Schema) SetEnum(values []interface{}) *Schema {
	s.enum = values
	return s
}

// EnumValues returns the schema's enum values, or nil if it isn't an enum.
func (s *Schema) EnumValues() []interface{} { return s.enum }

// RefPath computes the JSON-pointer $ref string for a referencing schema,
// honoring namespace grouping: a namespaced schema lives at
// components.schemas.<Namespace>.properties.<Name>.
func (s *Schema) RefPath() string {
	if s.ref == "" {
		return ""
	}
	if s.namespace != "" {
		return "#/components/schemas/" + s.namespace + "/properties/" + s.ref
	}
	return "#/components/schemas/" + s.ref
}
