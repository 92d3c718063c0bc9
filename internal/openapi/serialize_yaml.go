package openapi

import "gopkg.in/yaml.v3"

// yamlMapping builds a yaml.Node mapping with caller-controlled key order,
// the YAML-side counterpart of jsonObj. gopkg.in/yaml.v3's Node.Encode
// recurses through MarshalYAML on nested values, so ordering is preserved
// all the way down the document tree.
func yamlMapping(pairs ...yamlPair) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range pairs {
		if p.omit {
			continue
		}
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(p.key); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(p.val); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

type yamlPair struct {
	key  string
	val  interface{}
	omit bool
}

func field(key string, val interface{}) yamlPair { return yamlPair{key: key, val: val} }

func fieldIf(present bool, key string, val interface{}) yamlPair {
	return yamlPair{key: key, val: val, omit: !present}
}

// ToYAML serializes the document as YAML using gopkg.in/yaml.v3, honoring
// the same insertion-order-stable rendering as MarshalJSON.
func (d *Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(d)
}

func (d *Document) MarshalYAML() (interface{}, error) {
	paths, err := yamlMapping(pathPairs(d)...)
	if err != nil {
		return nil, err
	}
	pairs := []yamlPair{
		field("openapi", d.OpenAPI),
		field("info", d.Info),
	}
	if len(d.Servers) > 0 {
		pairs = append(pairs, field("servers", d.Servers))
	}
	pairs = append(pairs, field("paths", paths), field("components", d.Components))
	return yamlMapping(pairs...)
}

func pathPairs(d *Document) []yamlPair {
	pairs := make([]yamlPair, 0, len(d.pathOrder))
	for _, p := range d.pathOrder {
		pairs = append(pairs, field(p, d.paths[p]))
	}
	return pairs
}

func (pi *PathItem) MarshalYAML() (interface{}, error) {
	pairs := make([]yamlPair, 0, len(pi.opOrder))
	for _, m := range pi.opOrder {
		pairs = append(pairs, field(m, pi.ops[m]))
	}
	return yamlMapping(pairs...)
}

func (op *Operation) MarshalYAML() (interface{}, error) {
	var pairs []yamlPair
	if len(op.tags) > 0 {
		pairs = append(pairs, field("tags", op.tags))
	}
	if len(op.paramKeys) > 0 {
		params := make([]*Parameter, 0, len(op.paramKeys))
		for _, k := range op.paramKeys {
			params = append(params, op.params[k])
		}
		pairs = append(pairs, field("parameters", params))
	}
	if op.body != nil {
		content, err := yamlMapping(field("application/json", mustMapping(field("schema", op.body.Schema()))))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, field("requestBody", mustMapping(field("content", content), field("required", op.body.required))))
	}
	pairs = append(pairs, field("responses", op.Responses))
	return yamlMapping(pairs...)
}

// mustMapping wraps yamlMapping for call sites nested inside another
// MarshalYAML where a build error would already be unrecoverable input
// corruption (e.g. a non-serializable Go value was placed in the document).
func mustMapping(pairs ...yamlPair) *yaml.Node {
	n, err := yamlMapping(pairs...)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *Parameter) MarshalYAML() (interface{}, error) {
	return yamlMapping(
		field("name", p.Name),
		field("in", p.In),
		field("required", p.required),
		field("schema", p.Schema()),
	)
}

func (r *Responses) MarshalYAML() (interface{}, error) {
	pairs := make([]yamlPair, 0, len(r.order))
	for _, code := range r.order {
		pairs = append(pairs, field(code, r.byCode[code]))
	}
	return yamlMapping(pairs...)
}

func (r *Response) MarshalYAML() (interface{}, error) {
	pairs := []yamlPair{field("description", r.Description)}
	if r.Schema != nil {
		content, err := yamlMapping(field("application/json", mustMapping(field("schema", r.Schema))))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, field("content", content))
	}
	if r.HasExample {
		pairs = append(pairs, field("example", r.Example))
	}
	return yamlMapping(pairs...)
}

func (c *Components) MarshalYAML() (interface{}, error) {
	pairs := make([]yamlPair, 0, len(c.order))
	for _, name := range c.order {
		pairs = append(pairs, field(name, c.schemas[name]))
	}
	schemas, err := yamlMapping(pairs...)
	if err != nil {
		return nil, err
	}
	return yamlMapping(field("schemas", schemas))
}

func (s *Schema) MarshalYAML() (interface{}, error) {
	if s.ref != "" {
		return yamlMapping(field("$ref", s.RefPath()))
	}
	var pairs []yamlPair
	if s.dataType != "" {
		pairs = append(pairs, field("type", s.dataType))
	}
	if s.format != "" {
		pairs = append(pairs, field("format", s.format))
	}
	if len(s.propOrder) > 0 {
		propPairs := make([]yamlPair, 0, len(s.propOrder))
		for _, name := range s.propOrder {
			propPairs = append(propPairs, field(name, s.properties[name]))
		}
		props, err := yamlMapping(propPairs...)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, field("properties", props))
	}
	if len(s.required) > 0 {
		pairs = append(pairs, field("required", s.required))
	}
	if s.items != nil {
		pairs = append(pairs, field("items", s.items))
	}
	if len(s.enum) > 0 {
		pairs = append(pairs, field("enum", s.enum))
	}
	return yamlMapping(pairs...)
}
