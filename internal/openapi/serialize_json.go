package openapi

// MarshalJSON renders the document as an OpenAPI 3.0 JSON document with
// stable key ordering (insertion order for paths/operations/schemas/
// properties), so that repeated generation runs on the same input are
// byte-identical.
func (d *Document) MarshalJSON() ([]byte, error) {
	obj := newJSONObj().set("openapi", d.OpenAPI).set("info", d.Info)
	if len(d.Servers) > 0 {
		obj.set("servers", d.Servers)
	}
	paths := newJSONObj()
	for _, p := range d.pathOrder {
		paths.set(p, d.paths[p])
	}
	obj.set("paths", paths)
	obj.set("components", d.Components)
	return obj.MarshalJSON()
}

func (pi *PathItem) MarshalJSON() ([]byte, error) {
	obj := newJSONObj()
	for _, m := range pi.opOrder {
		obj.set(m, pi.ops[m])
	}
	return obj.MarshalJSON()
}

func (op *Operation) MarshalJSON() ([]byte, error) {
	obj := newJSONObj()
	if len(op.tags) > 0 {
		obj.set("tags", op.tags)
	}
	if len(op.paramKeys) > 0 {
		params := make([]*Parameter, 0, len(op.paramKeys))
		for _, k := range op.paramKeys {
			params = append(params, op.params[k])
		}
		obj.set("parameters", params)
	}
	if op.body != nil {
		content := newJSONObj().set("application/json", newJSONObj().set("schema", op.body.Schema()))
		obj.set("requestBody", newJSONObj().set("content", content).set("required", op.body.required))
	}
	obj.set("responses", op.Responses)
	return obj.MarshalJSON()
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	obj := newJSONObj().set("name", p.Name).set("in", p.In).set("required", p.required)
	obj.set("schema", p.Schema())
	return obj.MarshalJSON()
}

func (r *Responses) MarshalJSON() ([]byte, error) {
	obj := newJSONObj()
	for _, code := range r.order {
		obj.set(code, r.byCode[code])
	}
	return obj.MarshalJSON()
}

func (r *Response) MarshalJSON() ([]byte, error) {
	obj := newJSONObj().set("description", r.Description)
	if r.Schema != nil {
		obj.set("content", newJSONObj().set("application/json", newJSONObj().set("schema", r.Schema)))
	}
	if r.HasExample {
		obj.set("example", r.Example)
	}
	return obj.MarshalJSON()
}

func (c *Components) MarshalJSON() ([]byte, error) {
	schemas := newJSONObj()
	for _, name := range c.order {
		schemas.set(name, c.schemas[name])
	}
	return newJSONObj().set("schemas", schemas).MarshalJSON()
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.ref != "" {
		return newJSONObj().set("$ref", s.RefPath()).MarshalJSON()
	}
	obj := newJSONObj()
	if s.dataType != "" {
		obj.set("type", s.dataType)
	}
	if s.format != "" {
		obj.set("format", s.format)
	}
	if len(s.propOrder) > 0 {
		props := newJSONObj()
		for _, name := range s.propOrder {
			props.set(name, s.properties[name])
		}
		obj.set("properties", props)
	}
	if len(s.required) > 0 {
		obj.set("required", s.required)
	}
	if s.items != nil {
		obj.set("items", s.items)
	}
	if len(s.enum) > 0 {
		obj.set("enum", s.enum)
	}
	return obj.MarshalJSON()
}
