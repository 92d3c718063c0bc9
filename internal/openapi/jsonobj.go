package openapi

import (
	"bytes"
	"encoding/json"
)

// jsonObj builds a JSON object with caller-controlled key order, since
// encoding/json gives no way to control map key ordering and the document's
// idempotence guarantee requires byte-identical output across runs with
// the same input.
type jsonObj struct {
	keys []string
	vals []interface{}
}

func newJSONObj() *jsonObj {
	return &jsonObj{}
}

func (o *jsonObj) set(key string, val interface{}) *jsonObj {
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
	return o
}

// setIf only adds the field when present is true, implementing the
// equivalent of encoding/json's `omitempty` for fields whose zero value is
// still meaningful to emit in some contexts (e.g. required:false).
func (o *jsonObj) setIf(present bool, key string, val interface{}) *jsonObj {
	if present {
		o.set(key, val)
	}
	return o
}

func (o *jsonObj) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
