package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Row is an ordered attribute map. Values are a string or a string list.
type Row struct {
	keys []string
	vals map[string]any
}

func NewRow() *Row {
	return &Row{vals: map[string]any{}}
}

func (r *Row) put(k string, v any) {
	if _, ok := r.vals[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.vals[k] = v
}

func (r *Row) SetString(k, v string) { r.put(k, v) }

func (r *Row) SetList(k string, v []string) {
	r.put(k, append([]string{}, v...))
}

// AppendUnique adds v to the list k unless it is already there. A string
// value under k is turned into a one element list first.
func (r *Row) AppendUnique(k, v string) {
	switch cur := r.vals[k].(type) {
	case nil:
		r.put(k, []string{v})
	case string:
		if cur == v {
			r.put(k, []string{cur})
		} else {
			r.put(k, []string{cur, v})
		}
	case []string:
		for _, x := range cur {
			if x == v {
				return
			}
		}
		r.vals[k] = append(cur, v)
	}
}

func (r *Row) IsSet(k string) bool {
	_, ok := r.vals[k]
	return ok
}

func (r *Row) GetString(k string) (string, bool) {
	s, ok := r.vals[k].(string)
	return s, ok
}

func (r *Row) GetList(k string) []string {
	l, _ := r.vals[k].([]string)
	return l
}

func (r *Row) Get(k string) any { return r.vals[k] }

func (r *Row) Keys() []string { return append([]string(nil), r.keys...) }

func (r *Row) Len() int { return len(r.keys) }

func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.vals[k])
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Row) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range r.keys {
		var v yaml.Node
		if err := v.Encode(r.vals[k]); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, &v)
	}
	return n, nil
}
