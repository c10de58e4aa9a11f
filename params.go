package matrix

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Value is a single request parameter: either one scalar or a sequence of scalars.
type Value struct {
	items []string
	list  bool
}

// Scalar returns the scalar value and true, or "" and false for a sequence.
func (v Value) Scalar() (string, bool) {
	if v.list || len(v.items) == 0 {
		return "", false
	}
	return v.items[0], true
}

// List returns the sequence values and true, or nil and false for a scalar.
func (v Value) List() ([]string, bool) {
	if !v.list {
		return nil, false
	}
	return v.items, true
}

// Params is an ordered mapping of parameter name to Value.
// Setting an existing key replaces its value but keeps its position.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) put(key string, v Value) *Params {
	if p.values == nil {
		p.values = make(map[string]Value)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

// Set stores v under key. Slices and arrays become sequences; everything else
// is formatted as a scalar (see FormatScalar).
func (p *Params) Set(key string, v any) *Params {
	if items, ok := toList(v); ok {
		return p.put(key, Value{items: items, list: true})
	}
	return p.put(key, Value{items: []string{FormatScalar(v)}})
}

// Del removes key.
func (p *Params) Del(key string) *Params {
	if p == nil {
		return p
	}
	if _, ok := p.values[key]; !ok {
		return p
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
	return p
}

// SetString stores a scalar string.
func (p *Params) SetString(key, v string) *Params {
	return p.put(key, Value{items: []string{v}})
}

// SetList stores a sequence. The slice is copied.
func (p *Params) SetList(key string, items []string) *Params {
	return p.put(key, Value{items: append([]string{}, items...), list: true})
}

// SetIDs stores an id list as a sequence.
func (p *Params) SetIDs(key string, ids IDList) *Params {
	if ids == nil {
		return p.SetList(key, nil)
	}
	return p.SetList(key, ids.IDs())
}

// Merge sets every entry of m, in sorted key order.
func (p *Params) Merge(m map[string]any) *Params {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.Set(k, m[k])
	}
	return p
}

// Clone returns a deep copy.
func (p *Params) Clone() *Params {
	c := NewParams()
	if p == nil {
		return c
	}
	for _, k := range p.keys {
		v := p.values[k]
		c.put(k, Value{items: append([]string(nil), v.items...), list: v.list})
	}
	return c
}

// Encode renders the parameters as a query string. Sequences are expanded to
// repeated name[]=value pairs in order; keys keep insertion order.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, k := range p.keys {
		v := p.values[k]
		if v.list {
			name := url.QueryEscape(k + "[]")
			for _, item := range v.items {
				writePair(&sb, name, item)
			}
			continue
		}
		writePair(&sb, url.QueryEscape(k), v.items[0])
	}
	return sb.String()
}

func writePair(sb *strings.Builder, escapedKey, value string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(escapedKey)
	sb.WriteByte('=')
	sb.WriteString(url.QueryEscape(value))
}

// FormatScalar converts v to its query-string form. Booleans follow the
// service's convention: true is "1", false is the empty string. nil is "".
func FormatScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func toList(v any) ([]string, bool) {
	switch x := v.(type) {
	case nil, []byte:
		return nil, false
	case []string:
		return append([]string{}, x...), true
	case IDList:
		return x.IDs(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]string, rv.Len())
	for i := range items {
		items[i] = FormatScalar(rv.Index(i).Interface())
	}
	return items, true
}

// IDList is an identifier set given either as a comma separated string (CSV)
// or as an explicit sequence (List).
type IDList interface {
	IDs() []string
}

// CSV is a comma separated id list, e.g. "10,20".
type CSV string

// IDs splits the string on commas.
func (c CSV) IDs() []string { return NormalizeToSequence(string(c)) }

// List is an explicit id list.
type List []string

// IDs returns the list unchanged.
func (l List) IDs() []string { return []string(l) }

// NormalizeToSequence returns a sequence unchanged and splits a string on ",".
func NormalizeToSequence[T ~string | ~[]string](v T) []string {
	switch x := any(v).(type) {
	case string:
		return strings.Split(x, ",")
	case []string:
		return x
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return strings.Split(rv.String(), ",")
	}
	return rv.Convert(reflect.TypeOf([]string(nil))).Interface().([]string)
}
