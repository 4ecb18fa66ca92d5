package design

import (
	"fmt"
	"sort"
	"strconv"
)

// PropertyKind tags the primitive held by a PropertyValue.
type PropertyKind int

const (
	PropertyString PropertyKind = iota
	PropertyNumber
	PropertyBool
)

// PropertyValue is a string, number or boolean property. The empty string is
// a legitimate value; only a missing key means "inherit".
type PropertyValue struct {
	kind PropertyKind
	str  string
	num  float64
	flag bool
}

// StringValue wraps a string property.
func StringValue(s string) PropertyValue {
	return PropertyValue{kind: PropertyString, str: s}
}

// NumberValue wraps a numeric property.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{kind: PropertyNumber, num: n}
}

// BoolValue wraps a boolean property.
func BoolValue(b bool) PropertyValue {
	return PropertyValue{kind: PropertyBool, flag: b}
}

// Set returns a pointer suitable for SetInstanceProperty. A nil pointer is the
// property tombstone.
func Set(v PropertyValue) *PropertyValue {
	return &v
}

// Unset is the property tombstone accepted by SetInstanceProperty.
var Unset *PropertyValue

// PropertyFromAny converts a decoded primitive into a PropertyValue.
func PropertyFromAny(raw interface{}) (PropertyValue, error) {
	switch v := raw.(type) {
	case PropertyValue:
		return v, nil
	case string:
		return StringValue(v), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return NumberValue(float64(v)), nil
	case int64:
		return NumberValue(float64(v)), nil
	case uint64:
		return NumberValue(float64(v)), nil
	case float32:
		return NumberValue(float64(v)), nil
	case float64:
		return NumberValue(v), nil
	default:
		return PropertyValue{}, newTypeError("string, number or bool", fmt.Sprintf("%T", raw))
	}
}

// Kind returns the primitive tag.
func (v PropertyValue) Kind() PropertyKind {
	return v.kind
}

// Interface returns the underlying Go value.
func (v PropertyValue) Interface() interface{} {
	switch v.kind {
	case PropertyNumber:
		return v.num
	case PropertyBool:
		return v.flag
	default:
		return v.str
	}
}

// String renders the value the way a leaf renderer would display it.
func (v PropertyValue) String() string {
	switch v.kind {
	case PropertyNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case PropertyBool:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

// Properties maps property names to values. Instance maps are sparse.
type Properties map[string]PropertyValue

// Clone returns an independent copy. A nil map clones to an empty map.
func (p Properties) Clone() Properties {
	clone := make(Properties, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Keys returns property names sorted alphabetically.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the display string for key, or "" when absent.
func (p Properties) String(key string) string {
	if v, ok := p[key]; ok {
		return v.String()
	}
	return ""
}

// Map exposes the properties as plain Go values.
func (p Properties) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(p))
	for k, v := range p {
		out[k] = v.Interface()
	}
	return out
}
