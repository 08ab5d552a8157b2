package tag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/vango-dev/formselect/internal/errors"
)

// AttributeMap is a set of HTML attributes. Keys are unique and iteration
// always follows ordinal (byte-wise, case-sensitive) key order.
//
// The zero value is ready to use.
type AttributeMap struct {
	m map[string]string
}

// NewAttributeMap creates an empty AttributeMap.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{m: make(map[string]string)}
}

// Get returns the value stored for key.
func (a *AttributeMap) Get(key string) (string, bool) {
	v, ok := a.m[key]
	return v, ok
}

// Has reports whether key is present.
func (a *AttributeMap) Has(key string) bool {
	_, ok := a.m[key]
	return ok
}

// Set stores value under key, overwriting any previous value.
func (a *AttributeMap) Set(key, value string) {
	if a.m == nil {
		a.m = make(map[string]string)
	}
	a.m[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (a *AttributeMap) Delete(key string) {
	delete(a.m, key)
}

// Len returns the number of attributes.
func (a *AttributeMap) Len() int {
	return len(a.m)
}

// Keys returns the attribute names in iteration order.
func (a *AttributeMap) Keys() []string {
	return slices.Sorted(maps.Keys(a.m))
}

// All iterates over the attributes in key order.
func (a *AttributeMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.Keys() {
			if !yield(k, a.m[k]) {
				return
			}
		}
	}
}

// Attributes is a bag of extra attributes supplied by a caller. Values must
// be strings, booleans, integers or floats; see FormatValue.
type Attributes map[string]any

// Clone returns a shallow copy of attrs.
func (attrs Attributes) Clone() Attributes {
	if attrs == nil {
		return nil
	}
	return maps.Clone(attrs)
}

// FormatValue converts an attribute value to its string form.
//
//   - strings are used as-is
//   - booleans become "true" or "false"
//   - integers are written in base 10
//   - floats use the shortest representation that round-trips
//
// nil becomes the empty string. Any other type is rejected with an
// invalid argument error.
func FormatValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", errors.New("E004").
			WithDetail(fmt.Sprintf("value of type %T is not a string, boolean or number", value))
	}
}
