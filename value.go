package looseJSON

// Kind discriminates the payload stored in a Value.
type Kind int

const (
	String Kind = iota
	Null
	Boolean
	Number
	Float
	Double
	Array
	Object

	// internal
	kindArrayEnd // trailing block sentinel, never visible to callers
	kindFreed    // stamped by the release walker, catches double release
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case Float:
		return "float"
	case Double:
		return "double"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a single typed datum with an optional member name. Scalars are
// stored inline, an Object value owns its Node and an Array value owns one
// sentinel-terminated block of element Values.
//
// Null and Boolean values keep their literal text ("null", "true",
// "false") as the owned payload; the dialect stores them as text on
// purpose, there is no separate boolean representation.
type Value struct {
	kind Kind
	name string

	text string
	num  int
	f32  float32
	f64  float64
	arr  []Value
	obj  *Node
}

func (v *Value) Kind() Kind {
	if v == nil {
		return kindFreed
	}
	return v.kind
}

// Name returns the member name the value was parsed under. Array elements
// carry a synthetic "#<index>" name, the root node's members their key.
func (v *Value) Name() string {
	if v == nil {
		return ""
	}
	return v.name
}

// Text returns the raw owned text of a String, Null or Boolean value and
// an empty string for every other kind.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case String, Null, Boolean:
		return v.text
	default:
		return ""
	}
}

func (v *Value) IsString() bool  { return v != nil && v.kind == String }
func (v *Value) IsNull() bool    { return v != nil && v.kind == Null }
func (v *Value) IsBoolean() bool { return v != nil && v.kind == Boolean }
func (v *Value) IsNumber() bool  { return v != nil && v.kind == Number }
func (v *Value) IsArray() bool   { return v != nil && v.kind == Array }
func (v *Value) IsObject() bool  { return v != nil && v.kind == Object }
func (v *Value) IsNil() bool     { return v == nil }

func (v *Value) AsString() (string, error) {
	if v == nil || v.kind != String {
		return "", ErrNotString
	}
	return v.text, nil
}

func (v *Value) AsBool() (bool, error) {
	if v == nil || v.kind != Boolean {
		return false, ErrNotBool
	}
	return v.text == "true", nil
}

func (v *Value) AsInt() (int, error) {
	if v == nil || v.kind != Number {
		return 0, ErrNotNumber
	}
	return v.num, nil
}

func (v *Value) AsFloat32() (float32, error) {
	if v == nil || v.kind != Float {
		return 0, ErrNotFloat
	}
	return v.f32, nil
}

func (v *Value) AsFloat64() (float64, error) {
	if v == nil || v.kind != Double {
		return 0, ErrNotFloat
	}
	return v.f64, nil
}

func (v *Value) AsObject() (*Node, error) {
	if v == nil || v.kind != Object {
		return nil, ErrNotObject
	}
	return v.obj, nil
}

// AsArray returns the logical elements of an array value in input order.
// The trailing sentinel entry is cut off, so iterating the result never
// walks past the last element.
func (v *Value) AsArray() ([]Value, error) {
	if v == nil || v.kind != Array {
		return nil, ErrNotArray
	}
	return v.arr[:v.blockLen()], nil
}

// blockLen locates the sentinel. A finalized block always carries exactly
// one, so a miss is an ownership bug, not bad input.
func (v *Value) blockLen() int {
	for i := range v.arr {
		if v.arr[i].kind == kindArrayEnd {
			return i
		}
	}
	panic("loose json block lost its sentinel")
}

// Node is the ordered member list of an object. Members keep insertion
// order, which is the parse order of the input.
type Node struct {
	name   string
	values []*Value
}

func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.values)
}

func (n *Node) Members() []*Value {
	if n == nil {
		return nil
	}
	return n.values
}

// Dig walks path segments down the tree and returns the value at the end,
// or nil if any segment is missing. Object members are matched by key,
// array elements by their synthetic "#<index>" name.
func (n *Node) Dig(path ...string) *Value {
	if n == nil || len(path) == 0 {
		return nil
	}

	node := n
	for depth := 0; ; depth++ {
		v := node.member(path[depth])
		if v == nil {
			return nil
		}
		if depth == len(path)-1 {
			return v
		}

		switch v.kind {
		case Object:
			node = v.obj
		case Array:
			// elements are scalars, so the next segment is terminal
			if depth+1 != len(path)-1 {
				return nil
			}
			for i := range v.arr {
				e := &v.arr[i]
				if e.kind == kindArrayEnd {
					return nil
				}
				if e.name == path[depth+1] {
					return e
				}
			}
			return nil
		default:
			return nil
		}
	}
}

func (n *Node) DigStrict(path ...string) (*Value, error) {
	v := n.Dig(path...)
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

func (n *Node) member(name string) *Value {
	for _, v := range n.values {
		if v.name == name {
			return v
		}
	}
	return nil
}
