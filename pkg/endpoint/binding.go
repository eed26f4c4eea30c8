package endpoint

// Handler is the function a route dispatches to. It receives the
// bound arguments in declaration order and returns the value to
// encode, which the dispatcher runs through inference.
type Handler func(args ...any) (any, error)

// ParamType is the declared primitive type of a bound argument.
type ParamType uint8

const (
	TypeString ParamType = iota // verbatim text
	TypeInt                     // base-10 signed, platform int
	TypeLong                    // base-10 signed, 64-bit
	TypeFloat                   // decimal, 64-bit
	TypeBool                    // exactly "true" or "false"
)

// String returns the string representation of the ParamType.
func (t ParamType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Source says where a bound argument's text comes from.
type Source uint8

const (
	SourcePath  Source = iota // a placeholder segment of the template
	SourceQuery               // a key of the query string
)

// Binding declares one handler argument: where its text is extracted
// from and the type it is coerced to. Bindings resolve in declaration
// order.
type Binding struct {
	Source Source
	Name   string
	Type   ParamType
}

// PathParam declares an argument bound to the placeholder with the
// given name.
func PathParam(name string, typ ParamType) Binding {
	return Binding{Source: SourcePath, Name: name, Type: typ}
}

// QueryParam declares an argument bound to the query key with the
// given name.
func QueryParam(name string, typ ParamType) Binding {
	return Binding{Source: SourceQuery, Name: name, Type: typ}
}
