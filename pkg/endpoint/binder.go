package endpoint

import (
	"strconv"
	"strings"
)

// ParseQuery splits a raw query string into a key/value map. Pieces
// are separated by "&"; each piece splits on its first "=", and a
// piece with no "=" yields an empty value. Values are taken verbatim,
// not percent-decoded.
func ParseQuery(raw string) map[string]string {
	query := make(map[string]string)
	if raw == "" {
		return query
	}
	for _, piece := range strings.Split(raw, "&") {
		if piece == "" {
			continue
		}
		key, value, _ := strings.Cut(piece, "=")
		query[key] = value
	}
	return query
}

// bind resolves the endpoint's declared arguments against the request
// path and parsed query, in declaration order. It returns the full
// ordered argument list, or the first binding failure.
func (e *Endpoint) bind(path string, query map[string]string) ([]any, error) {
	pathSegments := splitPath(path)
	args := make([]any, 0, len(e.bindings))

	for _, b := range e.bindings {
		var text string
		switch b.Source {
		case SourcePath:
			idx := e.placeholderIndex(b.Name)
			if idx < 0 || idx >= len(pathSegments) {
				return nil, &BindError{Kind: MissingPathParameter, Param: b.Name}
			}
			text = pathSegments[idx]
		case SourceQuery:
			value, ok := query[b.Name]
			if !ok {
				return nil, &BindError{Kind: MissingQueryParameter, Param: b.Name}
			}
			text = value
		default:
			return nil, &BindError{Kind: UnsupportedParameterType, Param: b.Name}
		}

		arg, err := coerce(b, text)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}

// coerce parses the extracted text into the binding's declared type.
func coerce(b Binding, text string) (any, error) {
	switch b.Type {
	case TypeString:
		return text, nil

	case TypeInt:
		n, err := strconv.ParseInt(text, 10, 0)
		if err != nil {
			return nil, &BindError{Kind: InvalidParameterFormat, Param: b.Name, Value: text, Err: err}
		}
		return int(n), nil

	case TypeLong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &BindError{Kind: InvalidParameterFormat, Param: b.Name, Value: text, Err: err}
		}
		return n, nil

	case TypeFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &BindError{Kind: InvalidParameterFormat, Param: b.Name, Value: text, Err: err}
		}
		return f, nil

	case TypeBool:
		// Strict parse: only the exact literals are accepted.
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, &BindError{Kind: InvalidParameterFormat, Param: b.Name, Value: text}
		}

	default:
		return nil, &BindError{Kind: UnsupportedParameterType, Param: b.Name, Value: text}
	}
}
