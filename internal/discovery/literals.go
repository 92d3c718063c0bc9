package discovery

import "github.com/routemark/routemark/internal/tsast"

// Literal-only option decoding: the Path/Response options object is only
// ever read as string/number/boolean literals and string-array literals —
// never identifiers, spreads, or computed properties. A field that isn't a
// literal of the expected shape is simply absent; the caller decides whether
// that makes the endpoint malformed.

// prop looks up key in an options object's decoded properties, returning
// NilHandle (never the zero Handle, which would alias arena node 0) when the
// field is absent.
func prop(opts map[string]tsast.Handle, key string) tsast.Handle {
	if h, ok := opts[key]; ok {
		return h
	}
	return tsast.NilHandle
}

func stringLiteral(file *tsast.SourceFile, h tsast.Handle) (string, bool) {
	if h == tsast.NilHandle || file.Kind(h) != tsast.KindStringLiteral {
		return "", false
	}
	return file.Text(h), true
}

func numberLiteral(file *tsast.SourceFile, h tsast.Handle) (float64, bool) {
	if h == tsast.NilHandle || file.Kind(h) != tsast.KindNumericLiteral {
		return 0, false
	}
	return file.NumValue(h), true
}

func boolLiteral(file *tsast.SourceFile, h tsast.Handle) (bool, bool) {
	if h == tsast.NilHandle || file.Kind(h) != tsast.KindBooleanLiteral {
		return false, false
	}
	return file.BoolValue(h), true
}

// stringArrayLiteral reads a `tags: ["a","b"]` style field: an array
// literal whose every element is a string literal. Any non-string element
// disqualifies the whole field (literal-only).
func stringArrayLiteral(file *tsast.SourceFile, h tsast.Handle) ([]string, bool) {
	if h == tsast.NilHandle || file.Kind(h) != tsast.KindArrayLiteralExpr {
		return nil, false
	}
	elems := file.Children(h)
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := stringLiteral(file, e)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// anyLiteral reads a field that may be any JSON-representable literal
// (string/number/boolean), used for `example`. An array literal is accepted
// when each of its elements is itself accepted; object literals are not.
func anyLiteral(file *tsast.SourceFile, h tsast.Handle) (interface{}, bool) {
	if h == tsast.NilHandle {
		return nil, false
	}
	switch file.Kind(h) {
	case tsast.KindStringLiteral:
		return file.Text(h), true
	case tsast.KindNumericLiteral:
		return file.NumValue(h), true
	case tsast.KindBooleanLiteral:
		return file.BoolValue(h), true
	case tsast.KindArrayLiteralExpr:
		elems := file.Children(h)
		out := make([]interface{}, 0, len(elems))
		for _, e := range elems {
			v, ok := anyLiteral(file, e)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	default:
		return nil, false
	}
}
