package dialect

// Dialect renders the two literal leaves of DDL text: quoted identifiers
// and value literals. Implementations must be stateless.
type Dialect interface {
	QuoteIdentifier(name string) string
	RenderValue(v any) string
}

// Raw marks a string as an already-valid SQL fragment. RenderValue emits
// it verbatim, with no quoting or escaping.
type Raw string

// Null is an explicit SQL NULL value. It is distinct from an absent value:
// option records use untyped nil for "no default clause" and Null for
// "DEFAULT NULL" (or "DROP DEFAULT" in an alter delta).
var Null = nullValue{}

type nullValue struct{}
