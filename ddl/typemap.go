package ddl

// typeAdapters maps portable type names to the native Postgres keyword.
// Lookup is exact-match; anything else is assumed to already be a valid
// native type (including parameterized forms like varchar(255)) and passes
// through unchanged.
var typeAdapters = map[string]string{
	"int":      "integer",
	"string":   "text",
	"float":    "real",
	"double":   "double precision",
	"bool":     "boolean",
	"boolean":  "boolean",
	"datetime": "timestamp",
}

// ResolveType returns the native keyword for a portable type name. It is
// total: unknown tokens come back unchanged.
func ResolveType(t string) string {
	if native, ok := typeAdapters[t]; ok {
		return native
	}
	return t
}

// builtinShorthands is the fixed dictionary every Builder starts from.
// Caller-supplied entries layered on top win on name collision.
var builtinShorthands = map[string]ColumnDef{
	"id": {Type: "serial", PrimaryKey: true},
}
