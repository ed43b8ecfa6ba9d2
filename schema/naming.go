package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// Naming helpers for deriving table, column, and constraint identifiers
// from Go names. Conventions are fixed: snake_case columns, pluralized
// snake_case tables, Postgres-style constraint suffixes.

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// TableName converts a Go struct name to its table name: snake_case, plural.
func TableName(structName string) string {
	return pluralizeClient.Plural(toSnakeCase(structName))
}

// ColumnName converts a Go field name to its column name.
func ColumnName(fieldName string) string {
	return toSnakeCase(fieldName)
}

// PrimaryKeyName derives the conventional primary-key constraint name.
func PrimaryKeyName(table string) string {
	return table + "_pkey"
}

// ForeignKeyName derives the conventional foreign-key constraint name.
func ForeignKeyName(table, column string) string {
	return table + "_" + column + "_fkey"
}

// CheckName derives the conventional check constraint name.
func CheckName(table, column string) string {
	return table + "_" + column + "_check"
}

// UniqueName derives the conventional unique constraint name.
func UniqueName(table, column string) string {
	return table + "_" + column + "_key"
}

// toSnakeCase converts any naming convention to snake_case. Handles
// acronym runs (HTTPServer -> http_server) and digit boundaries.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Common acronym-only names.
	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "URL":
		return "url"
	case "API":
		return "api"
	case "JSON":
		return "json"
	case "SQL":
		return "sql"
	}

	// Already snake_case.
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 10)

	runes := []rune(name)
	for i, r := range runes {
		needsUnderscore := false
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				needsUnderscore = true
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				needsUnderscore = true
			}
		}
		if needsUnderscore {
			result.WriteByte('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
