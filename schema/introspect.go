package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/migrakit/migra/ddl"
)

// Derive introspects a struct (or pointer to struct) and produces the table
// name plus a ddl.ColumnSet describing it, so a table can be declared as a
// plain Go model. Conventions:
//
//   - column names come from the `db` tag, falling back to snake_case of
//     the field name; `db:"-"` skips the field
//   - non-pointer fields are NOT NULL, pointer fields are nullable
//   - an integer field named ID becomes a bigserial primary key; a
//     uuid.UUID field named ID becomes a uuid primary key
//   - the `ddl` tag refines the column: "primary", "unique", "null",
//     "type=<name>", "references=<target>"
func Derive(model any) (string, *ddl.ColumnSet, error) {
	t := reflect.TypeOf(model)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", nil, fmt.Errorf("expected struct model, got %v", reflect.TypeOf(model))
	}

	cols := ddl.NewColumnSet()
	if err := deriveFields(t, cols); err != nil {
		return "", nil, err
	}
	return TableName(t.Name()), cols, nil
}

func deriveFields(t reflect.Type, cols *ddl.ColumnSet) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("db") == "-" || f.Tag.Get("ddl") == "-" {
			continue
		}
		// Embedded structs contribute their fields inline.
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !isLeafStruct(f.Type) {
			if err := deriveFields(f.Type, cols); err != nil {
				return err
			}
			continue
		}

		name := f.Tag.Get("db")
		if name == "" {
			name = ColumnName(f.Name)
		}
		def, err := columnDef(f)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
		cols.Add(name, def)
	}
	return nil
}

var (
	timeType  = reflect.TypeOf(time.Time{})
	uuidType  = reflect.TypeOf(uuid.UUID{})
	bytesType = reflect.TypeOf([]byte{})
)

// isLeafStruct reports struct types that map to a single column rather
// than a set of fields.
func isLeafStruct(t reflect.Type) bool {
	return t == timeType || t == uuidType
}

func columnDef(f reflect.StructField) (ddl.ColumnDef, error) {
	ft := f.Type
	nullable := false
	if ft.Kind() == reflect.Ptr {
		nullable = true
		ft = ft.Elem()
	}

	def := ddl.ColumnDef{}

	if f.Name == "ID" {
		switch {
		case ft == uuidType:
			def.Type = "uuid"
		case isIntegerKind(ft.Kind()):
			def.Type = "bigserial"
		default:
			def.Type = goType(ft)
		}
		def.PrimaryKey = true
	} else {
		def.Type = goType(ft)
		def.NotNull = !nullable
	}

	if def.Type == "" {
		return def, fmt.Errorf("unsupported Go type %v", ft)
	}

	for _, opt := range strings.Split(f.Tag.Get("ddl"), ",") {
		switch {
		case opt == "":
		case opt == "primary":
			def.PrimaryKey = true
			def.NotNull = false
		case opt == "unique":
			def.Unique = true
		case opt == "null":
			def.NotNull = false
		case opt == "notnull":
			def.NotNull = true
		case strings.HasPrefix(opt, "type="):
			def.Type = strings.TrimPrefix(opt, "type=")
		case strings.HasPrefix(opt, "references="):
			def.References = strings.TrimPrefix(opt, "references=")
		default:
			return def, fmt.Errorf("unknown ddl tag option %q", opt)
		}
	}

	return def, nil
}

func isIntegerKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// goType maps a Go type to the portable (or native) type name the ddl
// adapter table understands.
func goType(t reflect.Type) string {
	switch t {
	case timeType:
		return "timestamptz"
	case uuidType:
		return "uuid"
	case bytesType:
		return "bytea"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int8, reflect.Int16, reflect.Uint8:
		return "smallint"
	case reflect.Int32:
		return "int"
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "bigint"
	case reflect.Float32:
		return "float"
	case reflect.Float64:
		return "double"
	case reflect.Map, reflect.Slice, reflect.Interface:
		return "jsonb"
	}
	return ""
}
