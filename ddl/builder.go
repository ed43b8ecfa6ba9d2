// Package ddl compiles declarative schema-change descriptions into literal
// Postgres DDL statements. Column specs are given as shorthand strings or
// full option records; the builder resolves them against a shorthand
// dictionary and a fixed type-adapter table and assembles one statement
// per operation. All builders are pure: they never mutate their inputs and
// identical inputs always yield identical text.
package ddl

import (
	"strings"

	"github.com/migrakit/migra/dialect"
)

// Builder generates DDL statements for a single dialect with a fixed,
// merged shorthand dictionary. A Builder is immutable after construction
// and safe for concurrent use.
type Builder struct {
	dialect    dialect.Dialect
	shorthands map[string]ColumnDef
}

type Option func(*Builder)

// WithShorthands layers caller-defined shorthand entries over the built-in
// set. Caller entries win on name collision.
func WithShorthands(entries map[string]ColumnDef) Option {
	return func(b *Builder) {
		for name, def := range entries {
			b.shorthands[name] = def
		}
	}
}

// WithDialect overrides the default Postgres dialect.
func WithDialect(d dialect.Dialect) Option {
	return func(b *Builder) {
		b.dialect = d
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		dialect:    dialect.NewPostgresDialect(),
		shorthands: make(map[string]ColumnDef, len(builtinShorthands)),
	}
	for name, def := range builtinShorthands {
		b.shorthands[name] = def
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// listSep joins column and clause lists: comma-and-newline with two-space
// indentation, so generated migrations diff line by line.
const listSep = ",\n  "

// CreateTable builds a CREATE TABLE statement from a column set.
func (b *Builder) CreateTable(table string, cols *ColumnSet, opts *TableOptions) string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	if opts != nil && opts.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(b.dialect.QuoteIdentifier(table))
	sb.WriteString(" (\n  ")
	sb.WriteString(strings.Join(b.compileColumns(table, cols), listSep))
	sb.WriteString("\n)")
	if opts != nil && opts.Inherits != "" {
		sb.WriteString(" INHERITS (")
		sb.WriteString(b.dialect.QuoteIdentifier(opts.Inherits))
		sb.WriteByte(')')
	}
	sb.WriteString(";")
	return sb.String()
}

func (b *Builder) DropTable(table string) string {
	return "DROP TABLE " + b.dialect.QuoteIdentifier(table) + ";"
}

// AddColumns builds a single ALTER TABLE adding every column in the set.
func (b *Builder) AddColumns(table string, cols *ColumnSet) string {
	fragments := b.compileColumns(table, cols)
	for i, f := range fragments {
		fragments[i] = "ADD " + f
	}
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(table) + "\n  " +
		strings.Join(fragments, listSep) + ";"
}

// DropColumns builds a single ALTER TABLE dropping the named columns in
// the given order. To drop the columns of a ColumnSet, pass set.Names().
func (b *Builder) DropColumns(table string, columns ...string) string {
	clauses := make([]string, len(columns))
	for i, c := range columns {
		clauses[i] = "DROP " + b.dialect.QuoteIdentifier(c)
	}
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(table) + "\n  " +
		strings.Join(clauses, listSep) + ";"
}

// AlterColumn builds an ALTER TABLE changing a single column. At most one
// clause per concern is emitted, in fixed precedence: default removal,
// default assignment, data type, nullability.
func (b *Builder) AlterColumn(table, column string, delta ColumnDelta) string {
	var actions []string
	if delta.Default == dialect.Null {
		actions = append(actions, "DROP DEFAULT")
	} else if delta.Default != nil {
		actions = append(actions, "SET DEFAULT "+b.dialect.RenderValue(delta.Default))
	}
	if delta.Type != "" {
		actions = append(actions, "SET DATA TYPE "+ResolveType(delta.Type))
	}
	if delta.NotNull != nil && *delta.NotNull {
		actions = append(actions, "SET NOT NULL")
	} else if (delta.NotNull != nil && !*delta.NotNull) || delta.AllowNull {
		actions = append(actions, "DROP NOT NULL")
	}

	prefix := "ALTER " + b.dialect.QuoteIdentifier(column) + " "
	clauses := make([]string, len(actions))
	for i, a := range actions {
		clauses[i] = prefix + a
	}
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(table) + "\n  " +
		strings.Join(clauses, listSep) + ";"
}

func (b *Builder) RenameTable(from, to string) string {
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(from) +
		" RENAME TO " + b.dialect.QuoteIdentifier(to) + ";"
}

func (b *Builder) RenameColumn(table, from, to string) string {
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(table) +
		" RENAME " + b.dialect.QuoteIdentifier(from) +
		" TO " + b.dialect.QuoteIdentifier(to) + ";"
}

// AddConstraint builds an ALTER TABLE adding a raw constraint expression.
// The CONSTRAINT name clause is omitted entirely when name is empty; note
// that an unnamed constraint cannot be reversed (see Inverse).
func (b *Builder) AddConstraint(table, name, expression string) string {
	var sb strings.Builder
	sb.WriteString("ALTER TABLE ")
	sb.WriteString(b.dialect.QuoteIdentifier(table))
	sb.WriteString(" ADD ")
	if name != "" {
		sb.WriteString("CONSTRAINT ")
		sb.WriteString(b.dialect.QuoteIdentifier(name))
		sb.WriteByte(' ')
	}
	sb.WriteString(expression)
	sb.WriteString(";")
	return sb.String()
}

func (b *Builder) DropConstraint(table, name string) (string, error) {
	if name == "" {
		return "", ErrMissingName
	}
	return "ALTER TABLE " + b.dialect.QuoteIdentifier(table) +
		" DROP CONSTRAINT " + b.dialect.QuoteIdentifier(name) + ";", nil
}

// CreateEnumType builds CREATE TYPE ... AS ENUM with the labels in order.
func (b *Builder) CreateEnumType(name string, labels []string) string {
	rendered := make([]string, len(labels))
	for i, l := range labels {
		rendered[i] = b.dialect.RenderValue(l)
	}
	return "CREATE TYPE " + b.dialect.QuoteIdentifier(name) +
		" AS ENUM (" + strings.Join(rendered, ", ") + ");"
}

// CreateCompositeType builds CREATE TYPE ... AS with one attribute per
// column, compiled the same way table columns are.
func (b *Builder) CreateCompositeType(name string, cols *ColumnSet) string {
	return "CREATE TYPE " + b.dialect.QuoteIdentifier(name) + " AS (\n  " +
		strings.Join(b.compileColumns(name, cols), listSep) + "\n);"
}

func (b *Builder) DropType(name string) string {
	return "DROP TYPE " + b.dialect.QuoteIdentifier(name) + ";"
}

// AlterType is not supported: Postgres has no general in-place type
// alteration this library can express, and silently emitting nothing would
// let callers assume a mutation happened.
func (b *Builder) AlterType(name string) (string, error) {
	return "", ErrUnsupported
}
