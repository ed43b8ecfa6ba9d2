package ddl

import (
	"strings"
)

// expandedColumn is a column after shorthand resolution, ready for emission.
type expandedColumn struct {
	name string
	def  ColumnDef
}

// expand resolves one ColumnSpec into a full option record. A Shorthand is
// looked up in the merged dictionary; a miss means the string is a literal
// type name. A ColumnDef passes through with only its type resolved.
func (b *Builder) expand(name string, spec ColumnSpec) expandedColumn {
	var def ColumnDef
	switch s := spec.(type) {
	case Shorthand:
		if d, ok := b.shorthands[string(s)]; ok {
			def = d
		} else {
			def = ColumnDef{Type: string(s)}
		}
	case ColumnDef:
		def = s
	}
	def.Type = ResolveType(def.Type)
	return expandedColumn{name: name, def: def}
}

// compileColumns turns a ColumnSet into per-column definition fragments, in
// insertion order, plus an optional trailing composite-primary-key
// constraint fragment.
//
// Every spec is expanded before any fragment is emitted: whether a column
// may carry an inline PRIMARY KEY depends on how many columns in the whole
// set declare one, so the multiplicity is counted once up front.
func (b *Builder) compileColumns(table string, cols *ColumnSet) []string {
	expanded := make([]expandedColumn, 0, cols.Len())
	var primaries []string
	for _, name := range cols.names {
		col := b.expand(name, cols.spec(name))
		expanded = append(expanded, col)
		if col.def.PrimaryKey {
			primaries = append(primaries, name)
		}
	}
	inlinePrimary := len(primaries) == 1

	fragments := make([]string, 0, len(expanded)+1)
	for _, col := range expanded {
		fragments = append(fragments, b.columnFragment(col, inlinePrimary))
	}

	if len(primaries) > 1 {
		fragments = append(fragments, b.primaryKeyConstraint(table, primaries))
	}
	return fragments
}

// columnFragment renders a single column definition: quoted name, type,
// optional DEFAULT, then constraints in fixed order.
func (b *Builder) columnFragment(col expandedColumn, inlinePrimary bool) string {
	var sb strings.Builder
	sb.WriteString(b.dialect.QuoteIdentifier(col.name))
	sb.WriteByte(' ')
	sb.WriteString(col.def.Type)

	if col.def.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(b.dialect.RenderValue(col.def.Default))
	}

	if col.def.Unique {
		sb.WriteString(" UNIQUE")
	}
	if col.def.PrimaryKey && inlinePrimary {
		sb.WriteString(" PRIMARY KEY")
	}
	if col.def.NotNull {
		sb.WriteString(" NOT NULL")
	}
	if col.def.Check != "" {
		sb.WriteString(" CHECK (")
		sb.WriteString(col.def.Check)
		sb.WriteByte(')')
	}
	if col.def.References != "" {
		sb.WriteString(" REFERENCES ")
		sb.WriteString(col.def.References)
		if col.def.OnDelete != "" {
			sb.WriteString(" ON DELETE ")
			sb.WriteString(col.def.OnDelete)
		}
		if col.def.OnUpdate != "" {
			sb.WriteString(" ON UPDATE ")
			sb.WriteString(col.def.OnUpdate)
		}
	}
	return sb.String()
}

func (b *Builder) primaryKeyConstraint(table string, columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = b.dialect.QuoteIdentifier(c)
	}
	return "CONSTRAINT " + b.dialect.QuoteIdentifier(table+"_pkey") +
		" PRIMARY KEY (" + strings.Join(quoted, ", ") + ")"
}
