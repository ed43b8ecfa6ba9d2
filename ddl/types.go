package ddl

// ColumnSpec is the per-column input to the column compiler. It is a tagged
// variant: either a Shorthand naming a dictionary entry (or a raw type name),
// or a full ColumnDef option record.
type ColumnSpec interface {
	columnSpec()
}

// Shorthand references an entry in the merged shorthand dictionary. When the
// name is not a known shorthand it is treated as a literal type name.
type Shorthand string

func (Shorthand) columnSpec() {}

// ColumnDef is the full option record for a column.
type ColumnDef struct {
	Type string

	// Default is the column default. nil means no DEFAULT clause; use
	// dialect.Null for an explicit DEFAULT NULL and dialect.Raw for
	// expressions such as now().
	Default any

	Unique     bool
	PrimaryKey bool
	NotNull    bool

	// Check is a raw boolean expression, emitted as CHECK (<expression>).
	Check string

	// References names the target table (and optionally column) of a
	// foreign key, emitted verbatim. OnDelete and OnUpdate are raw action
	// keywords and only emitted when References is set.
	References string
	OnDelete   string
	OnUpdate   string
}

func (ColumnDef) columnSpec() {}

// ColumnSet is an insertion-ordered mapping from column name to spec.
// The zero value is not usable; construct with NewColumnSet. The DDL
// builders never mutate a ColumnSet, so one set may back any number of
// statement generations.
type ColumnSet struct {
	names []string
	specs map[string]ColumnSpec
}

func NewColumnSet() *ColumnSet {
	return &ColumnSet{specs: make(map[string]ColumnSpec)}
}

// Add appends a column, or replaces the spec of an existing column without
// changing its position. Returns the set for chaining.
func (s *ColumnSet) Add(name string, spec ColumnSpec) *ColumnSet {
	if _, ok := s.specs[name]; !ok {
		s.names = append(s.names, name)
	}
	s.specs[name] = spec
	return s
}

func (s *ColumnSet) Len() int {
	return len(s.names)
}

// Names returns the column names in insertion order.
func (s *ColumnSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *ColumnSet) spec(name string) ColumnSpec {
	return s.specs[name]
}

// TableOptions carries the optional clauses of CREATE TABLE.
type TableOptions struct {
	IfNotExists bool
	// Inherits names a parent table for a Postgres INHERITS clause.
	Inherits string
}

// ColumnDelta is the partial option record consumed by AlterColumn. Each
// concern present produces at most one ALTER clause.
type ColumnDelta struct {
	// Type, when set, produces SET DATA TYPE with the resolved type.
	Type string

	// Default semantics: dialect.Null produces DROP DEFAULT (and takes
	// priority over assignment), any other non-nil value produces
	// SET DEFAULT, nil leaves the default untouched.
	Default any

	// NotNull set to true produces SET NOT NULL; set to false it produces
	// DROP NOT NULL. AllowNull is an alternative way to request
	// DROP NOT NULL without a pointer.
	NotNull   *bool
	AllowNull bool
}
