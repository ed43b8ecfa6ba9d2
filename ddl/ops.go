package ddl

// Kind identifies a DDL operation. It is the lookup key of the inverse
// registry, so reversal is a static table lookup rather than behavior
// attached to builder functions.
type Kind int

const (
	KindCreateTable Kind = iota
	KindDropTable
	KindAddColumns
	KindDropColumns
	KindAlterColumn
	KindRenameTable
	KindRenameColumn
	KindAddConstraint
	KindDropConstraint
	KindCreateEnumType
	KindCreateCompositeType
	KindDropType
	KindAlterType
)

// Operation is a schema change described as plain data. Operations carry no
// behavior beyond their kind; Builder.Build renders them and Inverse derives
// their undo.
type Operation interface {
	Kind() Kind
}

type CreateTable struct {
	Table   string
	Columns *ColumnSet
	Options *TableOptions
}

func (CreateTable) Kind() Kind { return KindCreateTable }

type DropTable struct {
	Table string
	// Columns, when carried along, lets Inverse reconstruct the table.
	// Dropping without them is a one-way operation.
	Columns *ColumnSet
	Options *TableOptions
}

func (DropTable) Kind() Kind { return KindDropTable }

type AddColumns struct {
	Table   string
	Columns *ColumnSet
}

func (AddColumns) Kind() Kind { return KindAddColumns }

type DropColumns struct {
	Table   string
	Columns []string
}

func (DropColumns) Kind() Kind { return KindDropColumns }

type AlterColumn struct {
	Table  string
	Column string
	Delta  ColumnDelta
}

func (AlterColumn) Kind() Kind { return KindAlterColumn }

type RenameTable struct {
	From string
	To   string
}

func (RenameTable) Kind() Kind { return KindRenameTable }

type RenameColumn struct {
	Table string
	From  string
	To    string
}

func (RenameColumn) Kind() Kind { return KindRenameColumn }

type AddConstraint struct {
	Table string
	// Name may be empty; the statement is then emitted without a
	// CONSTRAINT clause and the operation is irreversible.
	Name       string
	Expression string
}

func (AddConstraint) Kind() Kind { return KindAddConstraint }

type DropConstraint struct {
	Table string
	Name  string
	// Expression, when carried along, lets Inverse re-add the constraint.
	Expression string
}

func (DropConstraint) Kind() Kind { return KindDropConstraint }

type CreateEnumType struct {
	Name   string
	Labels []string
}

func (CreateEnumType) Kind() Kind { return KindCreateEnumType }

type CreateCompositeType struct {
	Name    string
	Columns *ColumnSet
}

func (CreateCompositeType) Kind() Kind { return KindCreateCompositeType }

type DropType struct {
	Name string
}

func (DropType) Kind() Kind { return KindDropType }

type AlterType struct {
	Name string
}

func (AlterType) Kind() Kind { return KindAlterType }

// Build renders one operation into its statement text.
func (b *Builder) Build(op Operation) (string, error) {
	switch o := op.(type) {
	case CreateTable:
		return b.CreateTable(o.Table, o.Columns, o.Options), nil
	case DropTable:
		return b.DropTable(o.Table), nil
	case AddColumns:
		return b.AddColumns(o.Table, o.Columns), nil
	case DropColumns:
		return b.DropColumns(o.Table, o.Columns...), nil
	case AlterColumn:
		return b.AlterColumn(o.Table, o.Column, o.Delta), nil
	case RenameTable:
		return b.RenameTable(o.From, o.To), nil
	case RenameColumn:
		return b.RenameColumn(o.Table, o.From, o.To), nil
	case AddConstraint:
		return b.AddConstraint(o.Table, o.Name, o.Expression), nil
	case DropConstraint:
		return b.DropConstraint(o.Table, o.Name)
	case CreateEnumType:
		return b.CreateEnumType(o.Name, o.Labels), nil
	case CreateCompositeType:
		return b.CreateCompositeType(o.Name, o.Columns), nil
	case DropType:
		return b.DropType(o.Name), nil
	case AlterType:
		return b.AlterType(o.Name)
	default:
		return "", ErrUnsupported
	}
}
