package ddl

// inverseFunc constructs the undo of a forward operation, or reports that
// none can be derived from the forward operation alone.
type inverseFunc func(Operation) (Operation, error)

// inverses is the static registry pairing every operation kind with its
// inverse constructor. Kinds absent from the map are one-way.
var inverses = map[Kind]inverseFunc{
	KindCreateTable: func(op Operation) (Operation, error) {
		o := op.(CreateTable)
		return DropTable{Table: o.Table, Columns: o.Columns, Options: o.Options}, nil
	},
	KindDropTable: func(op Operation) (Operation, error) {
		o := op.(DropTable)
		if o.Columns == nil {
			// Recreating the table needs the original column set.
			return nil, ErrIrreversible
		}
		return CreateTable{Table: o.Table, Columns: o.Columns, Options: o.Options}, nil
	},
	KindAddColumns: func(op Operation) (Operation, error) {
		o := op.(AddColumns)
		return DropColumns{Table: o.Table, Columns: o.Columns.Names()}, nil
	},
	KindRenameTable: func(op Operation) (Operation, error) {
		o := op.(RenameTable)
		return RenameTable{From: o.To, To: o.From}, nil
	},
	KindRenameColumn: func(op Operation) (Operation, error) {
		o := op.(RenameColumn)
		return RenameColumn{Table: o.Table, From: o.To, To: o.From}, nil
	},
	KindAddConstraint: func(op Operation) (Operation, error) {
		o := op.(AddConstraint)
		if o.Name == "" {
			// An unnamed constraint has nothing to drop by; pairing it
			// with a drop-by-name would generate an invalid rollback.
			return nil, ErrIrreversible
		}
		return DropConstraint{Table: o.Table, Name: o.Name, Expression: o.Expression}, nil
	},
	KindDropConstraint: func(op Operation) (Operation, error) {
		o := op.(DropConstraint)
		if o.Expression == "" {
			return nil, ErrIrreversible
		}
		return AddConstraint{Table: o.Table, Name: o.Name, Expression: o.Expression}, nil
	},
	KindCreateEnumType: func(op Operation) (Operation, error) {
		o := op.(CreateEnumType)
		return DropType{Name: o.Name}, nil
	},
	KindCreateCompositeType: func(op Operation) (Operation, error) {
		o := op.(CreateCompositeType)
		return DropType{Name: o.Name}, nil
	},
}

// Inverse derives the operation that undoes op. Dropped columns, altered
// columns, and dropped types carry no record of the prior state, so those
// kinds (and unnamed constraint additions) return ErrIrreversible.
func Inverse(op Operation) (Operation, error) {
	fn, ok := inverses[op.Kind()]
	if !ok {
		return nil, ErrIrreversible
	}
	return fn(op)
}
