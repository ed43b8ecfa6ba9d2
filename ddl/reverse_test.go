package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseRenameRoundTrip(t *testing.T) {
	b := New()
	forward := RenameTable{From: "users", To: "accounts"}

	inv, err := Inverse(forward)
	require.NoError(t, err)

	back, err := Inverse(inv)
	require.NoError(t, err)

	// Applying the inverse of the inverse lands on the original statement.
	orig, err := b.Build(forward)
	require.NoError(t, err)
	again, err := b.Build(back)
	require.NoError(t, err)
	assert.Equal(t, orig, again)

	stmt, err := b.Build(inv)
	require.NoError(t, err)
	assert.Equal(t, `ALTER TABLE "accounts" RENAME TO "users";`, stmt)
}

func TestInverseRenameColumn(t *testing.T) {
	inv, err := Inverse(RenameColumn{Table: "users", From: "name", To: "full_name"})
	require.NoError(t, err)
	assert.Equal(t, RenameColumn{Table: "users", From: "full_name", To: "name"}, inv)
}

func TestInverseCreateTable(t *testing.T) {
	cols := NewColumnSet().Add("id", Shorthand("id"))

	inv, err := Inverse(CreateTable{Table: "users", Columns: cols})
	require.NoError(t, err)
	dt, ok := inv.(DropTable)
	require.True(t, ok)
	assert.Equal(t, "users", dt.Table)

	// The drop carries the columns, so it reverses back into the create.
	back, err := Inverse(dt)
	require.NoError(t, err)
	assert.Equal(t, CreateTable{Table: "users", Columns: cols}, back)
}

func TestInverseDropTableWithoutColumns(t *testing.T) {
	_, err := Inverse(DropTable{Table: "users"})
	assert.ErrorIs(t, err, ErrIrreversible)
}

func TestInverseAddColumns(t *testing.T) {
	cols := NewColumnSet().
		Add("age", ColumnDef{Type: "int"}).
		Add("email", ColumnDef{Type: "string"})

	inv, err := Inverse(AddColumns{Table: "users", Columns: cols})
	require.NoError(t, err)
	assert.Equal(t, DropColumns{Table: "users", Columns: []string{"age", "email"}}, inv)
}

func TestInverseConstraints(t *testing.T) {
	inv, err := Inverse(AddConstraint{Table: "users", Name: "users_age_check", Expression: "CHECK (age >= 0)"})
	require.NoError(t, err)
	assert.Equal(t,
		DropConstraint{Table: "users", Name: "users_age_check", Expression: "CHECK (age >= 0)"},
		inv)

	// Unnamed additions are explicitly one-way.
	_, err = Inverse(AddConstraint{Table: "users", Expression: "CHECK (age >= 0)"})
	assert.ErrorIs(t, err, ErrIrreversible)

	// A drop that carries the expression can be re-added.
	back, err := Inverse(inv)
	require.NoError(t, err)
	assert.Equal(t,
		AddConstraint{Table: "users", Name: "users_age_check", Expression: "CHECK (age >= 0)"},
		back)

	_, err = Inverse(DropConstraint{Table: "users", Name: "gone"})
	assert.ErrorIs(t, err, ErrIrreversible)
}

func TestInverseTypes(t *testing.T) {
	inv, err := Inverse(CreateEnumType{Name: "mood", Labels: []string{"ok"}})
	require.NoError(t, err)
	assert.Equal(t, DropType{Name: "mood"}, inv)

	inv, err = Inverse(CreateCompositeType{Name: "address", Columns: NewColumnSet()})
	require.NoError(t, err)
	assert.Equal(t, DropType{Name: "address"}, inv)

	_, err = Inverse(DropType{Name: "mood"})
	assert.ErrorIs(t, err, ErrIrreversible)
}

func TestInverseOneWayKinds(t *testing.T) {
	oneWay := []Operation{
		DropColumns{Table: "users", Columns: []string{"age"}},
		AlterColumn{Table: "users", Column: "age", Delta: ColumnDelta{Type: "bigint"}},
		AlterType{Name: "mood"},
	}
	for _, op := range oneWay {
		_, err := Inverse(op)
		assert.ErrorIs(t, err, ErrIrreversible)
	}
}
