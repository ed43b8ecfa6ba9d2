package ddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migrakit/migra/dialect"
)

func boolPtr(v bool) *bool { return &v }

func TestCreateTable(t *testing.T) {
	b := New()
	cols := NewColumnSet().
		Add("id", Shorthand("id")).
		Add("name", ColumnDef{Type: "string", NotNull: true})

	stmt := b.CreateTable("users", cols, nil)
	assert.Equal(t,
		"CREATE TABLE \"users\" (\n"+
			"  \"id\" serial PRIMARY KEY,\n"+
			"  \"name\" text NOT NULL\n"+
			");",
		stmt)
}

func TestCreateTableOptions(t *testing.T) {
	b := New()
	cols := NewColumnSet().Add("id", Shorthand("id"))

	stmt := b.CreateTable("cities", cols, &TableOptions{IfNotExists: true, Inherits: "places"})
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS \"cities\" (\n"+
			"  \"id\" serial PRIMARY KEY\n"+
			") INHERITS (\"places\");",
		stmt)
}

func TestCreateTableCompositeKey(t *testing.T) {
	b := New()
	cols := NewColumnSet().
		Add("user_id", ColumnDef{Type: "int", PrimaryKey: true}).
		Add("group_id", ColumnDef{Type: "int", PrimaryKey: true})

	stmt := b.CreateTable("memberships", cols, nil)
	assert.Equal(t,
		"CREATE TABLE \"memberships\" (\n"+
			"  \"user_id\" integer,\n"+
			"  \"group_id\" integer,\n"+
			"  CONSTRAINT \"memberships_pkey\" PRIMARY KEY (\"user_id\", \"group_id\")\n"+
			");",
		stmt)
}

func TestDropTable(t *testing.T) {
	assert.Equal(t, `DROP TABLE "users";`, New().DropTable("users"))
}

func TestAddColumns(t *testing.T) {
	b := New()
	cols := NewColumnSet().
		Add("age", ColumnDef{Type: "int"}).
		Add("nickname", ColumnDef{Type: "string", Unique: true})

	stmt := b.AddColumns("users", cols)
	assert.Equal(t,
		"ALTER TABLE \"users\"\n"+
			"  ADD \"age\" integer,\n"+
			"  ADD \"nickname\" text UNIQUE;",
		stmt)
}

func TestDropColumns(t *testing.T) {
	b := New()

	stmt := b.DropColumns("users", "name", "age")
	assert.Equal(t,
		"ALTER TABLE \"users\"\n"+
			"  DROP \"name\",\n"+
			"  DROP \"age\";",
		stmt)

	// A ColumnSet drops by its keys, order preserved.
	cols := NewColumnSet().
		Add("name", Shorthand("string")).
		Add("age", Shorthand("int"))
	assert.Equal(t, stmt, b.DropColumns("users", cols.Names()...))

	// A single name is just the degenerate case.
	assert.Equal(t,
		"ALTER TABLE \"users\"\n  DROP \"name\";",
		b.DropColumns("users", "name"))
}

func TestAlterColumn(t *testing.T) {
	b := New()

	tests := []struct {
		name     string
		delta    ColumnDelta
		expected string
	}{
		{
			name:  "TypeAndDropNotNull",
			delta: ColumnDelta{Type: "int", NotNull: boolPtr(false)},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" SET DATA TYPE integer,\n" +
				"  ALTER \"age\" DROP NOT NULL;",
		},
		{
			name:  "SetDefault",
			delta: ColumnDelta{Default: 18},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" SET DEFAULT 18;",
		},
		{
			name:  "DropDefaultWinsOverAssignment",
			delta: ColumnDelta{Default: dialect.Null},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" DROP DEFAULT;",
		},
		{
			name:  "SetNotNull",
			delta: ColumnDelta{NotNull: boolPtr(true)},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" SET NOT NULL;",
		},
		{
			name:  "AllowNullFlag",
			delta: ColumnDelta{AllowNull: true},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" DROP NOT NULL;",
		},
		{
			name:  "AllConcerns",
			delta: ColumnDelta{Type: "bigint", Default: 0, NotNull: boolPtr(true)},
			expected: "ALTER TABLE \"users\"\n" +
				"  ALTER \"age\" SET DEFAULT 0,\n" +
				"  ALTER \"age\" SET DATA TYPE bigint,\n" +
				"  ALTER \"age\" SET NOT NULL;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.AlterColumn("users", "age", tt.delta))
		})
	}
}

func TestRenameTable(t *testing.T) {
	assert.Equal(t,
		`ALTER TABLE "users" RENAME TO "accounts";`,
		New().RenameTable("users", "accounts"))
}

func TestRenameColumn(t *testing.T) {
	assert.Equal(t,
		`ALTER TABLE "users" RENAME "name" TO "full_name";`,
		New().RenameColumn("users", "name", "full_name"))
}

func TestAddConstraint(t *testing.T) {
	b := New()

	assert.Equal(t,
		`ALTER TABLE "users" ADD CONSTRAINT "users_age_check" CHECK (age >= 0);`,
		b.AddConstraint("users", "users_age_check", "CHECK (age >= 0)"))

	// The CONSTRAINT clause is omitted entirely without a name.
	assert.Equal(t,
		`ALTER TABLE "users" ADD CHECK (age >= 0);`,
		b.AddConstraint("users", "", "CHECK (age >= 0)"))
}

func TestDropConstraint(t *testing.T) {
	b := New()

	stmt, err := b.DropConstraint("users", "users_age_check")
	require.NoError(t, err)
	assert.Equal(t, `ALTER TABLE "users" DROP CONSTRAINT "users_age_check";`, stmt)

	_, err = b.DropConstraint("users", "")
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestCreateEnumType(t *testing.T) {
	assert.Equal(t,
		`CREATE TYPE "mood" AS ENUM ('sad', 'ok', 'happy');`,
		New().CreateEnumType("mood", []string{"sad", "ok", "happy"}))
}

func TestCreateCompositeType(t *testing.T) {
	b := New()
	cols := NewColumnSet().
		Add("street", ColumnDef{Type: "string"}).
		Add("zip", ColumnDef{Type: "varchar(10)"})

	assert.Equal(t,
		"CREATE TYPE \"address\" AS (\n"+
			"  \"street\" text,\n"+
			"  \"zip\" varchar(10)\n"+
			");",
		b.CreateCompositeType("address", cols))
}

func TestDropType(t *testing.T) {
	assert.Equal(t, `DROP TYPE "mood";`, New().DropType("mood"))
}

func TestAlterTypeUnsupported(t *testing.T) {
	_, err := New().AlterType("mood")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestBuildDispatch(t *testing.T) {
	b := New()
	cols := NewColumnSet().Add("id", Shorthand("id"))

	tests := []struct {
		name     string
		op       Operation
		expected string
	}{
		{"CreateTable", CreateTable{Table: "users", Columns: cols},
			"CREATE TABLE \"users\" (\n  \"id\" serial PRIMARY KEY\n);"},
		{"DropTable", DropTable{Table: "users"}, `DROP TABLE "users";`},
		{"RenameTable", RenameTable{From: "a", To: "b"}, `ALTER TABLE "a" RENAME TO "b";`},
		{"DropColumns", DropColumns{Table: "users", Columns: []string{"age"}},
			"ALTER TABLE \"users\"\n  DROP \"age\";"},
		{"CreateEnumType", CreateEnumType{Name: "mood", Labels: []string{"ok"}},
			`CREATE TYPE "mood" AS ENUM ('ok');`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := b.Build(tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stmt)
		})
	}

	_, err := b.Build(AlterType{Name: "mood"})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = b.Build(DropConstraint{Table: "users"})
	assert.ErrorIs(t, err, ErrMissingName)
}
