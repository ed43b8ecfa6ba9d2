// Package migrate applies and rolls back schema migrations described as
// ddl operations. It is the consumer of the ddl package's inverse
// registry: a migration only declares its forward operations, and the
// rollback plan is derived.
package migrate

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/migrakit/migra/ddl"
)

// Migration is an ordered set of forward schema operations under one
// identity. The ID is a ULID so migrations sort by creation time.
type Migration struct {
	ID   string
	Name string
	Ops  []ddl.Operation
}

func New(name string, ops ...ddl.Operation) Migration {
	return Migration{
		ID:   ulid.Make().String(),
		Name: name,
		Ops:  ops,
	}
}

// Down derives the rollback operations: the inverse of each forward
// operation, in reverse order. Any irreversible operation makes the whole
// migration irreversible.
func (m Migration) Down() ([]ddl.Operation, error) {
	down := make([]ddl.Operation, 0, len(m.Ops))
	for i := len(m.Ops) - 1; i >= 0; i-- {
		inv, err := ddl.Inverse(m.Ops[i])
		if err != nil {
			return nil, fmt.Errorf("migration %s op %d: %w", m.Name, i, err)
		}
		down = append(down, inv)
	}
	return down, nil
}
