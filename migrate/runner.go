package migrate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/migrakit/migra/cache"
	"github.com/migrakit/migra/ddl"
	"github.com/migrakit/migra/dialect"
	"github.com/migrakit/migra/utils"
)

// DB is the subset of pgxpool.Pool the runner needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Runner executes migration plans against Postgres and records what was
// applied in a history table, itself created with the ddl builders.
type Runner struct {
	db      DB
	builder *ddl.Builder
	dialect dialect.Dialect
	stmts   *cache.StatementCache
	logf    func(format string, args ...any)
	history string
	runID   uuid.UUID
}

type RunnerOption func(*Runner)

// WithBuilder replaces the default ddl builder, e.g. to install custom
// column shorthands.
func WithBuilder(b *ddl.Builder) RunnerOption {
	return func(r *Runner) { r.builder = b }
}

// WithLogger installs a printf-style hook called once per applied
// statement.
func WithLogger(logf func(format string, args ...any)) RunnerOption {
	return func(r *Runner) { r.logf = logf }
}

// WithHistoryTable overrides the default history table name.
func WithHistoryTable(name string) RunnerOption {
	return func(r *Runner) { r.history = name }
}

func NewRunner(db DB, opts ...RunnerOption) *Runner {
	r := &Runner{
		db:      db,
		builder: ddl.New(),
		dialect: dialect.NewPostgresDialect(),
		stmts:   cache.NewStatementCache(256),
		logf:    func(string, ...any) {},
		history: "migra_history",
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Plan renders the forward statements of a migration without executing
// anything. Rendered text is memoized per migration ID.
func (r *Runner) Plan(m Migration) ([]string, error) {
	return r.plan(m.ID+":up", m.Ops)
}

// DownPlan renders the rollback statements of a migration.
func (r *Runner) DownPlan(m Migration) ([]string, error) {
	ops, err := m.Down()
	if err != nil {
		return nil, err
	}
	return r.plan(m.ID+":down", ops)
}

func (r *Runner) plan(key string, ops []ddl.Operation) ([]string, error) {
	base := utils.FingerprintString(key)
	stmts := make([]string, 0, len(ops))
	for i, op := range ops {
		op := op
		stmt, err := r.stmts.GetOrRender(utils.Mix64(base, uint64(i)), func() (string, error) {
			return r.builder.Build(op)
		})
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Apply runs every not-yet-applied migration in the given order and
// records each one in the history table.
func (r *Runner) Apply(ctx context.Context, migrations ...Migration) error {
	if err := r.ensureHistory(ctx); err != nil {
		return err
	}
	applied, err := r.applied(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.ID] {
			continue
		}
		stmts, err := r.Plan(m)
		if err != nil {
			return fmt.Errorf("plan %s: %w", m.Name, err)
		}
		for _, stmt := range stmts {
			if _, err := r.db.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("apply %s: %w", m.Name, err)
			}
			r.logf("applied %s: %s", m.Name, stmt)
		}
		if err := r.record(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Rollback derives and runs the rollback plan of one migration, then
// removes it from history.
func (r *Runner) Rollback(ctx context.Context, m Migration) error {
	stmts, err := r.DownPlan(m)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("rollback %s: %w", m.Name, err)
		}
		r.logf("rolled back %s: %s", m.Name, stmt)
	}
	_, err = r.db.Exec(ctx,
		"DELETE FROM "+r.dialect.QuoteIdentifier(r.history)+" WHERE \"id\" = $1", m.ID)
	return err
}

func (r *Runner) ensureHistory(ctx context.Context) error {
	cols := ddl.NewColumnSet().
		Add("id", ddl.ColumnDef{Type: "string", PrimaryKey: true}).
		Add("name", ddl.ColumnDef{Type: "string", NotNull: true}).
		Add("run_id", ddl.ColumnDef{Type: "uuid", NotNull: true}).
		Add("applied_at", ddl.ColumnDef{
			Type:    "timestamptz",
			NotNull: true,
			Default: dialect.Raw("now()"),
		})

	stmt := r.builder.CreateTable(r.history, cols, &ddl.TableOptions{IfNotExists: true})
	_, err := r.db.Exec(ctx, stmt)
	return err
}

func (r *Runner) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.Query(ctx,
		"SELECT \"id\" FROM "+r.dialect.QuoteIdentifier(r.history))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *Runner) record(ctx context.Context, m Migration) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO "+r.dialect.QuoteIdentifier(r.history)+
			" (\"id\", \"name\", \"run_id\") VALUES ($1, $2, $3)",
		m.ID, m.Name, r.runID)
	return err
}
