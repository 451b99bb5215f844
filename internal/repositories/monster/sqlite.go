package monster

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationTable = "schema_migrations"

// SQLiteConfig contains configuration for the SQLite monster repository
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// SQLiteRepository implements Repository on a local SQLite file
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database file and applies the embedded migrations
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Create stores a monster
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO monsters (id, name, level, data, imported_at) VALUES (?, ?, ?, ?, ?)`,
		input.Monster.ID,
		input.Monster.Name,
		input.Monster.Level,
		data,
		input.Monster.ImportedAt.UTC().UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("monster with ID %s already exists", input.Monster.ID)
		}
		return nil, errors.Wrapf(err, "failed to create monster")
	}

	slog.DebugContext(ctx, "stored monster",
		"monster_id", input.Monster.ID,
		"name", input.Monster.Name,
		"items", len(input.Monster.Items))

	return &CreateOutput{Monster: input.Monster}, nil
}

// Get retrieves a monster by ID
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM monsters WHERE id = ?`, input.ID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	m, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Monster: m}, nil
}

// List returns monsters ordered by name, then ID
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	limit := -1
	if input.Limit > 0 {
		limit = input.Limit
	}

	rows, err := r.db.QueryContext(ctx, `SELECT data FROM monsters ORDER BY name, id LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters")
	}
	defer func() { _ = rows.Close() }()

	monsters := []*drawsteel.Monster{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan monster")
		}
		m, err := decode(data)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters")
	}

	return &ListOutput{Monsters: monsters}, nil
}

// Delete removes a monster by ID
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM monsters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}
	if n == 0 {
		return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// applyMigrations runs each embedded .sql file once, in name order
func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return errors.Wrap(err, "failed to read migrations")
	}
	sort.Strings(files)

	for _, file := range files {
		var applied int
		err := db.QueryRowContext(ctx,
			`SELECT COUNT(1) FROM `+migrationTable+` WHERE name = ?`, file).Scan(&applied)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration %s", file)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationFS.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", file)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrapf(err, "failed to begin migration %s", file)
		}
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to apply migration %s", file)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
			file, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to record migration %s", file)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit migration %s", file)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
