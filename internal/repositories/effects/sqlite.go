package effects

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/KirkDiggler/reliquary-api/internal/entities/reliquary"
	"github.com/KirkDiggler/reliquary-api/internal/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS effects (
    position         INTEGER NOT NULL,
    effect_id        TEXT PRIMARY KEY,
    description      TEXT NOT NULL DEFAULT '',
    relic_type       TEXT NOT NULL DEFAULT '',
    category         TEXT NOT NULL DEFAULT '',
    compatibility_id TEXT NOT NULL DEFAULT '',
    status_icon_id   TEXT NOT NULL DEFAULT '',
    roll_order       INTEGER
);
`

// SQLiteRepository stores the catalog in an effects table
type SQLiteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite catalog repository
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// NewSQLite opens (or creates) the database and ensures the effects table exists
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open catalog database").
			WithMeta("path", cfg.Path)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to configure catalog database")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create effects table")
	}

	return &SQLiteRepository{db: db}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// List implements Repository
func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	const q = `
		SELECT effect_id, description, relic_type, category, compatibility_id, status_icon_id, roll_order
		FROM effects
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to query effects")
	}
	defer func() {
		_ = rows.Close() // nolint:errcheck // read-only cursor
	}()

	effects := make([]*reliquary.Effect, 0)
	for rows.Next() {
		var (
			e         reliquary.Effect
			relicType string
			order     sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Description, &relicType, &e.Category, &e.CompatibilityID, &e.StatusIconID, &order); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to scan effect row")
		}
		e.RelicType = reliquary.ParseRelicType(relicType)
		if order.Valid {
			v := int(order.Int64)
			e.RollOrder = &v
		}
		effects = append(effects, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to read effect rows")
	}

	if len(effects) == 0 {
		return nil, errors.NotFound("no catalog stored in effects table")
	}

	return &ListOutput{Effects: effects}, nil
}

// Replace implements Repository. The old rows are removed in the same transaction.
func (r *SQLiteRepository) Replace(ctx context.Context, input ReplaceInput) (*ReplaceOutput, error) {
	if len(input.Effects) == 0 {
		return nil, errors.InvalidArgument("effects cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback() // nolint:errcheck // no-op after commit
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM effects"); err != nil {
		return nil, errors.Wrap(err, "failed to clear effects table")
	}

	const q = `
		INSERT INTO effects (position, effect_id, description, relic_type, category, compatibility_id, status_icon_id, roll_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, e := range input.Effects {
		var order sql.NullInt64
		if e.RollOrder != nil {
			order = sql.NullInt64{Int64: int64(*e.RollOrder), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, q, i, e.ID, e.Description, string(e.RelicType), e.Category,
			e.CompatibilityID, e.StatusIconID, order); err != nil {
			return nil, errors.Wrapf(err, "failed to insert effect %s", e.ID).WithMeta("effect_id", e.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit catalog")
	}

	return &ReplaceOutput{Count: len(input.Effects)}, nil
}
