package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StateRepository implements port.StateStore on top of the dashboard_state
// table using pgxpool. One row per key, upsert on write.
type StateRepository struct {
	pool *pgxpool.Pool
}

// NewStateRepository returns a new repository instance.
func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

func (r *StateRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM dashboard_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *StateRepository) Put(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO dashboard_state (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value)
	return err
}

// PutAll writes all entries in one transaction so related keys are never
// observed partially written.
func (r *StateRepository) PutAll(ctx context.Context, entries map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for key, value := range entries {
		if _, err = tx.Exec(ctx, `INSERT INTO dashboard_state (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, key, value); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *StateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM dashboard_state WHERE key = $1`, key)
	return err
}
