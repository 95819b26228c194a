package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"penguin-api/internal/domain/penguins"
)

var _ penguins.Repository = (*PenguinsRepo)(nil)

// PenguinsRepo guarda cada pingüino como documento jsonb.
// El id lo asigna Postgres (gen_random_uuid) en el INSERT.
type PenguinsRepo struct {
	db *sql.DB
}

func NewPenguinsRepo(db *sql.DB) *PenguinsRepo {
	return &PenguinsRepo{db: db}
}

func (r *PenguinsRepo) Create(ctx context.Context, p penguins.Penguin) (penguins.Penguin, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("create", fmt.Errorf("marshal doc: %w", err))
	}

	var id string
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO penguins (doc, created_at, updated_at)
		VALUES ($1::jsonb, $2, $3)
		RETURNING id
	`,
		string(doc),
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("create", err)
	}

	p.ID = id
	return p, nil
}

func (r *PenguinsRepo) GetByID(ctx context.Context, id string) (penguins.Penguin, error) {
	key, err := penguins.ParseID("get", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, doc, created_at, updated_at
		FROM penguins
		WHERE id = $1
	`, key)

	p, err := scanPenguin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return penguins.Penguin{}, penguins.NotFound("get", key)
		}
		return penguins.Penguin{}, penguins.StoreError("get", err)
	}
	return p, nil
}

func (r *PenguinsRepo) List(ctx context.Context) ([]penguins.Penguin, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, doc, created_at, updated_at
		FROM penguins
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, penguins.StoreError("list", err)
	}
	defer rows.Close()

	out := make([]penguins.Penguin, 0)
	for rows.Next() {
		p, err := scanPenguin(rows)
		if err != nil {
			return nil, penguins.StoreError("list", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, penguins.StoreError("list", err)
	}
	return out, nil
}

// Update mergea el patch sobre el documento en un único statement (jsonb ||),
// así dos PUT concurrentes sobre campos distintos no se pisan.
func (r *PenguinsRepo) Update(ctx context.Context, id string, patch penguins.Patch, updatedAt time.Time) (penguins.Penguin, error) {
	key, err := penguins.ParseID("update", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	doc, err := json.Marshal(patch)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("update", fmt.Errorf("marshal patch: %w", err))
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE penguins
		SET
			doc = doc || $2::jsonb,
			updated_at = $3
		WHERE id = $1
		RETURNING id, doc, created_at, updated_at
	`,
		key,
		string(doc),
		updatedAt,
	)

	p, err := scanPenguin(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return penguins.Penguin{}, penguins.NotFound("update", key)
		}
		return penguins.Penguin{}, penguins.StoreError("update", err)
	}
	return p, nil
}

func (r *PenguinsRepo) Delete(ctx context.Context, id string) error {
	key, err := penguins.ParseID("delete", id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM penguins WHERE id = $1`, key)
	if err != nil {
		return penguins.StoreError("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return penguins.StoreError("delete", err)
	}
	if n == 0 {
		return penguins.NotFound("delete", key)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPenguin(row rowScanner) (penguins.Penguin, error) {
	var (
		p   penguins.Penguin
		doc []byte
	)
	if err := row.Scan(&p.ID, &doc, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return penguins.Penguin{}, err
	}
	if err := json.Unmarshal(doc, &p); err != nil {
		return penguins.Penguin{}, fmt.Errorf("decode doc: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
