package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"penguin-api/internal/domain/penguins"

	"github.com/google/uuid"
)

var _ penguins.Repository = (*PenguinsRepo)(nil)

// PenguinsRepo guarda el documento como JSON en una columna TEXT.
// Los timestamps van como unix nanos para no perder precisión.
type PenguinsRepo struct {
	DB *sql.DB
}

func NewPenguinsRepo(db *sql.DB) *PenguinsRepo {
	return &PenguinsRepo{DB: db}
}

func (r *PenguinsRepo) Create(ctx context.Context, p penguins.Penguin) (penguins.Penguin, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("create", fmt.Errorf("marshal doc: %w", err))
	}

	p.ID = uuid.NewString()
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO penguins (id, doc, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.ID, string(doc), p.CreatedAt.UnixNano(), p.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("create", err)
	}
	return p, nil
}

func (r *PenguinsRepo) GetByID(ctx context.Context, id string) (penguins.Penguin, error) {
	key, err := penguins.ParseID("get", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	row := r.DB.QueryRowContext(ctx,
		`SELECT id, doc, created_at, updated_at FROM penguins WHERE id = ?`, key,
	)
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
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, doc, created_at, updated_at FROM penguins ORDER BY created_at ASC, rowid ASC`,
	)
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

// Update usa json_patch (RFC 7396) en un solo UPDATE ... RETURNING.
func (r *PenguinsRepo) Update(ctx context.Context, id string, patch penguins.Patch, updatedAt time.Time) (penguins.Penguin, error) {
	key, err := penguins.ParseID("update", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	doc, err := json.Marshal(patch)
	if err != nil {
		return penguins.Penguin{}, penguins.StoreError("update", fmt.Errorf("marshal patch: %w", err))
	}

	row := r.DB.QueryRowContext(ctx,
		`UPDATE penguins SET doc = json_patch(doc, ?), updated_at = ?
		 WHERE id = ?
		 RETURNING id, doc, created_at, updated_at`,
		string(doc), updatedAt.UnixNano(), key,
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

	res, err := r.DB.ExecContext(ctx, `DELETE FROM penguins WHERE id = ?`, key)
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
		p                    penguins.Penguin
		doc                  string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&p.ID, &doc, &createdAt, &updatedAt); err != nil {
		return penguins.Penguin{}, err
	}
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return penguins.Penguin{}, fmt.Errorf("decode doc: %w", err)
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	p.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return p, nil
}
