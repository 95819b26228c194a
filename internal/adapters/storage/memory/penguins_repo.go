package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"penguin-api/internal/domain/penguins"

	"github.com/google/uuid"
)

var _ penguins.Repository = (*penguinRepo)(nil)

type entry struct {
	p   penguins.Penguin
	seq uint64
}

type penguinRepo struct {
	mu   sync.RWMutex
	byID map[string]entry
	seq  uint64
}

func NewPenguinRepo() penguins.Repository {
	return &penguinRepo{
		byID: make(map[string]entry),
	}
}

func (r *penguinRepo) Create(ctx context.Context, p penguins.Penguin) (penguins.Penguin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// UUIDv4: los ids no se reutilizan aunque se borre el registro.
	id := uuid.NewString()
	for {
		if _, exists := r.byID[id]; !exists {
			break
		}
		id = uuid.NewString()
	}

	p.ID = id
	r.seq++
	r.byID[id] = entry{p: p, seq: r.seq}
	return p, nil
}

func (r *penguinRepo) GetByID(ctx context.Context, id string) (penguins.Penguin, error) {
	key, err := penguins.ParseID("get", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[key]
	if !ok {
		return penguins.Penguin{}, penguins.NotFound("get", key)
	}
	return e.p, nil
}

func (r *penguinRepo) List(ctx context.Context) ([]penguins.Penguin, error) {
	r.mu.RLock()
	entries := make([]entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	// Orden de inserción, igual que ORDER BY created_at, id en SQL.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	out := make([]penguins.Penguin, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.p)
	}
	return out, nil
}

func (r *penguinRepo) Update(ctx context.Context, id string, patch penguins.Patch, updatedAt time.Time) (penguins.Penguin, error) {
	key, err := penguins.ParseID("update", id)
	if err != nil {
		return penguins.Penguin{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[key]
	if !ok {
		return penguins.Penguin{}, penguins.NotFound("update", key)
	}

	e.p = patch.Apply(e.p)
	e.p.UpdatedAt = updatedAt
	r.byID[key] = e
	return e.p, nil
}

func (r *penguinRepo) Delete(ctx context.Context, id string) error {
	key, err := penguins.ParseID("delete", id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[key]; !ok {
		return penguins.NotFound("delete", key)
	}
	delete(r.byID, key)
	return nil
}
