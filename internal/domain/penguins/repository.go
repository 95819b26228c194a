package penguins

import (
	"context"
	"time"
)

// Repository es el contrato del document store.
// El store asigna el id en Create; Update aplica el patch de forma atómica.
// Los errores salen tipados (*Error / KindOf).
type Repository interface {
	Create(ctx context.Context, p Penguin) (Penguin, error)
	GetByID(ctx context.Context, id string) (Penguin, error)
	List(ctx context.Context) ([]Penguin, error)
	Update(ctx context.Context, id string, patch Patch, updatedAt time.Time) (Penguin, error)
	Delete(ctx context.Context, id string) error
}
