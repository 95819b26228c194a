package penguins

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Species     string
	FirstName   string
	Description string
	Gender      string
}

// Create valida el registro completo antes de tocar el store:
// un registro inválido nunca llega a escribirse.
func (s *Service) Create(ctx context.Context, in CreateInput) (Penguin, error) {
	now := s.timestamp()
	p := Penguin{
		Species:     in.Species,
		FirstName:   in.FirstName,
		Description: in.Description,
		Gender:      in.Gender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := p.Validate(); err != nil {
		return Penguin{}, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id string) (Penguin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Penguin, error) {
	return s.repo.List(ctx)
}

// Update: primero el id (mal formado => not found), después el patch, después el store.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Penguin, error) {
	key, err := ParseID("update", id)
	if err != nil {
		return Penguin{}, err
	}
	if err := patch.Validate(); err != nil {
		return Penguin{}, err
	}
	return s.repo.Update(ctx, key, patch, s.timestamp())
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Postgres guarda microsegundos; truncamos acá para que lo devuelto en POST
// sea idéntico a lo que devuelve un GET posterior.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
