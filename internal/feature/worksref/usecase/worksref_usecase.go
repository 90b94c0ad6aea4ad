// Package usecase implements the business logic for the works reference feature.
package usecase

import (
	"context"

	"admin_backend/internal/feature/worksref/domain/entity"
)

// WorksRepository abstracts the persistence layer for the works reference data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type WorksRepository interface {
	// ListPhases returns all phases ordered by sort_order then id.
	ListPhases(ctx context.Context) ([]entity.Phase, error)
	// ListWorks returns all works with joined phase/stage/substage names.
	ListWorks(ctx context.Context) ([]entity.WorkRow, error)
	// ListWorkMaterials returns the materials used by a work with per-unit consumption.
	ListWorkMaterials(ctx context.Context, workID string) ([]entity.MaterialRow, error)
	// CreateWork persists a new work row with a caller-supplied id.
	CreateWork(ctx context.Context, work *entity.Work) error
}

// WorksrefUsecase provides business logic for the works reference data.
type WorksrefUsecase struct {
	repo WorksRepository
}

// NewWorksrefUsecase creates a new WorksrefUsecase with the given repository.
func NewWorksrefUsecase(r WorksRepository) *WorksrefUsecase {
	return &WorksrefUsecase{repo: r}
}

// ListPhases returns all phases.
func (u *WorksrefUsecase) ListPhases(ctx context.Context) ([]entity.Phase, error) {
	return u.repo.ListPhases(ctx)
}

// ListWorks returns all works with their reference names.
func (u *WorksrefUsecase) ListWorks(ctx context.Context) ([]entity.WorkRow, error) {
	return u.repo.ListWorks(ctx)
}

// ListWorkMaterials returns the materials for a single work.
func (u *WorksrefUsecase) ListWorkMaterials(ctx context.Context, workID string) ([]entity.MaterialRow, error) {
	return u.repo.ListWorkMaterials(ctx, workID)
}

// CreateWork persists a new work row.
func (u *WorksrefUsecase) CreateWork(ctx context.Context, work *entity.Work) error {
	return u.repo.CreateWork(ctx, work)
}
