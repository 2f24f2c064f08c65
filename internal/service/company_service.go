// Package service holds the business logic between the HTTP handlers and
// the reader/writer pairs.
package service

import (
	"context"
	"fmt"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

// CompanyService manages company CRUD over the Companies tab.
type CompanyService struct {
	reader *readers.Companies
	writer *writers.Companies
}

func NewCompanyService(r *readers.Companies, w *writers.Companies) *CompanyService {
	return &CompanyService{reader: r, writer: w}
}

func (s *CompanyService) List(ctx context.Context) []models.Company {
	return s.reader.List(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id string) (models.Company, bool) {
	return s.reader.Get(ctx, id)
}

func (s *CompanyService) FindByName(ctx context.Context, name string) (models.Company, bool) {
	return s.reader.FindByName(ctx, name)
}

func (s *CompanyService) Search(ctx context.Context, q string) []models.Company {
	return s.reader.Search(ctx, q)
}

func (s *CompanyService) Page(ctx context.Context, page, size int) []models.Company {
	return s.reader.Page(ctx, page, size)
}

func (s *CompanyService) Create(ctx context.Context, c models.Company) (models.Company, error) {
	if c.Name == "" {
		return models.Company{}, fmt.Errorf("company name is required")
	}
	return s.writer.Create(ctx, c)
}

// Update re-resolves the target row from the current cache before writing;
// the incoming record's row index may predate another writer's mutation.
func (s *CompanyService) Update(ctx context.Context, c models.Company) error {
	current, ok := s.reader.Get(ctx, c.ID)
	if !ok {
		return fmt.Errorf("company %s not found", c.ID)
	}
	c.Row = current.Row
	if c.CreatedAt == "" {
		c.CreatedAt = current.CreatedAt
	}
	return s.writer.Update(ctx, c)
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	current, ok := s.reader.Get(ctx, id)
	if !ok {
		return fmt.Errorf("company %s not found", id)
	}
	return s.writer.Delete(ctx, current)
}
