package service

import (
	"context"
	"fmt"

	"github.com/gridcrm/gridcrm-backend/internal/models"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

// OpportunityService manages opportunity CRUD over the Opportunities tab.
type OpportunityService struct {
	reader *readers.Opportunities
	writer *writers.Opportunities
}

func NewOpportunityService(r *readers.Opportunities, w *writers.Opportunities) *OpportunityService {
	return &OpportunityService{reader: r, writer: w}
}

func (s *OpportunityService) List(ctx context.Context) []models.Opportunity {
	return s.reader.List(ctx)
}

func (s *OpportunityService) Get(ctx context.Context, id string) (models.Opportunity, bool) {
	return s.reader.Get(ctx, id)
}

func (s *OpportunityService) ForCompany(ctx context.Context, companyID string, openOnly bool) []models.Opportunity {
	return s.reader.ForCompany(ctx, companyID, openOnly)
}

func (s *OpportunityService) Page(ctx context.Context, page, size int) []models.Opportunity {
	return s.reader.Page(ctx, page, size)
}

func (s *OpportunityService) Create(ctx context.Context, o models.Opportunity) (models.Opportunity, error) {
	if o.Title == "" {
		return models.Opportunity{}, fmt.Errorf("opportunity title is required")
	}
	if o.CompanyID == "" {
		return models.Opportunity{}, fmt.Errorf("opportunity company_id is required")
	}
	return s.writer.Create(ctx, o)
}

func (s *OpportunityService) Update(ctx context.Context, o models.Opportunity) error {
	current, ok := s.reader.Get(ctx, o.ID)
	if !ok {
		return fmt.Errorf("opportunity %s not found", o.ID)
	}
	o.Row = current.Row
	if o.CreatedAt == "" {
		o.CreatedAt = current.CreatedAt
	}
	return s.writer.Update(ctx, o)
}

// SetStage moves an opportunity through the pipeline.
func (s *OpportunityService) SetStage(ctx context.Context, id, stage string) error {
	current, ok := s.reader.Get(ctx, id)
	if !ok {
		return fmt.Errorf("opportunity %s not found", id)
	}
	current.Stage = stage
	return s.writer.Update(ctx, current)
}
