package service

import (
	"context"
	"fmt"

	"github.com/jengzang/handover-backend-go/internal/logging"
	"github.com/jengzang/handover-backend-go/internal/models"
	"github.com/jengzang/handover-backend-go/internal/observability"
	"github.com/jengzang/handover-backend-go/internal/repository"
)

// EventLoader produces the event table; failures are absorbed into a fallback
type EventLoader interface {
	Load(ctx context.Context) ([]models.EventRow, models.EventTableMeta)
}

// EventService keeps the stored event table in sync with its source
type EventService struct {
	loader  EventLoader
	repo    *repository.EventRepository
	metrics *observability.Collector
	log     logging.Logger
}

// NewEventService creates a new event service
func NewEventService(loader EventLoader, repo *repository.EventRepository, metrics *observability.Collector, log logging.Logger) *EventService {
	if log == nil {
		log = logging.Noop()
	}
	return &EventService{loader: loader, repo: repo, metrics: metrics, log: log}
}

// Reload fetches the table and replaces the stored copy
func (s *EventService) Reload(ctx context.Context) (*models.EventTable, error) {
	rows, meta := s.loader.Load(ctx)
	meta.RowCount = len(rows)

	if err := s.repo.Replace(ctx, rows, meta); err != nil {
		return nil, fmt.Errorf("failed to store event table: %w", err)
	}
	s.metrics.SetEventTable(string(meta.Source), len(rows))
	s.log.Info(ctx, "event table stored",
		logging.String("source", string(meta.Source)), logging.Int("rows", len(rows)))

	return &models.EventTable{Meta: meta, Rows: rows}, nil
}

// Table returns the stored table, loading it first when nothing is stored
func (s *EventService) Table(ctx context.Context) (*models.EventTable, error) {
	meta, err := s.repo.Meta(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event table: %w", err)
	}
	if meta == nil {
		return s.Reload(ctx)
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event table: %w", err)
	}
	return &models.EventTable{Meta: *meta, Rows: rows}, nil
}
