package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type calendarStore interface {
	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	AddEvent(ctx context.Context, event models.CalendarEvent) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// AddEventRequest is the payload for creating a calendar event.
type AddEventRequest struct {
	Title       string           `json:"title" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	Type        models.EventType `json:"type" validate:"required,oneof=exam holiday deadline meeting other"`
	Description string           `json:"description"`
}

// CalendarService manages institutional events.
type CalendarService struct {
	store     calendarStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs a CalendarService.
func NewCalendarService(store calendarStore, validate *validator.Validate, logger *zap.Logger) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{store: store, validator: validate, logger: logger}
}

// List returns all calendar events.
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Add validates and stores a new event.
func (s *CalendarService) Add(ctx context.Context, req AddEventRequest) (*models.CalendarEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "event date must be YYYY-MM-DD")
	}

	event := models.CalendarEvent{
		Title:       req.Title,
		Date:        req.Date,
		Type:        req.Type,
		Description: req.Description,
	}

	created, err := s.store.AddEvent(ctx, event)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add event")
	}
	return created, nil
}

// Delete removes an event.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	return nil
}
