package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type PartRepository interface {
	Create(ctx context.Context, part *model.Part) (string, error)
	PartByID(ctx context.Context, id string) (*model.Part, error)
	List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
	Update(ctx context.Context, id string, patch model.PartPatch) error
	Delete(ctx context.Context, id string) error
}

type PartEventSender interface {
	SendPartEvent(ctx context.Context, event model.PartEvent) error
}

type service struct {
	repo           PartRepository
	events         PartEventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

// NewInventoryService builds the parts service. A zero timeout disables the
// corresponding deadline.
func NewInventoryService(
	repo PartRepository,
	events PartEventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

func (s *service) Create(ctx context.Context, part *model.Part) (string, error) {
	const op = "inventory.service.Create"

	if part == nil {
		return "", fmt.Errorf("%s: %w", op, model.NewValidationError("part is required"))
	}

	log := logger.With(
		logger.String("part_name", part.Name),
		logger.Int64("part_number", part.Number),
	)

	if err := validatePart(part); err != nil {
		log.Error(ctx, "validation: create part", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	id, err := s.repo.Create(ctx, &model.Part{
		Name:    part.Name,
		Number:  part.Number,
		InStock: part.InStock,
		OnOrder: part.OnOrder,
	})
	if err != nil {
		log.Error(ctx, "repository create part", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.PartCreated, id)

	return id, nil
}

func (s *service) Part(ctx context.Context, partID string) (*model.Part, error) {
	const op = "inventory.service.Part"
	log := logger.With(
		logger.String("part_id", partID),
	)

	if err := model.ValidatePartID(partID); err != nil {
		log.Error(ctx, "validation: part id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByID(ctx, partID)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s *service) ListParts(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "inventory.service.ListParts"
	log := logger.With(
		logger.Int("names_count", len(filter.Names)),
	)

	ctx, cancel := withTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Update(ctx context.Context, partID string, patch model.PartPatch) error {
	const op = "inventory.service.Update"
	log := logger.With(
		logger.String("part_id", partID),
	)

	if err := model.ValidatePartID(partID); err != nil {
		log.Error(ctx, "validation: part id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePatch(patch); err != nil {
		log.Error(ctx, "validation: update part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, partID, patch); err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.PartUpdated, partID)

	return nil
}

func (s *service) Delete(ctx context.Context, partID string) error {
	const op = "inventory.service.Delete"
	log := logger.With(
		logger.String("part_id", partID),
	)

	if err := model.ValidatePartID(partID); err != nil {
		log.Error(ctx, "validation: part id", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := withTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, partID); err != nil {
		log.Error(ctx, "repository delete part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.PartDeleted, partID)

	return nil
}

// publish never fails the caller: the store write has already happened.
func (s *service) publish(ctx context.Context, typ model.PartEventType, partID string) {
	if s.events == nil {
		return
	}

	err := s.events.SendPartEvent(ctx, model.PartEvent{
		EventID:    uuid.New(),
		Type:       typ,
		PartID:     partID,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		logger.Error(ctx, "send part event",
			logger.String("event_type", string(typ)),
			logger.String("part_id", partID),
			logger.ErrorF(err),
		)
	}
}

func validatePart(p *model.Part) error {
	var reasons []string
	if strings.TrimSpace(p.Name) == "" {
		reasons = append(reasons, "partName must be non-empty")
	}
	if p.InStock < 0 {
		reasons = append(reasons, "inStock must be non-negative")
	}
	if p.OnOrder < 0 {
		reasons = append(reasons, "onOrder must be non-negative")
	}
	if len(reasons) > 0 {
		return model.NewValidationError(reasons...)
	}
	return nil
}

func validatePatch(p model.PartPatch) error {
	if p.Empty() {
		return model.NewValidationError("update must set at least one field")
	}

	var reasons []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		reasons = append(reasons, "partName must be non-empty")
	}
	if p.InStock != nil && *p.InStock < 0 {
		reasons = append(reasons, "inStock must be non-negative")
	}
	if p.OnOrder != nil && *p.OnOrder < 0 {
		reasons = append(reasons, "onOrder must be non-negative")
	}
	if len(reasons) > 0 {
		return model.NewValidationError(reasons...)
	}
	return nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
