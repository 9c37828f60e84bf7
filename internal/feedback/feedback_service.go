package feedback

import (
	"context"
	"errors"

	feedbackerrors "github.com/alex-morcg/horarios-vacaciones/internal/feedback/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=feedback_service.go -destination=mock/feedback_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, code, name string, req CreateItemRequest) (ItemResponse, error)
	GetAll(ctx context.Context) ([]ItemResponse, error)
	ToggleCompleted(ctx context.Context, id, code, name string) (ItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, code, name string, req CreateItemRequest) (ItemResponse, error) {
	item := Item{
		ID:           uuid.New(),
		EmployeeCode: code,
		EmployeeName: name,
		Text:         req.Text,
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return ItemResponse{}, err
	}
	return mapToResponse(item), nil
}

func (s *service) GetAll(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

// ToggleCompleted flips the done flag, remembering who completed the item.
// Un-toggling clears the stamp again.
func (s *service) ToggleCompleted(ctx context.Context, id, code, name string) (ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ItemResponse{}, feedbackerrors.ErrItemNotFound
		}
		return ItemResponse{}, err
	}

	item.Completed = !item.Completed
	if item.Completed {
		item.CompletedByCode = &code
		item.CompletedByName = &name
	} else {
		item.CompletedByCode = nil
		item.CompletedByName = nil
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return ItemResponse{}, err
	}
	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return feedbackerrors.ErrItemNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
