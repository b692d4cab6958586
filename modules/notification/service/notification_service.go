package service

import (
	"context"
	"time"

	coreEntity "amparo-api/core/entity"
	"amparo-api/core/errors"
	"amparo-api/core/params"
	"amparo-api/modules/notification/dto"
	"amparo-api/modules/notification/entity"
	"amparo-api/modules/notification/repository"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

type NotificationServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError
	List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError)
	MarkAsRead(ctx context.Context, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context) *errors.AppError
	CountUnread(ctx context.Context) (int, *errors.AppError)
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) *errors.AppError {
	notif := &entity.Notification{
		ParticipantID: req.ParticipantID,
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
		Data:          entity.JSONB(req.Data),
		IsRead:        false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.repo.Create(ctx, notif); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to create notification", err)
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError) {
	result, err := s.repo.FetchAll(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch notifications", err)
	}
	return result, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, ids []string) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "Failed to count unread notifications", err)
	}
	return count, nil
}
