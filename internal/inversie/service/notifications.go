package service

import (
	"context"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
)

type NotificationService struct {
	Store store.Store
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.Store.Notifications().ListNotifications(ctx, userID)
}

// MarkRead flags one of the caller's notifications as read. Someone else's
// notification is reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return notFound(s.Store.Notifications().MarkRead(ctx, id, userID), "notification")
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.Store.Notifications().MarkAllRead(ctx, userID)
}
