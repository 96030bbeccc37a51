package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/mail"
)

// NotificationService turns domain events into outbound notifications.
type NotificationService struct {
	dispatcher  events.Dispatcher
	mailer      mail.Mailer
	logger      *zap.Logger
	frontendURL string
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, mailer mail.Mailer, logger *zap.Logger, frontendURL string) *NotificationService {
	return &NotificationService{
		dispatcher:  dispatcher,
		mailer:      mailer,
		logger:      logger,
		frontendURL: frontendURL,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
}

// handleUserRegistered sends the email-verification link. Delivery failure is
// logged, never surfaced to the registration flow.
func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserRegisteredPayload)
	if !ok {
		return nil
	}
	n.logger.Info("UserRegistered", zap.String("user_id", payload.UserID), zap.String("role", string(payload.Role)))

	subject := "Verify your email"
	body := fmt.Sprintf("Click the link to verify your email: %s/verify/%s", n.frontendURL, payload.UserID)
	if err := n.mailer.Send(payload.Email, subject, body); err != nil {
		n.logger.Error("verification email failed", zap.String("user_id", payload.UserID), zap.Error(err))
	}
	return nil
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationSubmitted", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("ApplicationStatusChanged", zap.Any("payload", event.Payload))
	return nil
}
