package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/events"
)

// NotificationService logs appointment lifecycle events. The counseling
// office reads these from the log stream; no outbound channel exists yet.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentCreated, n.handleAppointmentCreated)
	n.dispatcher.Subscribe(events.EventAppointmentStatusChanged, n.handleStatusChanged)
}

func (n *NotificationService) handleAppointmentCreated(_ context.Context, event events.Event) error {
	n.logger.Info("AppointmentCreated",
		zap.String("appointment_id", event.AppointmentID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("AppointmentStatusChanged",
		zap.String("appointment_id", event.AppointmentID),
		zap.Any("payload", event.Payload))
	return nil
}
