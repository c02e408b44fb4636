package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	"github.com/brightpath-edu/counseling-scheduler/internal/events"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
	apperrors "github.com/brightpath-edu/counseling-scheduler/pkg/util"
)

// CreateAppointmentInput captures a booking request.
type CreateAppointmentInput struct {
	CounselorID string
	Date        string
	Time        string
	Type        string
}

// AppointmentService owns the appointment lifecycle.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	counselors   repository.CounselorRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAppointmentService builds the service.
func NewAppointmentService(appointments repository.AppointmentRepository, counselors repository.CounselorRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		counselors:   counselors,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// List returns the appointments visible to the subject for its role.
func (s *AppointmentService) List(ctx context.Context, subjectID string, role domain.Role) ([]domain.Appointment, error) {
	return s.appointments.ListBySubject(ctx, subjectID, role)
}

// Create books a new appointment for the acting student. New bookings
// always start pending; only a counselor decision moves them.
func (s *AppointmentService) Create(ctx context.Context, actor *domain.Identity, input CreateAppointmentInput) (*domain.Appointment, error) {
	if input.CounselorID == "" || input.Date == "" || input.Time == "" {
		return nil, apperrors.NewValidationError("counselorId, date and time required", nil)
	}

	counselor, err := s.counselors.GetByID(ctx, input.CounselorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("counselor", map[string]any{"id": input.CounselorID})
		}
		return nil, err
	}
	if !counselor.Available {
		return nil, apperrors.NewConflict("counselor not available", map[string]any{"id": counselor.ID})
	}

	appointment := &domain.Appointment{
		StudentID:     actor.ID,
		CounselorID:   counselor.ID,
		StudentName:   actor.Name,
		CounselorName: counselor.Name,
		Date:          input.Date,
		Time:          input.Time,
		Status:        domain.AppointmentStatusPending,
		Type:          input.Type,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          events.EventAppointmentCreated,
		AppointmentID: appointment.ID,
		Actor:         events.Actor{ID: actor.ID, Role: actor.PrimaryRole()},
		Timestamp:     time.Now(),
		Payload: events.AppointmentCreatedPayload{
			StudentName:   appointment.StudentName,
			CounselorName: appointment.CounselorName,
			Date:          appointment.Date,
			Time:          appointment.Time,
			Type:          appointment.Type,
		},
	})
	return appointment, nil
}

// SetStatus applies a counselor decision. The only legal transitions are
// pending→confirmed and pending→rejected.
func (s *AppointmentService) SetStatus(ctx context.Context, actor *domain.Identity, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if status != domain.AppointmentStatusConfirmed && status != domain.AppointmentStatusRejected {
		return nil, apperrors.NewValidationError("status must be confirmed or rejected", map[string]any{"status": string(status)})
	}

	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return nil, err
	}

	oldStatus := appointment.Status
	if !oldStatus.CanTransitionTo(status) {
		return nil, apperrors.NewConflict("illegal status transition", map[string]any{
			"from": string(oldStatus),
			"to":   string(status),
		})
	}

	appointment.Status = status
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          events.EventAppointmentStatusChanged,
		AppointmentID: appointment.ID,
		Actor:         events.Actor{ID: actor.ID, Role: actor.PrimaryRole()},
		Timestamp:     time.Now(),
		Payload: events.AppointmentStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return appointment, nil
}

func (s *AppointmentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
