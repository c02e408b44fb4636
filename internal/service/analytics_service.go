package service

import (
	"context"
	"sort"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	"github.com/brightpath-edu/counseling-scheduler/internal/repository"
)

// AnalyticsService aggregates booking figures for the admin dashboard.
type AnalyticsService struct {
	appointments repository.AppointmentRepository
}

// NewAnalyticsService builds the service.
func NewAnalyticsService(appointments repository.AppointmentRepository) *AnalyticsService {
	return &AnalyticsService{appointments: appointments}
}

// Report computes totals and the per-counselor workload.
func (s *AnalyticsService) Report(ctx context.Context) (*domain.Analytics, error) {
	all, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.Analytics{TotalBookings: len(all)}
	workload := make(map[string]int)
	for _, appointment := range all {
		if appointment.Status == domain.AppointmentStatusPending {
			report.PendingAppointments++
		}
		workload[appointment.CounselorName]++
	}

	report.CounselorWorkload = make([]domain.CounselorLoad, 0, len(workload))
	for name, count := range workload {
		report.CounselorWorkload = append(report.CounselorWorkload, domain.CounselorLoad{Name: name, Appointments: count})
	}
	sort.Slice(report.CounselorWorkload, func(i, j int) bool {
		a, b := report.CounselorWorkload[i], report.CounselorWorkload[j]
		if a.Appointments != b.Appointments {
			return a.Appointments > b.Appointments
		}
		return a.Name < b.Name
	})
	return report, nil
}
