package domain

// CounselorLoad is one row of the per-counselor workload report.
type CounselorLoad struct {
	Name         string
	Appointments int
}

// Analytics aggregates booking figures for the admin dashboard.
type Analytics struct {
	TotalBookings       int
	PendingAppointments int
	CounselorWorkload   []CounselorLoad
}
