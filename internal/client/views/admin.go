package views

import (
	"context"
	"sync"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// AdminDashboard shows booking analytics.
type AdminDashboard struct {
	client api.Client

	mu        sync.Mutex
	analytics *domain.Analytics

	Notifications NotificationCenter
}

// NewAdminDashboard builds the view model.
func NewAdminDashboard(client api.Client) *AdminDashboard {
	return &AdminDashboard{client: client}
}

// Load fetches the analytics report.
func (d *AdminDashboard) Load(ctx context.Context) {
	analytics, err := d.client.GetAnalytics(ctx)
	if err != nil {
		d.Notifications.Push(NotificationError, "Failed to load analytics. Please try again.")
		return
	}
	d.mu.Lock()
	d.analytics = analytics
	d.mu.Unlock()
}

// Analytics returns the last loaded report, nil before the first
// successful load.
func (d *AdminDashboard) Analytics() *domain.Analytics {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.analytics
}
