// Package router decides which top-level view the dashboard shows and
// keeps the displayed route consistent with session state.
//
// Reconcile is a pure step function: one (session, route) input yields at
// most one corrective navigation and exactly one view. The Router applies
// the navigation outside the step, and only when it would actually change
// the route, so re-running with unchanged inputs never navigates again.
package router

import (
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/access"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/routing"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/session"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// View identifies the top-level view to render.
type View string

const (
	ViewLoading            View = "loading"
	ViewLogin              View = "login"
	ViewAccessDenied       View = "access_denied"
	ViewStudentDashboard   View = "student_dashboard"
	ViewCounselorDashboard View = "counselor_dashboard"
	ViewAdminDashboard     View = "admin_dashboard"
)

// State classifies where the reconciliation landed.
type State string

const (
	// StateResolving: session still loading, no decisions yet.
	StateResolving State = "resolving"
	// StateUnauthenticated: no identity.
	StateUnauthenticated State = "unauthenticated"
	// StateNeutralRoute: authenticated on "/" or "/login".
	StateNeutralRoute State = "neutral_route"
	// StateOwnArea: authenticated with access to the current route.
	StateOwnArea State = "own_area"
	// StateDenied: authenticated but the route belongs to another role.
	StateDenied State = "denied"
)

// Decision is the outcome of one reconciliation step. NextRoute is empty
// when no corrective navigation is needed.
type Decision struct {
	State     State
	View      View
	NextRoute string
}

// RoleHome maps a primary role to its dashboard route. RoleNone falls
// back to "/login"; an identity without a dashboard is a dead end.
func RoleHome(role domain.Role) string {
	switch role {
	case domain.RoleStudent:
		return "/student"
	case domain.RoleCounselor:
		return "/counselor"
	case domain.RoleAdmin:
		return "/admin"
	default:
		return "/login"
	}
}

func dashboardFor(role domain.Role) View {
	switch role {
	case domain.RoleStudent:
		return ViewStudentDashboard
	case domain.RoleCounselor:
		return ViewCounselorDashboard
	case domain.RoleAdmin:
		return ViewAdminDashboard
	default:
		return ViewLogin
	}
}

func isNeutral(route string) bool {
	return route == "/" || route == "/login"
}

// Reconcile computes the view and at most one corrective navigation for
// the given session and route. It is pure: no store is touched, and the
// same inputs always produce the same decision.
func Reconcile(snap session.Snapshot, route string) Decision {
	// No redirect decision may be made while the session is loading;
	// "not yet resolved" must not be confused with "resolved to nobody".
	if snap.Loading {
		return Decision{State: StateResolving, View: ViewLoading}
	}

	if snap.Identity == nil {
		decision := Decision{State: StateUnauthenticated, View: ViewLogin}
		if route != "/login" {
			decision.NextRoute = "/login"
		}
		return decision
	}

	primary := snap.Identity.PrimaryRole()

	if isNeutral(route) {
		return Decision{
			State:     StateNeutralRoute,
			View:      dashboardFor(primary),
			NextRoute: RoleHome(primary),
		}
	}

	if !access.HasAccess(snap.Identity, route) {
		// Rendered state, not an error. The view's only action is to
		// navigate to "/", which re-enters the neutral-route rule.
		return Decision{State: StateDenied, View: ViewAccessDenied}
	}

	switch route {
	case "/student":
		return Decision{State: StateOwnArea, View: ViewStudentDashboard}
	case "/counselor":
		return Decision{State: StateOwnArea, View: ViewCounselorDashboard}
	case "/admin":
		return Decision{State: StateOwnArea, View: ViewAdminDashboard}
	default:
		// Unrecognized route while authenticated: head home and show
		// the spinner for the in-between render.
		return Decision{State: StateOwnArea, View: ViewLoading, NextRoute: "/"}
	}
}

// Router runs reconciliation against live stores.
type Router struct {
	session *session.Store
	nav     *routing.Store
	logger  *zap.Logger
}

// New builds a router over the two stores.
func New(sessionStore *session.Store, navStore *routing.Store, logger *zap.Logger) *Router {
	return &Router{session: sessionStore, nav: navStore, logger: logger}
}

// Reconcile evaluates one step and applies the corrective navigation if
// the decision carries one. Navigation is skipped when the target equals
// the current route, which is what makes repeated reconciliation settle.
func (r *Router) Reconcile() Decision {
	snap := r.session.Snapshot()
	route := r.nav.Current()

	decision := Reconcile(snap, route.Path)
	if decision.NextRoute != "" && decision.NextRoute != route.Path {
		r.logger.Debug("corrective navigation",
			zap.String("from", route.Path),
			zap.String("to", decision.NextRoute),
			zap.String("state", string(decision.State)))
		r.nav.Navigate(decision.NextRoute, nil)
	}
	return decision
}

// Settle reconciles until the route stops moving and returns the final
// decision. The step function is idempotent, so this terminates after at
// most a couple of iterations; the bound only caps a buggy step.
func (r *Router) Settle() Decision {
	for i := 0; i < 4; i++ {
		before := r.nav.Current().Path
		decision := r.Reconcile()
		if r.nav.Current().Path == before {
			return decision
		}
	}
	return r.Reconcile()
}
