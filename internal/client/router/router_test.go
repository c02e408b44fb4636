package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/routing"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/session"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

type noopBrowser struct{}

func (noopBrowser) Redirect(string) {}

func snapshotFor(roles ...domain.Role) session.Snapshot {
	return session.Snapshot{Identity: &domain.Identity{ID: "1", Name: "Test", Roles: roles}}
}

func TestReconcile_LoadingGatesEverything(t *testing.T) {
	for _, route := range []string{"/", "/login", "/admin", "/nowhere"} {
		decision := Reconcile(session.Snapshot{Loading: true}, route)
		assert.Equal(t, StateResolving, decision.State, "route %s", route)
		assert.Equal(t, ViewLoading, decision.View, "route %s", route)
		assert.Empty(t, decision.NextRoute, "route %s", route)
	}
}

func TestReconcile_UnauthenticatedRedirectsToLogin(t *testing.T) {
	decision := Reconcile(session.Snapshot{}, "/admin")
	assert.Equal(t, StateUnauthenticated, decision.State)
	assert.Equal(t, ViewLogin, decision.View)
	assert.Equal(t, "/login", decision.NextRoute)

	// Already on /login: same view, no further navigation.
	decision = Reconcile(session.Snapshot{}, "/login")
	assert.Equal(t, ViewLogin, decision.View)
	assert.Empty(t, decision.NextRoute)
}

func TestReconcile_NeutralRouteSendsRoleHome(t *testing.T) {
	cases := []struct {
		roles []domain.Role
		home  string
		view  View
	}{
		{[]domain.Role{domain.RoleStudent}, "/student", ViewStudentDashboard},
		{[]domain.Role{domain.RoleCounselor}, "/counselor", ViewCounselorDashboard},
		{[]domain.Role{domain.RoleAdmin}, "/admin", ViewAdminDashboard},
		{[]domain.Role{domain.RoleStudent, domain.RoleAdmin}, "/admin", ViewAdminDashboard},
	}
	for _, tc := range cases {
		for _, route := range []string{"/", "/login"} {
			decision := Reconcile(snapshotFor(tc.roles...), route)
			assert.Equal(t, StateNeutralRoute, decision.State)
			assert.Equal(t, tc.view, decision.View)
			assert.Equal(t, tc.home, decision.NextRoute)
		}
	}
}

func TestReconcile_OwnAreaRendersWithoutNavigation(t *testing.T) {
	decision := Reconcile(snapshotFor(domain.RoleCounselor), "/counselor")
	assert.Equal(t, StateOwnArea, decision.State)
	assert.Equal(t, ViewCounselorDashboard, decision.View)
	assert.Empty(t, decision.NextRoute)
}

func TestReconcile_ForeignAreaIsDeniedInPlace(t *testing.T) {
	decision := Reconcile(snapshotFor(domain.RoleStudent), "/admin")
	assert.Equal(t, StateDenied, decision.State)
	assert.Equal(t, ViewAccessDenied, decision.View)
	// Denial renders; it never auto-navigates.
	assert.Empty(t, decision.NextRoute)
}

func TestReconcile_UnknownRouteHeadsHome(t *testing.T) {
	decision := Reconcile(snapshotFor(domain.RoleStudent), "/reports")
	assert.Equal(t, ViewLoading, decision.View)
	assert.Equal(t, "/", decision.NextRoute)
}

func TestReconcile_Pure(t *testing.T) {
	snap := snapshotFor(domain.RoleAdmin)
	first := Reconcile(snap, "/")
	second := Reconcile(snap, "/")
	assert.Equal(t, first, second)
}

func authenticatedStore(t *testing.T, roles ...domain.Role) *session.Store {
	t.Helper()
	storage := session.NewMemoryStorage()
	identity := &domain.Identity{ID: "1", Name: "Test", Roles: roles}
	require.NoError(t, storage.Write("token", identity))

	store := session.NewStore(api.NewMockClient(0), storage, noopBrowser{}, session.StrategyLocal, zap.NewNop())
	store.Initialize(context.Background())
	require.NotNil(t, store.Identity())
	return store
}

func TestRouter_RepeatedReconcileNavigatesAtMostOnce(t *testing.T) {
	nav := routing.NewStore()
	r := New(authenticatedStore(t, domain.RoleStudent), nav, zap.NewNop())

	first := r.Reconcile()
	assert.Equal(t, "/student", nav.Current().Path)

	// Unchanged inputs: the decision repeats and the route stays put.
	second := r.Reconcile()
	assert.Equal(t, first.View, second.View)
	assert.Equal(t, "/student", nav.Current().Path)

	third := r.Reconcile()
	assert.Equal(t, StateOwnArea, third.State)
	assert.Equal(t, "/student", nav.Current().Path)
}

func TestRouter_UnauthenticatedSettlesOnLogin(t *testing.T) {
	store := session.NewStore(api.NewMockClient(0), session.NewMemoryStorage(), noopBrowser{}, session.StrategyLocal, zap.NewNop())
	store.Initialize(context.Background())

	nav := routing.NewStore()
	nav.Navigate("/admin", nil)
	r := New(store, nav, zap.NewNop())

	decision := r.Settle()
	assert.Equal(t, StateUnauthenticated, decision.State)
	assert.Equal(t, ViewLogin, decision.View)
	assert.Equal(t, "/login", nav.Current().Path)
}

func TestRouter_LoadingSessionDoesNotNavigate(t *testing.T) {
	// No Initialize call: the store is still resolving.
	store := session.NewStore(api.NewMockClient(0), session.NewMemoryStorage(), noopBrowser{}, session.StrategyLocal, zap.NewNop())
	nav := routing.NewStore()
	nav.Navigate("/admin", nil)

	decision := New(store, nav, zap.NewNop()).Settle()
	assert.Equal(t, StateResolving, decision.State)
	assert.Equal(t, "/admin", nav.Current().Path)
}

func TestRouter_DeniedThenHomeRecovers(t *testing.T) {
	nav := routing.NewStore()
	nav.Navigate("/admin", nil)
	r := New(authenticatedStore(t, domain.RoleStudent), nav, zap.NewNop())

	decision := r.Settle()
	assert.Equal(t, StateDenied, decision.State)
	assert.Equal(t, "/admin", nav.Current().Path)

	// The access-denied view's escape hatch navigates to "/", which the
	// next settle turns into the student dashboard.
	nav.Navigate("/", nil)
	decision = r.Settle()
	assert.Equal(t, StateOwnArea, decision.State)
	assert.Equal(t, ViewStudentDashboard, decision.View)
	assert.Equal(t, "/student", nav.Current().Path)
}
