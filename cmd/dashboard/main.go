package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/router"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/routing"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/session"
	"github.com/brightpath-edu/counseling-scheduler/internal/client/views"
	"github.com/brightpath-edu/counseling-scheduler/internal/config"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
	"github.com/brightpath-edu/counseling-scheduler/internal/observability"
	"github.com/brightpath-edu/counseling-scheduler/internal/persistence"
)

// terminalBrowser stands in for full-page navigation. A redirect hands the
// user to an external flow this process cannot host, so it prints the
// destination and exits; the next start resolves whatever session the
// external flow established.
type terminalBrowser struct {
	logger *zap.Logger
}

func (b *terminalBrowser) Redirect(url string) {
	fmt.Printf("redirecting to %s -- complete the flow and restart the dashboard\n", url)
	b.logger.Info("external redirect", zap.String("url", url))
	os.Exit(0)
}

// dashboard owns the wired client stores and the per-role view models.
// View models are rebuilt whenever the identity changes so no data leaks
// across sessions.
type dashboard struct {
	client  api.Client
	session *session.Store
	nav     *routing.Store
	router  *router.Router
	logger  *zap.Logger

	student   *views.StudentDashboard
	counselor *views.CounselorDashboard
	admin     *views.AdminDashboard
	viewOwner string
}

// newCredentialStorage selects the credential store. "redis" shares the
// server's RedisConfig so a dashboard fleet can hand sessions around;
// "memory" keeps them for this process only; anything else is the
// file-backed default.
func newCredentialStorage(cfg *config.Config, logger *zap.Logger) session.Storage {
	switch cfg.Client.SessionStorage {
	case "redis":
		r := persistence.NewRedis(cfg.Redis, logger)
		ttl := time.Duration(cfg.Client.SessionTTLMinutes) * time.Minute
		return session.NewRedisStorage(r.Client, cfg.App.Name+":", ttl)
	case "memory":
		return session.NewMemoryStorage()
	default:
		return session.NewFileStorage(cfg.Client.CredentialsFile)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// "mock" skips the network entirely and serves the canned fixtures,
	// matching the offline demo mode of the original dashboard.
	var client api.Client
	if cfg.Client.ServerURL == "mock" {
		client = api.NewMockClient(800 * time.Millisecond)
	} else {
		client = api.NewHTTPClient(cfg.Client.ServerURL, cfg.App.RequestTimeout())
	}

	browser := &terminalBrowser{logger: logger}
	storage := newCredentialStorage(cfg, logger)
	sessionStore := session.NewStore(client, storage, browser, session.Strategy(cfg.Client.SessionStrategy), logger)
	navStore := routing.NewStore()

	d := &dashboard{
		client:  client,
		session: sessionStore,
		nav:     navStore,
		router:  router.New(sessionStore, navStore, logger),
		logger:  logger,
	}

	ctx := context.Background()
	sessionStore.Initialize(ctx)
	d.render(ctx)

	d.repl(ctx)
}

func (d *dashboard) repl(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println(`type "help" for commands`)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <username> <password>")
				continue
			}
			d.login(ctx, fields[1], fields[2])
		case "provider":
			d.session.LoginWithProvider("aad")
		case "logout":
			d.session.Logout(ctx)
			d.resetViews()
			d.nav.Navigate("/", nil)
			d.render(ctx)
		case "go":
			if len(fields) != 2 {
				fmt.Println("usage: go <path>")
				continue
			}
			d.nav.Navigate(fields[1], nil)
			d.render(ctx)
		case "view":
			d.render(ctx)
		case "whoami":
			d.whoami()
		case "book":
			if len(fields) < 5 {
				fmt.Println("usage: book <counselorId> <date> <time> <type...>")
				continue
			}
			d.book(ctx, fields[1], fields[2], fields[3], strings.Join(fields[4:], " "))
		case "confirm", "reject":
			if len(fields) != 2 {
				fmt.Printf("usage: %s <appointmentId>\n", fields[0])
				continue
			}
			status := domain.AppointmentStatusConfirmed
			if fields[0] == "reject" {
				status = domain.AppointmentStatusRejected
			}
			d.decide(ctx, fields[1], status)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Print(`commands:
  login <username> <password>   sign in with credentials
  provider                      sign in through the identity provider
  logout                        sign out
  go <path>                     navigate (/student, /counselor, /admin, /)
  view                          re-render the current view
  whoami                        show the signed-in identity
  book <counselorId> <date> <time> <type...>   book an appointment (student)
  confirm <id> | reject <id>    decide a pending appointment (counselor)
  quit
`)
}

func (d *dashboard) login(ctx context.Context, username, password string) {
	_, err := d.session.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			fmt.Println("invalid username or password")
		} else {
			fmt.Printf("login failed: %v\n", err)
		}
		return
	}
	d.resetViews()
	d.nav.Navigate("/", nil)
	d.render(ctx)
}

func (d *dashboard) whoami() {
	identity := d.session.Identity()
	if identity == nil {
		fmt.Println("not signed in")
		return
	}
	fmt.Printf("%s (id %s, role %s)\n", identity.Name, identity.ID, identity.PrimaryRole())
}

// render settles the route against the session and draws the resulting
// view. Settling is idempotent, so rendering twice in a row is harmless.
func (d *dashboard) render(ctx context.Context) {
	decision := d.router.Settle()
	route := d.nav.Current().Path

	switch decision.View {
	case router.ViewLoading:
		fmt.Println("loading…")
	case router.ViewLogin:
		fmt.Printf("[%s] sign in with: login <username> <password>, or: provider\n", route)
	case router.ViewAccessDenied:
		fmt.Printf("[%s] access denied - you do not have permission to view this page (go / to return)\n", route)
	case router.ViewStudentDashboard:
		d.renderStudent(ctx)
	case router.ViewCounselorDashboard:
		d.renderCounselor(ctx)
	case router.ViewAdminDashboard:
		d.renderAdmin(ctx)
	}
}

// resetViews drops the per-role view models; they are rebuilt for the
// next identity on first render.
func (d *dashboard) resetViews() {
	d.student, d.counselor, d.admin = nil, nil, nil
	d.viewOwner = ""
}

func (d *dashboard) ensureOwner(identity *domain.Identity) {
	if d.viewOwner != identity.ID {
		d.resetViews()
		d.viewOwner = identity.ID
	}
}

func (d *dashboard) renderStudent(ctx context.Context) {
	identity := d.session.Identity()
	d.ensureOwner(identity)
	if d.student == nil {
		d.student = views.NewStudentDashboard(d.client, identity)
	}
	d.student.Load(ctx)
	drainNotifications(&d.student.Notifications)

	fmt.Printf("[/student] %s - your appointments:\n", identity.Name)
	printAppointments(d.student.Appointments(), "  (none booked yet)")
	fmt.Println("available counselors:")
	for _, counselor := range d.student.Counselors() {
		fmt.Printf("  %s  %s (%s)\n", counselor.ID, counselor.Name, counselor.Specialization)
	}
}

func (d *dashboard) renderCounselor(ctx context.Context) {
	identity := d.session.Identity()
	d.ensureOwner(identity)
	if d.counselor == nil {
		d.counselor = views.NewCounselorDashboard(d.client, identity)
	}
	d.counselor.Load(ctx)
	drainNotifications(&d.counselor.Notifications)

	fmt.Printf("[/counselor] %s - pending requests:\n", identity.Name)
	printAppointments(d.counselor.Pending(), "  (no pending requests)")
	fmt.Println("confirmed appointments:")
	printAppointments(d.counselor.Confirmed(), "  (none confirmed)")
}

func (d *dashboard) renderAdmin(ctx context.Context) {
	identity := d.session.Identity()
	d.ensureOwner(identity)
	if d.admin == nil {
		d.admin = views.NewAdminDashboard(d.client)
	}
	d.admin.Load(ctx)
	drainNotifications(&d.admin.Notifications)

	report := d.admin.Analytics()
	if report == nil {
		return
	}
	fmt.Printf("[/admin] total bookings: %d, pending: %d\n", report.TotalBookings, report.PendingAppointments)
	fmt.Println("counselor workload:")
	for _, load := range report.CounselorWorkload {
		fmt.Printf("  %-20s %d\n", load.Name, load.Appointments)
	}
}

func (d *dashboard) book(ctx context.Context, counselorID, date, timeSlot, kind string) {
	if d.student == nil {
		fmt.Println("open the student dashboard first (go /student)")
		return
	}
	d.student.Book(ctx, api.BookingRequest{
		CounselorID: counselorID,
		Date:        date,
		Time:        timeSlot,
		Type:        kind,
	})
	drainNotifications(&d.student.Notifications)
	d.render(ctx)
}

func (d *dashboard) decide(ctx context.Context, id string, status domain.AppointmentStatus) {
	if d.counselor == nil {
		fmt.Println("open the counselor dashboard first (go /counselor)")
		return
	}
	d.counselor.UpdateStatus(ctx, id, status)
	drainNotifications(&d.counselor.Notifications)
	d.render(ctx)
}

func printAppointments(list []domain.Appointment, empty string) {
	if len(list) == 0 {
		fmt.Println(empty)
		return
	}
	for _, a := range list {
		fmt.Printf("  %s  %s %s  %-9s  %s with %s (%s)\n",
			a.ID, a.Date, a.Time, a.Status, a.StudentName, a.CounselorName, a.Type)
	}
}

func drainNotifications(center *views.NotificationCenter) {
	for _, n := range center.Active() {
		fmt.Printf("%s: %s\n", n.Type, n.Message)
	}
	center.DismissAll()
}
