// Package session owns the dashboard's authenticated identity. The Store
// is the only component that mutates the session; everything else reads
// snapshots.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/brightpath-edu/counseling-scheduler/internal/client/api"
	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// Strategy selects how an existing session is resolved on startup.
type Strategy string

const (
	// StrategyProvider queries the external identity endpoint for a
	// server-asserted principal.
	StrategyProvider Strategy = "provider"
	// StrategyLocal reads a previously persisted credential+identity
	// pair from local storage.
	StrategyLocal Strategy = "local"
)

// Browser abstracts full-page navigation. Redirect hands control to an
// external flow and does not come back; any code after a Redirect call in
// the same logical flow is unreachable.
type Browser interface {
	Redirect(url string)
}

// Snapshot is the immutable session view consumed by the router. Loading
// is true only during the initial resolution attempt; once resolution
// completes, success or not, it stays false.
type Snapshot struct {
	Identity *domain.Identity
	Loading  bool
}

// Store resolves and holds the current identity and exposes login/logout.
type Store struct {
	client   api.Client
	storage  Storage
	browser  Browser
	strategy Strategy
	logger   *zap.Logger

	mu       sync.RWMutex
	identity *domain.Identity
	token    string
	loading  bool
}

// NewStore builds a session store. The store starts in the loading state
// until Initialize runs.
func NewStore(client api.Client, storage Storage, browser Browser, strategy Strategy, logger *zap.Logger) *Store {
	return &Store{
		client:   client,
		storage:  storage,
		browser:  browser,
		strategy: strategy,
		logger:   logger,
		loading:  true,
	}
}

// Initialize attempts to resolve an existing session using the configured
// strategy. The loading flag drops when resolution completes regardless
// of outcome; resolution failures leave the session unauthenticated
// rather than failing the process.
func (s *Store) Initialize(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	switch s.strategy {
	case StrategyProvider:
		identity, err := s.client.SessionInfo(ctx)
		if err != nil {
			s.logger.Warn("session probe failed", zap.Error(err))
			return
		}
		if identity == nil {
			return
		}
		s.mu.Lock()
		s.identity = identity
		s.mu.Unlock()
	case StrategyLocal:
		token, identity, err := s.storage.Read()
		if err != nil {
			if !errors.Is(err, ErrNoCredentials) {
				s.logger.Warn("reading persisted credentials failed", zap.Error(err))
			}
			return
		}
		s.client.SetAuthToken(token)
		s.mu.Lock()
		s.token = token
		s.identity = identity
		s.mu.Unlock()
	default:
		s.logger.Warn("unknown session strategy", zap.String("strategy", string(s.strategy)))
	}
}

// Login authenticates a credential pair. On success the credential pair is
// persisted and the session updated; on failure the session is left
// exactly as it was and the error (api.ErrInvalidCredentials for rejected
// credentials) goes back to the login view.
//
// A second Login while one is in flight is not guarded against.
func (s *Store) Login(ctx context.Context, creds api.Credentials) (*domain.Identity, error) {
	result, err := s.client.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Write(result.Token, result.Identity); err != nil {
		s.logger.Warn("persisting credentials failed", zap.Error(err))
	}
	s.client.SetAuthToken(result.Token)

	s.mu.Lock()
	s.token = result.Token
	s.identity = result.Identity
	s.mu.Unlock()

	s.logger.Info("logged in",
		zap.String("subject", result.Identity.ID),
		zap.String("role", string(result.Identity.PrimaryRole())))
	return result.Identity, nil
}

// LoginWithProvider hands the whole application to the external provider
// flow. It does not return a result: the redirect suspends this execution
// context and the provider resumes the app from scratch.
func (s *Store) LoginWithProvider(provider string) {
	s.browser.Redirect("/.auth/login/" + provider)
}

// Logout clears persisted and in-memory credentials. Under the provider
// strategy it then redirects to the provider's logout endpoint, which
// suspends the application.
func (s *Store) Logout(ctx context.Context) {
	if err := s.storage.Clear(); err != nil {
		s.logger.Warn("clearing persisted credentials failed", zap.Error(err))
	}
	s.client.SetAuthToken("")

	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	if s.strategy == StrategyProvider {
		s.browser.Redirect("/.auth/logout")
	}
}

// Identity returns the current principal, nil when unauthenticated.
func (s *Store) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Loading reports whether initial resolution is still in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Snapshot returns a consistent view of the session for the router.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Identity: s.identity, Loading: s.loading}
}
