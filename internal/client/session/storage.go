package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brightpath-edu/counseling-scheduler/internal/domain"
)

// Storage persists the credential pair across restarts: the opaque token
// and the serialized identity, written on login, read on init, removed on
// logout.
type Storage interface {
	Read() (token string, identity *domain.Identity, err error)
	Write(token string, identity *domain.Identity) error
	Clear() error
}

// ErrNoCredentials is returned by Read when nothing is persisted.
var ErrNoCredentials = errors.New("no persisted credentials")

// MemoryStorage keeps credentials for the life of the process. Useful for
// tests and for the provider strategy, which does not persist locally.
type MemoryStorage struct {
	mu       sync.Mutex
	token    string
	identity *domain.Identity
}

// NewMemoryStorage builds an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Read() (string, *domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.identity == nil {
		return "", nil, ErrNoCredentials
	}
	copied := *s.identity
	return s.token, &copied, nil
}

func (s *MemoryStorage) Write(token string, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *identity
	s.token = token
	s.identity = &copied
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	return nil
}

type persistedCredentials struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// FileStorage persists credentials as a JSON file, the terminal client's
// analogue of browser local storage.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage builds a storage at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Read() (string, *domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNoCredentials
		}
		return "", nil, err
	}
	var stored persistedCredentials
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", nil, err
	}
	if stored.Token == "" || stored.Identity == nil {
		return "", nil, ErrNoCredentials
	}
	return stored.Token, stored.Identity, nil
}

func (s *FileStorage) Write(token string, identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(persistedCredentials{Token: token, Identity: identity})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

const (
	redisTokenKey    = "scheduler:client:token"
	redisIdentityKey = "scheduler:client:identity"
)

// RedisStorage persists the two credential entries in Redis, keyed per
// the configured client. Entries expire after ttl.
type RedisStorage struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStorage builds a redis-backed storage. prefix separates
// multiple dashboard instances sharing one Redis.
func NewRedisStorage(client *redis.Client, prefix string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStorage) Read() (string, *domain.Identity, error) {
	ctx := context.Background()
	token, err := s.client.Get(ctx, s.prefix+redisTokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, ErrNoCredentials
		}
		return "", nil, err
	}
	raw, err := s.client.Get(ctx, s.prefix+redisIdentityKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, ErrNoCredentials
		}
		return "", nil, err
	}
	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return "", nil, err
	}
	return token, &identity, nil
}

func (s *RedisStorage) Write(token string, identity *domain.Identity) error {
	ctx := context.Background()
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.prefix+redisTokenKey, token, s.ttl).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+redisIdentityKey, raw, s.ttl).Err()
}

func (s *RedisStorage) Clear() error {
	return s.client.Del(context.Background(), s.prefix+redisTokenKey, s.prefix+redisIdentityKey).Err()
}
