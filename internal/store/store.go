// Package store keeps users and the transaction ledger in memory for the
// lifetime of the process.
package store

import (
	"sync"
	"time"

	"fintrack/internal/auth"
	"fintrack/internal/models"
	"fintrack/internal/utils"

	"go.uber.org/zap"
)

// Store owns both collections. One lock guards them so every mutation is
// applied in a single total order.
type Store struct {
	mu           sync.RWMutex
	users        []models.User
	byEmail      map[string]int
	transactions []models.Transaction

	creds  auth.CredentialChecker
	newID  func() string
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*Store)

func WithCredentials(c auth.CredentialChecker) Option {
	return func(s *Store) { s.creds = c }
}

func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func WithClock(f func() time.Time) Option {
	return func(s *Store) { s.now = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns an empty store. Defaults: plaintext credentials, random short
// ids, UTC wall clock and a no-op logger.
func New(opts ...Option) *Store {
	s := &Store{
		byEmail: make(map[string]int),
		creds:   auth.Plaintext{},
		newID:   utils.NewID,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user. Emails are matched exactly, case included.
func (s *Store) Register(name, email, password string) (models.PublicUser, error) {
	if name == "" || email == "" || password == "" {
		return models.PublicUser{}, invalid("All fields are required")
	}

	sealed, err := s.creds.Seal(password)
	if err != nil {
		return models.PublicUser{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return models.PublicUser{}, ErrDuplicateUser
	}

	user := models.User{ID: s.newID(), Name: name, Email: email, Password: sealed}
	s.byEmail[email] = len(s.users)
	s.users = append(s.users, user)

	s.logger.Debug("user registered", zap.String("user_id", user.ID))
	return user.Public(), nil
}

func (s *Store) Authenticate(email, password string) (models.PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byEmail[email]
	if !ok || !s.creds.Match(s.users[i].Password, password) {
		return models.PublicUser{}, ErrInvalidCredentials
	}
	return s.users[i].Public(), nil
}
