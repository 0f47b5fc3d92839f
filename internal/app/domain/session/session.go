package session

import (
	"errors"
	"github.com/google/uuid"
	"regexlab/internal/app/infrastructure/storage"
	"regexlab/internal/app/ports"
	"regexlab/pkg/logger"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Session владеет одним валидатором; все операции над ним идут под mu.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	mu        sync.Mutex
	validator ports.ValidatorPort
	observe   func(time.Duration)
}

// Do выполняет fn под блокировкой сессии.
func (s *Session) Do(fn func(v ports.ValidatorPort)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.validator)
}

// Snapshot возвращает данные для одной перерисовки.
func (s *Session) Snapshot() ports.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Apply выполняет мутацию и сразу снимает снапшот, не отпуская блокировку.
func (s *Session) Apply(fn func(v ports.ValidatorPort)) ports.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.validator)
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() ports.Snapshot {
	start := time.Now()
	snap := s.validator.Snapshot()
	if s.observe != nil {
		s.observe(time.Since(start))
	}
	return snap
}

type Factory func(log logger.Logger) ports.ValidatorPort

type Manager struct {
	log      logger.Logger
	factory  Factory
	sessions *storage.Cache[*Session]
	observe  func(time.Duration)
}

type Option func(*Manager)

// WithEvaluateObserver получает время каждой оценки списка строк.
func WithEvaluateObserver(fn func(time.Duration)) Option {
	return func(m *Manager) {
		m.observe = fn
	}
}

func NewManager(log logger.Logger, factory Factory, idleTTL time.Duration, opts ...Option) *Manager {
	m := &Manager{
		log:     log,
		factory: factory,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.sessions = storage.NewCache[*Session](0,
		storage.WithIdleTTL[*Session](idleTTL),
		storage.WithOnEvict[*Session](func(id string, _ *Session) {
			m.log.Info("Session expired", "session", id)
		}),
	)

	return m
}

func (m *Manager) Create() *Session {
	id := uuid.NewString()
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		validator: m.factory(logger.NewTaggedLogger(m.log, "session", id)),
		observe:   m.observe,
	}

	m.sessions.Set(id, s)
	m.log.Debug("Session created", "session", id)
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	if _, ok := m.sessions.Get(id); !ok {
		return ErrNotFound
	}

	m.sessions.ClearKey(id)
	m.log.Debug("Session deleted", "session", id)
	return nil
}

func (m *Manager) Len() int {
	return m.sessions.Len()
}
