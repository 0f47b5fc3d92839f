package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regexlab/internal/app/domain/regex"
	"regexlab/internal/app/domain/validator"
	"regexlab/internal/app/ports"
	"regexlab/pkg/logger"
)

func newManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()

	r, err := regex.New(regex.EngineRE2, 0)
	require.NoError(t, err)

	factory := func(log logger.Logger) ports.ValidatorPort {
		return validator.New(r, validator.WithLogger(log))
	}
	return NewManager(logger.New(""), factory, time.Hour, opts...)
}

func TestCreateGetDelete(t *testing.T) {
	m := newManager(t)

	s := m.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete(s.ID), ErrNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newManager(t)

	a := m.Create()
	b := m.Create()
	assert.NotEqual(t, a.ID, b.ID)

	a.Do(func(v ports.ValidatorPort) {
		v.SetPattern("a")
		v.AddTestString("a")
	})

	snap := b.Snapshot()
	assert.Equal(t, ports.StatusEmpty, snap.State.Status)
	assert.Empty(t, snap.Results)
}

func TestApplyReturnsSnapshotAfterMutation(t *testing.T) {
	var observed int
	m := newManager(t, WithEvaluateObserver(func(time.Duration) { observed++ }))
	s := m.Create()

	snap := s.Apply(func(v ports.ValidatorPort) {
		v.SetPattern(`^\d+$`)
		v.AddTestString("123")
		v.AddTestString("12a")
	})

	assert.Equal(t, ports.StatusValid, snap.State.Status)
	assert.Equal(t, []ports.Result{{Text: "123", Matched: true}, {Text: "12a", Matched: false}}, snap.Results)
	assert.Equal(t, 1, observed)
}

func TestConcurrentMutationsAreSerialised(t *testing.T) {
	m := newManager(t)
	s := m.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(v ports.ValidatorPort) { v.AddTestString("x") })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Snapshot().TestStrings)
}

type recordLogger struct {
	logger.Logger

	mu      sync.Mutex
	expired []string
}

func (l *recordLogger) Info(msg string, args ...any) {
	if msg != "Session expired" || len(args) < 2 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.expired = append(l.expired, args[1].(string))
}

func (l *recordLogger) hasExpired(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.expired {
		if e == id {
			return true
		}
	}
	return false
}

func TestIdleSessionExpires(t *testing.T) {
	r, err := regex.New(regex.EngineRE2, 0)
	require.NoError(t, err)

	log := &recordLogger{Logger: logger.New("")}
	m := NewManager(log, func(l logger.Logger) ports.ValidatorPort {
		return validator.New(r, validator.WithLogger(l))
	}, 300*time.Millisecond)

	idle := m.Create()
	active := m.Create()

	deadline := time.Now().Add(700 * time.Millisecond)
	for time.Now().Before(deadline) {
		_, err := m.Get(active.ID)
		require.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
	}

	_, err = m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(active.ID)
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		// запись запускает обслуживание кэша
		m.Create()
		return log.hasExpired(idle.ID)
	}, 5*time.Second, 50*time.Millisecond)
}
