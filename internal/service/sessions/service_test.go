package sessions

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgiudice/ODC-TurnosService/internal/flow"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeGauge struct {
	value int64
}

func (g *fakeGauge) Inc() { atomic.AddInt64(&g.value, 1) }
func (g *fakeGauge) Dec() { atomic.AddInt64(&g.value, -1) }

func (g *fakeGauge) current() int64 { return atomic.LoadInt64(&g.value) }

func testFactory() *flow.Controller {
	return flow.NewController(nil, nil, nil, time.Hour, nopLogger{})
}

func TestCreateAndGet(t *testing.T) {
	gauge := &fakeGauge{}
	svc := NewService(testFactory, time.Minute, gauge, nopLogger{})

	id, ctrl := svc.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, ctrl)
	require.Equal(t, 1, svc.Len())
	require.EqualValues(t, 1, gauge.current())

	got, err := svc.Get(id)
	require.NoError(t, err)
	require.Same(t, ctrl, got)
}

func TestGetUnknownSession(t *testing.T) {
	svc := NewService(testFactory, time.Minute, nil, nopLogger{})

	_, err := svc.Get("no-such-session")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionIDsAreUnique(t *testing.T) {
	svc := NewService(testFactory, time.Minute, nil, nopLogger{})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, _ := svc.Create()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestEvictionRemovesExpiredSessions(t *testing.T) {
	gauge := &fakeGauge{}
	svc := NewService(testFactory, 20*time.Millisecond, gauge, nopLogger{})

	id, _ := svc.Create()
	time.Sleep(50 * time.Millisecond)
	svc.evictExpired()

	require.Equal(t, 0, svc.Len())
	require.EqualValues(t, 0, gauge.current())
	_, err := svc.Get(id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetRenewsTTL(t *testing.T) {
	svc := NewService(testFactory, 100*time.Millisecond, nil, nopLogger{})

	id, _ := svc.Create()

	// Mientras se toque la sesión, sobrevive pasado el TTL original
	for i := 0; i < 4; i++ {
		time.Sleep(50 * time.Millisecond)
		_, err := svc.Get(id)
		require.NoError(t, err)
		svc.evictExpired()
	}
	require.Equal(t, 1, svc.Len())

	time.Sleep(150 * time.Millisecond)
	svc.evictExpired()
	require.Equal(t, 0, svc.Len())
}

func TestJanitorEvictsInBackground(t *testing.T) {
	svc := NewService(testFactory, 10*time.Millisecond, nil, nopLogger{})
	svc.Create()
	svc.Create()

	svc.StartJanitor(10 * time.Millisecond)
	defer svc.StopJanitor()

	require.Eventually(t, func() bool {
		return svc.Len() == 0
	}, 2*time.Second, 5*time.Millisecond)
}
