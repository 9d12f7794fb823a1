package brain

import (
	"strings"
	"testing"
	"time"

	"nous/internal/analysis"
	"nous/internal/domain"
	"nous/internal/pkg/logger"
	"nous/internal/state"
)

type memStore struct {
	blobs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Load(collection string) ([]byte, bool) {
	payload, ok := m.blobs[collection]
	return payload, ok
}

func (m *memStore) Save(collection string, payload []byte) error {
	m.blobs[collection] = payload
	return nil
}

func newTestService() (*Service, *state.State) {
	st := state.New(newMemStore(), state.Defaults{}, logger.NewNop())
	return &Service{State: st, Logger: logger.NewNop()}, st
}

func TestRunNowEmptyLogRecordsPlaceholder(t *testing.T) {
	svc, st := newTestService()

	run, err := svc.RunNow()
	if err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}
	if run.Plan != analysis.PlanPlaceholder {
		t.Fatalf("plan = %q, want placeholder", run.Plan)
	}
	if got := st.BrainRuns(); len(got) != 1 || got[0].ID != run.ID {
		t.Fatalf("run history = %v, want the recorded run", got)
	}
}

func TestRunNowUsesLatestCommand(t *testing.T) {
	svc, st := newTestService()
	st.AppendCommand(domain.NewCommand("first thing"))
	st.AppendCommand(domain.NewCommand("latest thing"))

	run, err := svc.RunNow()
	if err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}
	if !strings.Contains(run.Plan, "latest thing") {
		t.Fatalf("plan does not reference the latest command:\n%s", run.Plan)
	}
	if strings.Contains(run.Plan, "first thing") {
		t.Fatalf("plan leaked earlier history:\n%s", run.Plan)
	}
}

func TestRunNowRetentionBound(t *testing.T) {
	svc, st := newTestService()

	for i := 0; i < domain.BrainRunCapacity+1; i++ {
		if _, err := svc.RunNow(); err != nil {
			t.Fatalf("RunNow() error = %v", err)
		}
	}

	runs := st.BrainRuns()
	if len(runs) != domain.BrainRunCapacity {
		t.Fatalf("retained %d runs, want %d", len(runs), domain.BrainRunCapacity)
	}
	for i := 1; i < len(runs); i++ {
		if runs[i].CreatedAt.After(runs[i-1].CreatedAt) {
			t.Fatal("runs not ordered most recent first")
		}
	}
}

func TestSchedulerFiresPeriodically(t *testing.T) {
	svc, st := newTestService()
	scheduler := NewScheduler(svc, 20*time.Millisecond)
	scheduler.Start()
	defer scheduler.Stop()

	deadline := time.After(2 * time.Second)
	for len(st.BrainRuns()) < 2 {
		select {
		case <-deadline:
			t.Fatalf("scheduler recorded %d runs before deadline", len(st.BrainRuns()))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	scheduler := NewScheduler(svc, time.Hour)
	scheduler.Start()
	scheduler.Stop()
	scheduler.Stop()

	neverStarted := NewScheduler(svc, time.Hour)
	neverStarted.Stop()
}

func TestSchedulerRearmRestartsCountdown(t *testing.T) {
	svc, st := newTestService()
	scheduler := NewScheduler(svc, 300*time.Millisecond)
	st.SetOnChange(scheduler.Rearm)
	scheduler.Start()
	defer scheduler.Stop()

	// Keep mutating faster than the period; the timer restarts each time
	// so no scheduled run can complete.
	for i := 0; i < 5; i++ {
		time.Sleep(50 * time.Millisecond)
		st.AppendCommand(domain.NewCommand("mutation"))
	}
	if got := len(st.BrainRuns()); got != 0 {
		t.Fatalf("scheduler fired %d times despite constant rearming", got)
	}

	// Once mutations stop, the full period elapses and a run lands.
	deadline := time.After(2 * time.Second)
	for len(st.BrainRuns()) == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never fired after rearming stopped")
		case <-time.After(10 * time.Millisecond):
		}
	}
}
