package brain

import (
	"sync"
	"time"

	"nous/internal/domain"
)

// Scheduler fires the brain service on a fixed period for as long as the
// session runs. Rearm restarts the timer with the full period (not
// phase-preserved); the state layer calls it on every mutation so a
// changed log or dictionary resets the countdown. Stop cancels the timer
// on teardown.
type Scheduler struct {
	service  *Service
	interval time.Duration

	rearm chan struct{}
	stop  chan struct{}
	done  chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewScheduler builds a stopped scheduler; call Start to begin firing.
func NewScheduler(service *Service, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = domain.DefaultBrainInterval
	}
	return &Scheduler{
		service:  service,
		interval: interval,
		rearm:    make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the timer loop. Subsequent calls are no-ops.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		go s.loop()
	})
}

// Rearm restarts the countdown with the full period. Safe to call from any
// goroutine; never blocks.
func (s *Scheduler) Rearm() {
	select {
	case s.rearm <- struct{}{}:
	default:
	}
}

// Stop cancels the scheduler and waits for the loop to exit. Stopping a
// never-started scheduler is safe.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.startOnce.Do(func() {
		close(s.done)
	})
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			// RunNow mutates state, which calls Rearm; drain the channel
			// before resetting so the next period is a single full interval.
			_, _ = s.service.RunNow()
			select {
			case <-s.rearm:
			default:
			}
			timer.Reset(s.interval)
		case <-s.rearm:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(s.interval)
		case <-s.stop:
			return
		}
	}
}
