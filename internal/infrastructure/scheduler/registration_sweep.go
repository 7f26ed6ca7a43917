package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// RegistrationSweeper is the part of the garage use case the sweep drives.
type RegistrationSweeper interface {
	RemoveExpiredRegistrations(ctx context.Context, olderThan time.Duration) (int, error)
}

// Scheduler runs the periodic maintenance jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
}

func New() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: s}, nil
}

// RegisterRegistrationSweep deletes, every interval, garages that never
// completed sign-up within ttl.
func (s *Scheduler) RegisterRegistrationSweep(sweeper RegistrationSweeper, interval, ttl time.Duration) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(runSweep, sweeper, ttl),
		gocron.WithName("registration-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("[scheduler][sweep] register failed err=%v", err)
		return err
	}
	log.Printf("[scheduler][sweep] registered interval=%s ttl=%s", interval, ttl)
	return nil
}

func runSweep(sweeper RegistrationSweeper, ttl time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := sweeper.RemoveExpiredRegistrations(ctx, ttl)
	if err != nil {
		log.Printf("[scheduler][sweep] failed err=%v", err)
		return
	}
	log.Printf("[scheduler][sweep] done removed=%d", removed)
}

func (s *Scheduler) Start() {
	log.Printf("[scheduler] starting jobs=%d", len(s.scheduler.Jobs()))
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	log.Printf("[scheduler] stopping")
	return s.scheduler.Shutdown()
}
