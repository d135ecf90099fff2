// Package maturityjob flips active investments past their maturity date to matured.
package maturityjob

import (
	"context"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/metrics"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source sweeper.go -destination sweeper_mock.go -package maturityjob

// Repo marks investments matured.
type Repo interface {
	MarkMatured(ctx context.Context, today time.Time) (int64, error)
}

// Sweeper runs the maturity sweep. It never touches wallet balances.
type Sweeper struct {
	repo    Repo
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewSweeper returns a maturity sweeper.
func NewSweeper(repo Repo, m *metrics.Metrics) *Sweeper {
	return &Sweeper{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

// Run matures every active investment whose maturity date is before today
// and returns how many were matured.
func (s *Sweeper) Run(ctx context.Context) (int64, error) {
	today := domain.Date(s.now())

	n, err := s.repo.MarkMatured(ctx, today)
	if err != nil {
		return 0, err
	}

	s.metrics.Matured(n)

	zerolog.Ctx(ctx).Info().
		Int64("matured", n).
		Time("today", today).
		Msg("maturity sweep completed")

	return n, nil
}

// Scheduler runs the sweeper on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *Sweeper
	log     zerolog.Logger
}

// NewScheduler registers the sweeper under spec, a standard five field cron
// expression or a descriptor such as "@hourly" or "@every 30m".
func NewScheduler(spec string, sweeper *Sweeper, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		sweeper: sweeper,
		log:     log.With().Str("component", "maturityjob").Logger(),
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}

	s.log.Info().Str("schedule", spec).Msg("maturity sweep registered")

	return s, nil
}

func (s *Scheduler) run() {
	ctx := s.log.WithContext(context.Background())

	if _, err := s.sweeper.Run(ctx); err != nil {
		s.log.Error().Err(err).Msg("maturity sweep failed")
	}
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}
