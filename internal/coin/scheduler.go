package coin

import (
	"context"
	"time"
	"valens/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Scheduler struct {
	refreshRepo   adapters.PriceRefreshRepository
	pricingClient adapters.PricingClient
	cache         adapters.PriceCache
	interval      time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		refreshErr := RefreshPendingPrices(jobCtx, execID, s.refreshRepo, s.pricingClient, s.cache)
		if refreshErr != nil {
			logrus.Errorf("Refresh pending prices job %s failed: %v", execID, refreshErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(refreshRepo adapters.PriceRefreshRepository, pricingClient adapters.PricingClient, cache adapters.PriceCache, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Scheduler{refreshRepo: refreshRepo, pricingClient: pricingClient, cache: cache, interval: interval}
}
