package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"agrisense/pkg/logger"
)

type Task func(ctx context.Context) error

// CronScheduler runs named tasks on cron expressions (with seconds field
// optional), each bounded by a per-run timeout.
type CronScheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	log     logger.Logger

	mu      sync.Mutex
	started bool
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewCronScheduler(timeout time.Duration, log logger.Logger) *CronScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return &CronScheduler{
		cron:    cron.New(cron.WithParser(parser)),
		timeout: timeout,
		log:     logger.Component(log, "cron_scheduler"),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Schedule registers task under spec, e.g. "*/30 * * * *" or "@every 15m".
func (s *CronScheduler) Schedule(name, spec string, task Task) error {
	id, err := s.cron.AddFunc(spec, s.wrap(name, task))
	if err != nil {
		return fmt.Errorf("schedule %s with %q: %w", name, spec, err)
	}
	s.log.Infof("task %s scheduled (%s) with entry ID: %d", name, spec, id)
	return nil
}

func (s *CronScheduler) wrap(name string, task Task) func() {
	return func() {
		start := time.Now()
		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		defer cancel()

		if err := task(ctx); err != nil {
			s.log.Errorf("task %s failed: %v", name, err)
			return
		}
		s.log.Debugf("task %s completed in %v", name, time.Since(start))
	}
}

func (s *CronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
	s.log.Info("Cron scheduler started")
}

// Stop cancels running tasks and waits for them to return.
func (s *CronScheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	s.log.Info("Cron scheduler stopped")
}
