package refresh

import (
	"context"
	"presence/internal/providers"
	"presence/internal/refresh/interfaces"
	"presence/internal/services"
	"presence/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	service   services.PresenceServiceInterface
	refresher interfaces.RefresherInterface
	responses providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
	cron      *gron.Cron
	opsMu     sync.Mutex

	lastRefresh *atomic.Time
	lastError   *atomic.String
}

// Init starts periodic metadata refreshes when both an interval and a remote
// url are configured.
func (s *Scheduler) Init() {
	interval := s.config.Fetch.Interval
	if interval <= 0 || s.config.Data.RemoteXml == "" {
		s.logger.Infof(providers.TypeApp, "Periodic metadata refresh disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		_ = s.RefreshNow(context.Background())
	})
	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Metadata refresh scheduled every %s", interval)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RefreshNow fetches the metadata once. On success the cached dataset and
// responses are dropped so the next request sees the new names.
func (s *Scheduler) RefreshNow(ctx context.Context) error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.refresher.Refresh(ctx)
	s.metrics.IncRefreshes(err == nil)
	if err != nil {
		s.lastError.Store(err.Error())
		s.logger.Errorf(providers.TypeApp, "Metadata refresh failed, keeping current file: %s", err)
		return err
	}

	s.lastError.Store("")
	s.lastRefresh.Store(time.Now())
	s.service.Invalidate()
	s.responses.Clear()
	return nil
}

func (s *Scheduler) LastRefresh() time.Time {
	return s.lastRefresh.Load()
}

func (s *Scheduler) LastError() string {
	return s.lastError.Load()
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.PresenceServiceInterface, refresher interfaces.RefresherInterface, responses providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		refresher:   refresher,
		responses:   responses,
		metrics:     metrics,
		lastRefresh: atomic.NewTime(time.Time{}),
		lastError:   atomic.NewString(""),
	}
}
