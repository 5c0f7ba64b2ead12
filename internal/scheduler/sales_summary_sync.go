package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-insights-api/internal/config"
	"github.com/vfg2006/inventory-insights-api/internal/usecases/summarizing"
)

// SalesSummarySyncConfig holds the scheduling settings for the sales summary sync
type SalesSummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// SalesSummarySyncService schedules and runs the daily sales summary rollup
type SalesSummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              SalesSummarySyncConfig
	appConfig           *config.Config
	summaryService      summarizing.SummaryService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSalesSummarySyncService creates a new sales summary sync service
func NewSalesSummarySyncService(
	summaryService summarizing.SummaryService,
	appConfig *config.Config,
) *SalesSummarySyncService {
	syncConfig := SalesSummarySyncConfig{
		CronSchedule: appConfig.SalesSummarySync.CronSchedule,
		LookbackDays: appConfig.SalesSummarySync.LookbackDays,
		SyncEnabled:  appConfig.SalesSummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Sales summary sync configuration loaded")

	return &SalesSummarySyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		summaryService: summaryService,
		syncRunning:    false,
	}
}

// Start starts the scheduler
func (s *SalesSummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sales summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting sales summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllSalesSummaries()
	})
	if err != nil {
		return fmt.Errorf("error scheduling sales summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	// Stop the scheduler when the context is cancelled
	go func() {
		<-ctx.Done()
		logrus.Info("Stopping sales summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllSalesSummaries rolls up sales for every date in the lookback window
func (s *SalesSummarySyncService) syncAllSalesSummaries() {
	s.syncSalesSummaries(s.getDatesToProcess())
}

// syncSalesSummaries rolls up sales for the given dates, oldest first so each
// day can compare against the summary of the day before it
func (s *SalesSummarySyncService) syncSalesSummaries(dates []time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sales summary sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(dates) == 0 {
		logrus.Info("No dates to process for sales summary sync")
		return
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	logrus.WithFields(logrus.Fields{
		"days":       len(dates),
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Starting sales summary sync")

	processed := 0
	failed := 0
	for _, date := range dates {
		if _, err := s.summaryService.SummarizeSalesForDate(date); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("Error processing sales summary for date")
			continue
		}
		processed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": processed,
		"failed":    failed,
	}).Info("Sales summary sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess builds the set of dates to roll up
func (s *SalesSummarySyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Start from yesterday and walk backwards
	}
	return dates
}

// TriggerManualSync manually starts a sales summary sync over the lookback window
func (s *SalesSummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sales summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual sales summary sync")
	go s.syncAllSalesSummaries()
}

// TriggerManualSyncForDate manually starts a sales summary sync for a single date
func (s *SalesSummarySyncService) TriggerManualSyncForDate(date time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sales summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("date", date.Format(time.DateOnly)).Info("Starting manual sales summary sync for date")
	go s.syncSalesSummaries([]time.Time{date})
}

// GetStatus returns the current scheduler status
func (s *SalesSummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
