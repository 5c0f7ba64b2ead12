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

// PurchaseSummarySyncConfig holds the scheduling settings for the purchase summary sync
type PurchaseSummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// PurchaseSummarySyncService schedules and runs the daily purchase summary rollup
type PurchaseSummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              PurchaseSummarySyncConfig
	appConfig           *config.Config
	summaryService      summarizing.SummaryService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPurchaseSummarySyncService creates a new purchase summary sync service
func NewPurchaseSummarySyncService(
	summaryService summarizing.SummaryService,
	appConfig *config.Config,
) *PurchaseSummarySyncService {
	syncConfig := PurchaseSummarySyncConfig{
		CronSchedule: appConfig.PurchaseSummarySync.CronSchedule,
		LookbackDays: appConfig.PurchaseSummarySync.LookbackDays,
		SyncEnabled:  appConfig.PurchaseSummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Purchase summary sync configuration loaded")

	return &PurchaseSummarySyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		summaryService: summaryService,
		syncRunning:    false,
	}
}

// Start starts the scheduler
func (s *PurchaseSummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Purchase summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting purchase summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllPurchaseSummaries()
	})
	if err != nil {
		return fmt.Errorf("error scheduling purchase summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	// Stop the scheduler when the context is cancelled
	go func() {
		<-ctx.Done()
		logrus.Info("Stopping purchase summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllPurchaseSummaries rolls up purchases for every date in the lookback window
func (s *PurchaseSummarySyncService) syncAllPurchaseSummaries() {
	s.syncPurchaseSummaries(s.getDatesToProcess())
}

// syncPurchaseSummaries rolls up purchases for the given dates, oldest first so
// each day can compare against the summary of the day before it
func (s *PurchaseSummarySyncService) syncPurchaseSummaries(dates []time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Purchase summary sync already running, skipping")
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
		logrus.Info("No dates to process for purchase summary sync")
		return
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	logrus.WithFields(logrus.Fields{
		"days":       len(dates),
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Starting purchase summary sync")

	processed := 0
	failed := 0
	for _, date := range dates {
		if _, err := s.summaryService.SummarizePurchasesForDate(date); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("Error processing purchase summary for date")
			continue
		}
		processed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": processed,
		"failed":    failed,
	}).Info("Purchase summary sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess builds the set of dates to roll up
func (s *PurchaseSummarySyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Start from yesterday and walk backwards
	}
	return dates
}

// TriggerManualSync manually starts a purchase summary sync over the lookback window
func (s *PurchaseSummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Purchase summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual purchase summary sync")
	go s.syncAllPurchaseSummaries()
}

// TriggerManualSyncForDate manually starts a purchase summary sync for a single date
func (s *PurchaseSummarySyncService) TriggerManualSyncForDate(date time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Purchase summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("date", date.Format(time.DateOnly)).Info("Starting manual purchase summary sync for date")
	go s.syncPurchaseSummaries([]time.Time{date})
}

// GetStatus returns the current scheduler status
func (s *PurchaseSummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
