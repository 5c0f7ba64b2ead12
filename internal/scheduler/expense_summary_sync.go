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

// ExpenseSummarySyncConfig holds the scheduling settings for the expense summary sync
type ExpenseSummarySyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ExpenseSummarySyncService schedules and runs the daily expense summary rollup,
// including the per-category breakdown
type ExpenseSummarySyncService struct {
	scheduler           *gocron.Scheduler
	config              ExpenseSummarySyncConfig
	appConfig           *config.Config
	summaryService      summarizing.SummaryService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewExpenseSummarySyncService creates a new expense summary sync service
func NewExpenseSummarySyncService(
	summaryService summarizing.SummaryService,
	appConfig *config.Config,
) *ExpenseSummarySyncService {
	syncConfig := ExpenseSummarySyncConfig{
		CronSchedule: appConfig.ExpenseSummarySync.CronSchedule,
		LookbackDays: appConfig.ExpenseSummarySync.LookbackDays,
		SyncEnabled:  appConfig.ExpenseSummarySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Expense summary sync configuration loaded")

	return &ExpenseSummarySyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		appConfig:      appConfig,
		summaryService: summaryService,
		syncRunning:    false,
	}
}

// Start starts the scheduler
func (s *ExpenseSummarySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Expense summary sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting expense summary sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllExpenseSummaries()
	})
	if err != nil {
		return fmt.Errorf("error scheduling expense summary sync: %w", err)
	}

	s.scheduler.StartAsync()

	// Stop the scheduler when the context is cancelled
	go func() {
		<-ctx.Done()
		logrus.Info("Stopping expense summary sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllExpenseSummaries rolls up expenses for every date in the lookback window
func (s *ExpenseSummarySyncService) syncAllExpenseSummaries() {
	s.syncExpenseSummaries(s.getDatesToProcess())
}

// syncExpenseSummaries rolls up expenses for the given dates, oldest first
func (s *ExpenseSummarySyncService) syncExpenseSummaries(dates []time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expense summary sync already running, skipping")
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
		logrus.Info("No dates to process for expense summary sync")
		return
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	logrus.WithFields(logrus.Fields{
		"days":       len(dates),
		"start_date": dates[0].Format(time.DateOnly),
		"end_date":   dates[len(dates)-1].Format(time.DateOnly),
	}).Info("Starting expense summary sync")

	processed := 0
	failed := 0
	for _, date := range dates {
		if _, err := s.summaryService.SummarizeExpensesForDate(date); err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("Error processing expense summary for date")
			continue
		}
		processed++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"processed": processed,
		"failed":    failed,
	}).Info("Expense summary sync completed")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess builds the set of dates to roll up
func (s *ExpenseSummarySyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Start from yesterday and walk backwards
	}
	return dates
}

// TriggerManualSync manually starts an expense summary sync over the lookback window
func (s *ExpenseSummarySyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expense summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual expense summary sync")
	go s.syncAllExpenseSummaries()
}

// TriggerManualSyncForDate manually starts an expense summary sync for a single date
func (s *ExpenseSummarySyncService) TriggerManualSyncForDate(date time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expense summary sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("date", date.Format(time.DateOnly)).Info("Starting manual expense summary sync for date")
	go s.syncExpenseSummaries([]time.Time{date})
}

// GetStatus returns the current scheduler status
func (s *ExpenseSummarySyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
