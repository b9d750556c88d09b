package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-monitor-api/internal/config"
	"github.com/vfg2006/sales-monitor-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-monitor-api/pkg/timewindow"
)

// InsightWarmService pre-computes the insight cache entries the morning
// dashboard reads first: yesterday's daily narrative and the last
// complete week's report.
type InsightWarmService struct {
	scheduler         *gocron.Scheduler
	config            config.InsightWarm
	resolver          *timewindow.Resolver
	insighter         insighting.Insighter
	warmRunning       bool
	warmMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
}

func NewInsightWarmService(
	appConfig *config.Config,
	resolver *timewindow.Resolver,
	insighter insighting.Insighter,
) *InsightWarmService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.InsightWarm.CronSchedule,
		"enabled":       appConfig.InsightWarm.Enabled,
	}).Info("insight warm scheduler configuration loaded")

	return &InsightWarmService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.InsightWarm,
		resolver:  resolver,
		insighter: insighter,
	}
}

// Start schedules the warm job and stops the scheduler when ctx ends.
func (s *InsightWarmService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("insight cache warming disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting insight warm scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error scheduling insight warm job: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping insight warm scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightWarmService) warmAll(ctx context.Context) {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("insight warm run already in progress, skipping")
		return
	}
	s.warmRunning = true
	s.warmMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.warmMutex.Lock()
		s.warmRunning = false
		s.warmMutex.Unlock()
	}()

	yesterday := s.resolver.DaysAgo(1)
	if _, cached, err := s.insighter.DailyInsight(ctx, yesterday); err != nil {
		logrus.WithError(err).WithField("date", yesterday).Error("error warming daily insight")
	} else {
		logrus.WithFields(logrus.Fields{
			"date":       yesterday,
			"was_cached": cached,
		}).Info("daily insight warmed")
	}

	week := s.resolver.LastCompleteWeekRange()
	if _, cached, err := s.insighter.WeeklyInsight(ctx, week.From, week.To, false); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": week.From,
			"to":   week.To,
		}).Error("error warming weekly insight")
	} else {
		logrus.WithFields(logrus.Fields{
			"from":       week.From,
			"to":         week.To,
			"was_cached": cached,
		}).Info("weekly insight warmed")
	}

	s.lastRunFinishedAt = time.Now()
	logrus.WithField("duration", time.Since(startTime).String()).Info("insight warm run finished")
}

// TriggerManualRun starts a warm run outside the cron schedule.
func (s *InsightWarmService) TriggerManualRun() {
	s.warmMutex.Lock()
	if s.warmRunning {
		s.warmMutex.Unlock()
		logrus.Info("insight warm run already in progress, ignoring manual trigger")
		return
	}
	s.warmMutex.Unlock()

	logrus.Info("starting manual insight warm run")
	go s.warmAll(context.Background())
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *InsightWarmService) GetStatus() map[string]any {
	s.warmMutex.Lock()
	running := s.warmRunning
	s.warmMutex.Unlock()

	return map[string]any{
		"warm_enabled":         s.config.Enabled,
		"warm_cron":            s.config.CronSchedule,
		"warm_running":         running,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
