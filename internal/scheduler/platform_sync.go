package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lumora/internal/domain"
	"lumora/internal/usecase"
	"lumora/pkg/config"
	"lumora/pkg/logger"

	"github.com/go-co-op/gocron"
)

// Syncer runs one platform sync.
type Syncer interface {
	Sync(ctx context.Context, platform domain.PlatformID, creds domain.Credentials) (*usecase.SyncPayload, error)
}

// CampaignSink keeps the campaigns a sync returned.
type CampaignSink interface {
	StoreSynced(ctx context.Context, platform domain.PlatformID, campaigns []domain.PlatformCampaign) error
}

// RunReport maps each platform to its sync outcome.
type RunReport map[domain.PlatformID]string

// PlatformSyncJob periodically refreshes the configured platforms.
type PlatformSyncJob struct {
	scheduler   *gocron.Scheduler
	config      config.SchedulerConfig
	platforms   []domain.PlatformID
	credentials domain.Credentials
	syncer      Syncer
	sink        CampaignSink
	logger      *logger.Logger

	runMutex    sync.Mutex
	running     bool
	lastRunAt   time.Time
	lastReport  RunReport
	callTimeout time.Duration
}

// platforms outside the registry are rejected up front
func NewPlatformSyncJob(
	cfg config.SchedulerConfig,
	registry *domain.Registry,
	credentials domain.Credentials,
	syncer Syncer,
	sink CampaignSink,
	logger *logger.Logger,
	callTimeout time.Duration,
) (*PlatformSyncJob, error) {
	platforms := make([]domain.PlatformID, 0, len(cfg.Platforms))
	for _, raw := range cfg.Platforms {
		id, err := registry.Lookup(raw)
		if err != nil {
			return nil, fmt.Errorf("scheduler: %w", err)
		}
		platforms = append(platforms, id)
	}

	return &PlatformSyncJob{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      cfg,
		platforms:   platforms,
		credentials: credentials,
		syncer:      syncer,
		sink:        sink,
		logger:      logger,
		callTimeout: callTimeout,
	}, nil
}

// Start schedules the job and stops it when ctx is done.
func (j *PlatformSyncJob) Start(ctx context.Context) error {
	if !j.config.Enabled {
		j.logger.Info("Scheduled platform sync disabled by configuration")
		return nil
	}

	_, err := j.scheduler.Cron(j.config.Cron).Do(func() {
		j.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule platform sync: %w", err)
	}

	j.scheduler.StartAsync()
	j.logger.WithFields(map[string]any{
		"cron":      j.config.Cron,
		"platforms": j.platforms,
	}).Info("Scheduled platform sync started")

	go func() {
		<-ctx.Done()
		j.logger.Info("Stopping scheduled platform sync")
		j.scheduler.Stop()
	}()

	return nil
}

// RunOnce syncs every configured platform in turn. A run that starts while
// another is in progress returns nil without doing anything.
func (j *PlatformSyncJob) RunOnce(ctx context.Context) RunReport {
	j.runMutex.Lock()
	if j.running {
		j.runMutex.Unlock()
		j.logger.Info("Platform sync already running, skipping")
		return nil
	}
	j.running = true
	j.lastRunAt = time.Now()
	j.runMutex.Unlock()

	defer func() {
		j.runMutex.Lock()
		j.running = false
		j.runMutex.Unlock()
	}()

	report := make(RunReport, len(j.platforms))
	for _, platform := range j.platforms {
		if ctx.Err() != nil {
			break
		}
		report[platform] = j.syncOne(ctx, platform)
	}

	j.runMutex.Lock()
	j.lastReport = report
	j.runMutex.Unlock()

	j.logger.WithField("outcomes", report).Info("Scheduled platform sync finished")
	return report
}

func (j *PlatformSyncJob) syncOne(ctx context.Context, platform domain.PlatformID) string {
	if j.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.callTimeout)
		defer cancel()
	}

	payload, err := j.syncer.Sync(ctx, platform, j.credentials)
	if err != nil {
		return usecase.SyncOutcome(err)
	}

	if err := j.sink.StoreSynced(ctx, platform, payload.Synced); err != nil {
		j.logger.WithError(err).WithField("platform", platform).Error("Failed to store scheduled sync")
		return usecase.OutcomeFailed
	}
	return usecase.OutcomeSuccess
}

// LastRun returns when the last run started and what it reported.
func (j *PlatformSyncJob) LastRun() (time.Time, RunReport) {
	j.runMutex.Lock()
	defer j.runMutex.Unlock()
	return j.lastRunAt, j.lastReport
}
