package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lumora/internal/domain"
	"lumora/pkg/logger"
	"lumora/pkg/metrics"
)

// Sync outcomes, also used as metric labels
const (
	OutcomeSuccess            = "success"
	OutcomeUnknownPlatform    = "unknown_platform"
	OutcomeUnsupportedAuth    = "unsupported_auth"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeConnectionFailed   = "connection_failed"
	OutcomeFailed             = "failed"
)

// SyncPayload is what one successful sync hands back to the caller.
type SyncPayload struct {
	Success    bool                     `json:"success"`
	Platform   domain.PlatformConfig    `json:"platform"`
	Campaigns  []domain.CampaignSummary `json:"campaigns"`
	SyncResult domain.SyncResult        `json:"syncResult"`

	// full records, for callers that persist them
	Synced []domain.PlatformCampaign `json:"-"`
}

// SyncService drives one platform sync end to end. It keeps no state between
// calls, so syncs for different platforms may run concurrently.
type SyncService struct {
	registry    *domain.Registry
	factory     domain.ClientFactory
	logger      *logger.Logger
	metrics     *metrics.Metrics
	callTimeout time.Duration
}

// callTimeout bounds each client call; 0 leaves only the caller's deadline
func NewSyncService(
	registry *domain.Registry,
	factory domain.ClientFactory,
	logger *logger.Logger,
	metrics *metrics.Metrics,
	callTimeout time.Duration,
) *SyncService {
	return &SyncService{
		registry:    registry,
		factory:     factory,
		logger:      logger,
		metrics:     metrics,
		callTimeout: callTimeout,
	}
}

// Sync resolves the platform, builds its client, checks the connection, then
// lists campaigns and syncs. Errors wrap ErrUnknownPlatform,
// ErrUnsupportedAuth, ErrInvalidCredentials, ErrConnectionFailure or
// ErrSyncFailure; SyncOutcome tells them apart.
func (s *SyncService) Sync(ctx context.Context, platform domain.PlatformID, creds domain.Credentials) (*SyncPayload, error) {
	start := time.Now()
	s.metrics.IncSyncsInProgress()
	defer s.metrics.DecSyncsInProgress()

	log := s.logger.WithContext(ctx).WithField("platform", platform)

	payload, err := s.sync(ctx, platform, creds)
	outcome := SyncOutcome(err)
	s.metrics.RecordSync(platform.String(), outcome, time.Since(start))

	switch outcome {
	case OutcomeSuccess:
		s.metrics.RecordCampaignsSynced(platform.String(), len(payload.Campaigns))
		log.WithFields(map[string]any{
			"duration":  time.Since(start),
			"campaigns": len(payload.Campaigns),
		}).Info("Platform sync completed")
	case OutcomeUnsupportedAuth:
		log.Info("Platform requires OAuth, sync skipped")
	case OutcomeUnknownPlatform, OutcomeInvalidCredentials:
		log.WithError(err).Warn("Platform sync rejected")
	case OutcomeConnectionFailed:
		log.WithError(err).Warn("Platform connection failed")
	default:
		log.WithError(err).Error("Platform sync failed")
	}

	return payload, err
}

func (s *SyncService) sync(ctx context.Context, platform domain.PlatformID, creds domain.Credentials) (*SyncPayload, error) {
	log := s.logger.WithContext(ctx).WithField("platform", platform)

	cfg, err := s.registry.GetConfig(platform)
	if err != nil {
		return nil, err
	}

	client, err := s.factory.Create(platform, creds)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPlatform) ||
			errors.Is(err, domain.ErrUnsupportedAuth) ||
			errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
		return nil, syncFailure("create client", platform, err)
	}
	if client == nil {
		return nil, domain.NewPlatformError("create client", platform, domain.ErrUnsupportedAuth)
	}
	log.Debug("Platform client created")

	ok, err := s.testConnection(ctx, client)
	if err != nil {
		if errors.Is(err, domain.ErrConnectionFailure) {
			return nil, err
		}
		return nil, domain.NewPlatformError("test connection", platform, fmt.Errorf("%w: %w", domain.ErrConnectionFailure, err))
	}
	if !ok {
		return nil, domain.NewPlatformError("test connection", platform, domain.ErrConnectionFailure)
	}
	log.Debug("Platform connection verified")

	campaigns, err := s.getCampaigns(ctx, client)
	if err != nil {
		return nil, syncFailure("get campaigns", platform, err)
	}
	log.WithField("campaigns", len(campaigns)).Debug("Platform campaigns fetched")

	result, err := s.syncData(ctx, client)
	if err != nil {
		return nil, syncFailure("sync data", platform, err)
	}

	summaries := make([]domain.CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		summaries = append(summaries, c.Summary())
	}

	return &SyncPayload{
		Success:    true,
		Platform:   cfg,
		Campaigns:  summaries,
		SyncResult: result,
		Synced:     campaigns,
	}, nil
}

func (s *SyncService) testConnection(ctx context.Context, client domain.PlatformClient) (bool, error) {
	ctx, cancel := s.withCallTimeout(ctx)
	defer cancel()
	return client.TestConnection(ctx)
}

func (s *SyncService) getCampaigns(ctx context.Context, client domain.PlatformClient) ([]domain.PlatformCampaign, error) {
	ctx, cancel := s.withCallTimeout(ctx)
	defer cancel()
	return client.GetCampaigns(ctx, domain.CampaignFilter{})
}

func (s *SyncService) syncData(ctx context.Context, client domain.PlatformClient) (domain.SyncResult, error) {
	ctx, cancel := s.withCallTimeout(ctx)
	defer cancel()
	return client.SyncData(ctx)
}

func (s *SyncService) withCallTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func syncFailure(op string, platform domain.PlatformID, err error) error {
	return domain.NewPlatformError(op, platform, fmt.Errorf("%w: %w", domain.ErrSyncFailure, err))
}

// SyncOutcome classifies an error returned by Sync.
func SyncOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrSyncFailure):
		return OutcomeFailed
	case errors.Is(err, domain.ErrUnknownPlatform):
		return OutcomeUnknownPlatform
	case errors.Is(err, domain.ErrUnsupportedAuth):
		return OutcomeUnsupportedAuth
	case errors.Is(err, domain.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, domain.ErrConnectionFailure):
		return OutcomeConnectionFailed
	default:
		return OutcomeFailed
	}
}
