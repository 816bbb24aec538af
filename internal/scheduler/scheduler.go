package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finledger/finledger/internal/alerting"
	"github.com/finledger/finledger/internal/core/domain"
	portsrepo "github.com/finledger/finledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finledger/internal/core/ports/services"
	"github.com/finledger/finledger/internal/middleware"
	"github.com/finledger/finledger/pkg/config"
)

// schedulerActor is recorded as the acting principal on scheduler-driven work.
const schedulerActor = "system:validation-scheduler"

// ValidationScheduler runs the validation suite for every active tenant on a
// fixed interval. Tenants are validated concurrently but each tenant is
// protected by a database lease lock, so two scheduler instances never run
// the same tenant at once.
type ValidationScheduler struct {
	tenantSvc      portssvc.TenantSvcFacade
	validationSvc  portssvc.ValidationSvcFacade
	validationRepo portsrepo.ValidationRunLocker
	alerter        alerting.Alerter
	logger         *slog.Logger

	interval     time.Duration
	lockLease    time.Duration
	retryCount   int
	retryBackoff time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewValidationScheduler creates a scheduler from configuration.
func NewValidationScheduler(
	cfg *config.Config,
	tenantSvc portssvc.TenantSvcFacade,
	validationSvc portssvc.ValidationSvcFacade,
	validationRepo portsrepo.ValidationRunLocker,
	alerter alerting.Alerter,
	logger *slog.Logger,
) *ValidationScheduler {
	return &ValidationScheduler{
		tenantSvc:      tenantSvc,
		validationSvc:  validationSvc,
		validationRepo: validationRepo,
		alerter:        alerter,
		logger:         logger,
		interval:       cfg.ValidationRunInterval,
		lockLease:      cfg.ValidationLockLease,
		retryCount:     cfg.ValidationRetryCount,
		retryBackoff:   cfg.ValidationRetryBackoff,
	}
}

// Start launches the scheduler loop. The first pass runs after one full
// interval, not immediately, so a crash-looping process cannot hammer the
// validation queries.
func (s *ValidationScheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("Validation scheduler started", slog.Duration("interval", s.interval))
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Validation scheduler stopping")
				return
			case <-ticker.C:
				s.runPass(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for in-flight tenant runs to finish.
func (s *ValidationScheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// runPass validates every active tenant concurrently and waits for the pass
// to complete before returning.
func (s *ValidationScheduler) runPass(ctx context.Context) {
	tenants, err := s.tenantSvc.ListActiveTenants(ctx)
	if err != nil {
		s.logger.Error("Failed to list tenants for validation pass", slog.String("error", err.Error()))
		return
	}

	var passWG sync.WaitGroup
	for _, tenant := range tenants {
		passWG.Add(1)
		go func(t domain.Tenant) {
			defer passWG.Done()
			s.runTenant(ctx, t)
		}(tenant)
	}
	passWG.Wait()
}

// runTenant claims the tenant's run lock and executes the suite. An
// infrastructure failure is retried per the configured retry count; a run
// that still fails is marked FAILED and alerted. Check FAILs are not errors:
// the run completes and the failures are alerted.
func (s *ValidationScheduler) runTenant(ctx context.Context, tenant domain.Tenant) {
	runID := uuid.NewString()
	now := time.Now().UTC()
	logger := s.logger.With(slog.String("tenant_id", tenant.TenantID), slog.String("run_id", runID))

	run := domain.ValidationRun{
		RunID:       runID,
		TenantID:    tenant.TenantID,
		Status:      domain.RunRunning,
		Attempt:     1,
		StartedAt:   now,
		LeaseExpiry: now.Add(s.lockLease),
	}

	acquired, err := s.validationRepo.AcquireRunLock(ctx, run)
	if err != nil {
		logger.Error("Failed to acquire validation run lock", slog.String("error", err.Error()))
		return
	}
	if !acquired {
		logger.Info("Validation run already in flight, skipping tenant")
		return
	}

	tenantCtx := middleware.WithTenantID(ctx, tenant.TenantID)
	tenantCtx = middleware.WithActor(tenantCtx, schedulerActor)

	results, err := s.runWithRetry(tenantCtx, logger, runID)
	finishedAt := time.Now().UTC()

	if err != nil {
		logger.Error("Validation run failed", slog.String("error", err.Error()))
		if ferr := s.validationRepo.FinishRun(ctx, runID, domain.RunFailed, finishedAt, err.Error()); ferr != nil {
			logger.Error("Failed to record run failure", slog.String("error", ferr.Error()))
		}
		s.sendAlert(ctx, logger, alerting.Alert{
			TenantID:   tenant.TenantID,
			RunID:      runID,
			Kind:       "run_failure",
			Message:    fmt.Sprintf("validation run aborted: %v", err),
			OccurredAt: finishedAt,
		})
		return
	}

	if ferr := s.validationRepo.FinishRun(ctx, runID, domain.RunCompleted, finishedAt, ""); ferr != nil {
		logger.Error("Failed to record run completion", slog.String("error", ferr.Error()))
	}

	failures := make([]domain.ValidationResult, 0)
	for _, r := range results {
		if r.Failed() {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		s.sendAlert(ctx, logger, alerting.Alert{
			TenantID:   tenant.TenantID,
			RunID:      runID,
			Kind:       "check_failure",
			Message:    fmt.Sprintf("%d of %d validation checks failed", len(failures), len(results)),
			Failures:   failures,
			OccurredAt: finishedAt,
		})
	}
}

// runWithRetry runs the suite, retrying infrastructure errors after a backoff.
// A retry is a fresh attempt of the full suite under the same run id.
func (s *ValidationScheduler) runWithRetry(ctx context.Context, logger *slog.Logger, runID string) ([]domain.ValidationResult, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retryCount+1; attempt++ {
		results, err := s.validationSvc.RunAll(ctx, runID)
		if err == nil {
			return results, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		if attempt <= s.retryCount {
			logger.Warn("Validation attempt failed, retrying",
				slog.Int("attempt", attempt), slog.String("error", err.Error()))
			if !s.waitBackoff(ctx) {
				break
			}
		}
	}
	return nil, lastErr
}

// waitBackoff sleeps for the configured retry backoff. Returns false when the
// context was cancelled while waiting.
func (s *ValidationScheduler) waitBackoff(ctx context.Context) bool {
	if s.retryBackoff <= 0 {
		return true
	}
	timer := time.NewTimer(s.retryBackoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *ValidationScheduler) sendAlert(ctx context.Context, logger *slog.Logger, alert alerting.Alert) {
	if err := s.alerter.Send(ctx, alert); err != nil {
		logger.Error("Failed to deliver validation alert", slog.String("error", err.Error()))
	}
}
