// Package scheduler pushes periodic stock reports to the bar manager over WhatsApp.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/config"
	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/service/whatsapp"
)

const jobTimeout = 2 * time.Minute

// Reports produces the texts pushed by the scheduled jobs.
type Reports interface {
	RestockAlertText(ctx context.Context) (string, bool, error)
	WeeklyUsageText(ctx context.Context) (string, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	reports   Reports
	messaging whatsapp.MessagingService
	recipient string
	cfg       config.ReportingConfig
	logger    *zap.Logger
}

// NewScheduler builds a scheduler running in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, recipient string, reports Reports, messaging whatsapp.MessagingService, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reports:   reports,
		messaging: messaging,
		recipient: recipient,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Start registers the restock alert and usage report jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.RestockAlertCron, func() { s.runJob("restock_alert", s.restockAlert) }); err != nil {
		return fmt.Errorf("schedule restock alert %q: %w", s.cfg.RestockAlertCron, err)
	}
	if _, err := s.cron.AddFunc(s.cfg.UsageReportCron, func() { s.runJob("usage_report", s.usageReport) }); err != nil {
		return fmt.Errorf("schedule usage report %q: %w", s.cfg.UsageReportCron, err)
	}

	s.logger.Info("starting scheduler",
		zap.String("restock_alert", s.cfg.RestockAlertCron),
		zap.String("usage_report", s.cfg.UsageReportCron),
		zap.String("timezone", s.cfg.Timezone))
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// job returns the message to send; an empty message means nothing to report.
type job func(ctx context.Context) (string, error)

func (s *Scheduler) runJob(name string, fn job) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	log := s.logger.With(zap.String("job", name))
	msg, err := fn(ctx)
	if err != nil {
		log.Error("scheduled job failed", zap.Error(err))
		return
	}
	if msg == "" {
		log.Info("nothing to report")
		return
	}

	req := models.OutboundMessageRequest{To: s.recipient, Message: msg}
	if err := s.messaging.SendOutbound(ctx, req); err != nil {
		log.Error("failed to send scheduled report", zap.Error(err))
		return
	}
	log.Info("scheduled report sent")
}

func (s *Scheduler) restockAlert(ctx context.Context) (string, error) {
	text, low, err := s.reports.RestockAlertText(ctx)
	if err != nil || !low {
		return "", err
	}
	return text, nil
}

func (s *Scheduler) usageReport(ctx context.Context) (string, error) {
	return s.reports.WeeklyUsageText(ctx)
}
