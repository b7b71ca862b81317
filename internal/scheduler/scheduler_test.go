package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/config"
	"github.com/mamadbah2/barstock/internal/domain/models"
)

type fakeReports struct {
	restockText string
	low         bool
	usageText   string
	err         error
}

func (f *fakeReports) RestockAlertText(context.Context) (string, bool, error) {
	return f.restockText, f.low, f.err
}

func (f *fakeReports) WeeklyUsageText(context.Context) (string, error) {
	return f.usageText, f.err
}

type fakeMessaging struct {
	sent []models.OutboundMessageRequest
	err  error
}

func (f *fakeMessaging) VerifyWebhookToken(string, string, string) (string, error) {
	return "", nil
}

func (f *fakeMessaging) HandleWebhook(context.Context, models.WebhookPayload) error {
	return nil
}

func (f *fakeMessaging) SendOutbound(_ context.Context, req models.OutboundMessageRequest) error {
	f.sent = append(f.sent, req)
	return f.err
}

func testConfig() config.ReportingConfig {
	return config.ReportingConfig{
		RestockAlertCron: "0 17 * * *",
		UsageReportCron:  "0 10 * * 1",
		Timezone:         "Asia/Bangkok",
	}
}

func newTestScheduler(t *testing.T, reports Reports, messaging *fakeMessaging) *Scheduler {
	t.Helper()
	s, err := NewScheduler(testConfig(), "66800000000", reports, messaging, nil)
	require.NoError(t, err)
	return s
}

func TestNewSchedulerRejectsUnknownTimezone(t *testing.T) {
	cfg := testConfig()
	cfg.Timezone = "Nowhere/Land"

	_, err := NewScheduler(cfg, "", &fakeReports{}, &fakeMessaging{}, nil)
	require.Error(t, err)
}

func TestStartRejectsInvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.UsageReportCron = "every monday"

	s, err := NewScheduler(cfg, "", &fakeReports{}, &fakeMessaging{}, nil)
	require.NoError(t, err)
	require.Error(t, s.Start())
}

func TestRestockAlertSentOnlyWhenItemsAreLow(t *testing.T) {
	reports := &fakeReports{restockText: "All items are at or above minimum stock."}
	messaging := &fakeMessaging{}
	s := newTestScheduler(t, reports, messaging)

	s.runJob("restock_alert", s.restockAlert)
	assert.Empty(t, messaging.sent)

	reports.restockText = "Restock alert: 1 items below minimum"
	reports.low = true
	s.runJob("restock_alert", s.restockAlert)

	require.Len(t, messaging.sent, 1)
	assert.Equal(t, "66800000000", messaging.sent[0].To)
	assert.Equal(t, reports.restockText, messaging.sent[0].Message)
}

func TestUsageReportSent(t *testing.T) {
	reports := &fakeReports{usageText: "Usage report: a to b (7 days)"}
	messaging := &fakeMessaging{}
	s := newTestScheduler(t, reports, messaging)

	s.runJob("usage_report", s.usageReport)

	require.Len(t, messaging.sent, 1)
	assert.Equal(t, reports.usageText, messaging.sent[0].Message)
}

func TestJobErrorSkipsSend(t *testing.T) {
	reports := &fakeReports{usageText: "ignored", err: errors.New("mongo down")}
	messaging := &fakeMessaging{}
	s := newTestScheduler(t, reports, messaging)

	s.runJob("usage_report", s.usageReport)
	assert.Empty(t, messaging.sent)
}
