package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/service/reporting"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMessaging struct {
	verifyErr error
	handleErr error
	sendErr   error
	handled   []models.WebhookPayload
	sent      []models.OutboundMessageRequest
}

func (f *fakeMessaging) VerifyWebhookToken(mode, token, challenge string) (string, error) {
	if f.verifyErr != nil {
		return "", f.verifyErr
	}
	return challenge, nil
}

func (f *fakeMessaging) HandleWebhook(_ context.Context, payload models.WebhookPayload) error {
	f.handled = append(f.handled, payload)
	return f.handleErr
}

func (f *fakeMessaging) SendOutbound(_ context.Context, req models.OutboundMessageRequest) error {
	f.sent = append(f.sent, req)
	return f.sendErr
}

func webhookEngine(svc *fakeMessaging) *gin.Engine {
	h := NewWebhookHandler(svc, nil)
	r := gin.New()
	r.GET("/webhook", h.Verify)
	r.POST("/webhook", h.Receive)
	r.POST("/send-message", h.SendMessage)
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhookVerify(t *testing.T) {
	svc := &fakeMessaging{}
	r := webhookEngine(svc)

	rec := serve(r, http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=t&hub.challenge=42", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	svc.verifyErr = errors.New("token mismatch")
	rec = serve(r, http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=x&hub.challenge=42", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookReceive(t *testing.T) {
	svc := &fakeMessaging{}
	r := webhookEngine(svc)

	rec := serve(r, http.MethodPost, "/webhook", `{"object":"whatsapp_business_account","entry":[]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.handled, 1)

	rec = serve(r, http.MethodPost, "/webhook", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.handleErr = errors.New("dispatch failed")
	rec = serve(r, http.MethodPost, "/webhook", `{"object":"whatsapp_business_account"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSendMessage(t *testing.T) {
	svc := &fakeMessaging{}
	r := webhookEngine(svc)

	rec := serve(r, http.MethodPost, "/send-message", `{"to":"66800000000","message":"Stock check at 5pm"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, svc.sent, 1)
	assert.Equal(t, "66800000000", svc.sent[0].To)

	rec = serve(r, http.MethodPost, "/send-message", `{"to":"66800000000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.sendErr = errors.New("graph api down")
	rec = serve(r, http.MethodPost, "/send-message", `{"to":"1","message":"hi"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{fmt.Errorf("get item: %w", models.ErrItemNotFound), http.StatusNotFound, `{"detail":"Item not found"}`},
		{models.ErrSessionNotFound, http.StatusNotFound, `{"detail":"Session not found"}`},
		{models.ErrPurchaseNotFound, http.StatusNotFound, `{"detail":"Purchase not found"}`},
		{models.ErrOrderNotFound, http.StatusNotFound, `{"detail":"Order not found"}`},
		{models.ErrSupplierNotFound, http.StatusNotFound, `{"detail":"Supplier not found in shopping list"}`},
		{models.ErrNoStockCounts, http.StatusBadRequest, fmt.Sprintf(`{"detail":%q}`, models.ErrNoStockCounts.Error())},
		{reporting.ErrExportDisabled, http.StatusServiceUnavailable, fmt.Sprintf(`{"detail":%q}`, reporting.ErrExportDisabled.Error())},
		{errors.New("connection reset"), http.StatusInternalServerError, `{"detail":"Internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, zap.NewNop(), tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
