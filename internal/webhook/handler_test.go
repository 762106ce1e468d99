package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"docinho/internal"
	"docinho/internal/catalog"
	"docinho/internal/config"
	"docinho/internal/intake"
	"docinho/internal/storage"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type nopLedger struct{}

func (nopLedger) AppendSale(context.Context, internal.Sale) error { return nil }

func (nopLedger) AppendPurchase(context.Context, internal.Purchase) error { return nil }

func (nopLedger) AppendPersonal(context.Context, internal.PersonalExpense) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Send(context.Context, string, string) error { return nil }

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := intake.NewService(catalog.Seeded(), nopLedger{}, nopNotifier{}, db)
	cfg := config.Config{WebhookRateRPS: 1000, WebhookRateBurst: 1000}
	return SetupRouter(cfg, NewHandler(svc))
}

func postWebhook(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"healthy"`)
}

func TestWebhookClassifiesSale(t *testing.T) {
	router := setupTestRouter(t)

	w := postWebhook(router, url.Values{
		"MessageSid": {"SM100"},
		"From":       {"whatsapp:+5511999999999"},
		"Body":       {"Venda: Trufa de Morango x2 - PIX - Cliente Maria"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","type":"venda"}`, w.Body.String())
}

func TestWebhookUnrecognizedFormat(t *testing.T) {
	router := setupTestRouter(t)

	w := postWebhook(router, url.Values{
		"MessageSid": {"SM101"},
		"From":       {"whatsapp:+55"},
		"Body":       {"bom dia"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","type":"invalid_format"}`, w.Body.String())
}

func TestWebhookDuplicateDelivery(t *testing.T) {
	router := setupTestRouter(t)

	form := url.Values{
		"MessageSid": {"SM102"},
		"From":       {"whatsapp:+55"},
		"Body":       {"Pessoal: Almoço - 15,00"},
	}

	first := postWebhook(router, form)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"status":"success","type":"pessoal"}`, first.Body.String())

	second := postWebhook(router, form)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"status":"success","type":"duplicate"}`, second.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(0), 1)))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	first := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
