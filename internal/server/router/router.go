package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/cache"
	"github.com/mamadbah2/barstock/internal/server/handlers"
	"github.com/mamadbah2/barstock/internal/server/middleware"
)

// Handlers groups every HTTP adapter mounted by the router. Webhook is optional.
type Handlers struct {
	Inventory *handlers.InventoryHandler
	Sessions  *handlers.SessionHandler
	Purchases *handlers.PurchaseHandler
	Reports   *handlers.ReportHandler
	Orders    *handlers.OrderHandler
	Webhook   *handlers.WebhookHandler
}

// Options tunes cross-cutting middleware.
type Options struct {
	AllowedOrigins []string
	// ReportCache backs the cached report routes; nil disables caching.
	ReportCache cache.Store
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, opts Options, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if h.Webhook != nil {
		r.GET("/webhook", h.Webhook.Verify)
		r.POST("/webhook", h.Webhook.Receive)
		r.POST("/send-message", h.Webhook.SendMessage)
	}

	api := r.Group("/api")
	api.Use(middleware.InvalidateOnWrite(opts.ReportCache, logger.Named("cache")))
	cached := middleware.ResponseCache(opts.ReportCache, logger.Named("cache"))

	inv := h.Inventory
	api.GET("/items", inv.ListItems)
	api.POST("/items", inv.CreateItem)
	api.GET("/items/:id", inv.GetItem)
	api.PUT("/items/:id", inv.UpdateItem)
	api.DELETE("/items/:id", inv.DeleteItem)

	api.GET("/stock-counts", inv.ListStockCounts)
	api.POST("/stock-counts", inv.CreateStockCount)
	api.GET("/stock-counts/:item_id", inv.GetStockCount)
	api.PUT("/stock-counts/:item_id", inv.UpdateStockCount)
	api.POST("/stock-counts-enhanced/:item_id", inv.RecordCaseCount)
	api.POST("/initialize-real-data", inv.InitializeRealData)

	rep := h.Reports
	api.GET("/shopping-list", cached, rep.ShoppingList)
	api.GET("/shopping-list-text/:supplier", cached, rep.ShoppingListText)
	api.GET("/quick-restock", cached, rep.QuickRestock)
	api.GET("/reports/session-comparison/:id1/:id2", cached, rep.SessionComparison)
	api.POST("/reports/session-comparison/:id1/:id2/export", rep.ExportSessionComparison)
	api.GET("/reports/usage-summary", cached, rep.UsageSummary)

	ses := h.Sessions
	api.POST("/stock-sessions", ses.Create)
	api.GET("/stock-sessions", ses.List)
	api.GET("/stock-sessions/current", ses.Current)
	api.POST("/stock-sessions/:id/save-counts", ses.SaveCounts)

	pur := h.Purchases
	api.POST("/purchases", pur.Create)
	api.GET("/purchases", pur.List)
	api.GET("/purchases/session/:id", pur.ListBySession)
	api.GET("/purchases/:id", pur.Get)
	api.PUT("/purchases/:id", pur.Update)
	api.DELETE("/purchases/:id", pur.Delete)

	ord := h.Orders
	api.POST("/shopping-orders", ord.Create)
	api.GET("/shopping-orders", ord.List)
	api.PUT("/shopping-orders/:id/status", ord.UpdateStatus)

	logger.Info("router initialized", zap.Bool("webhook", h.Webhook != nil), zap.Bool("report_cache", opts.ReportCache != nil))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.MaxAge = 12 * time.Hour

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if cacheState := c.Writer.Header().Get(middleware.CacheHeader); cacheState != "" {
			fields = append(fields, zap.String("cache", cacheState))
		}
		logger.Info("request completed", fields...)
	}
}
