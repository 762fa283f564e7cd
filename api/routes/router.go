package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/lotflow-backend/api/controllers"
	"github.com/angelmondragon/lotflow-backend/api/middleware"
	"github.com/angelmondragon/lotflow-backend/internal/audit"
	"github.com/angelmondragon/lotflow-backend/internal/inventory"
	"github.com/angelmondragon/lotflow-backend/internal/invoices"
	"github.com/angelmondragon/lotflow-backend/internal/ledger"
	"github.com/angelmondragon/lotflow-backend/internal/memos"
	"github.com/angelmondragon/lotflow-backend/internal/production"
	"github.com/angelmondragon/lotflow-backend/internal/stageevents"
	"github.com/angelmondragon/lotflow-backend/pkg/config"
	"github.com/angelmondragon/lotflow-backend/pkg/db"
	"github.com/angelmondragon/lotflow-backend/pkg/logger"
	"github.com/angelmondragon/lotflow-backend/pkg/redis"
	"github.com/angelmondragon/lotflow-backend/pkg/security"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gatherer prometheus.Gatherer,
	passcode *security.PasscodeVerifier,
	memoService memos.Service,
	productionService production.Service,
	ledgerService ledger.Service,
	inventoryService inventory.Service,
	invoiceService invoices.Service,
	stageEventService stageevents.Service,
	auditService audit.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	// A nil *redis.Client must reach the middleware as a nil interface.
	var (
		limiter     middleware.RateLimiterStore
		idempotency redis.IdempotencyStore
		redisPinger redis.Pinger
	)
	if redisClient != nil {
		limiter = redisClient
		idempotency = redisClient
		redisPinger = redisClient
	}

	writePolicy := middleware.NewWriteRateLimitPolicy(
		"write",
		cfg.Auth.WriteLimitWindow,
		cfg.Auth.WriteLimitPerIP,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg,
			controllers.Dependency{Name: "database", Pinger: dbP},
			controllers.Dependency{Name: "redis", Pinger: redisPinger},
		))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/memos", controllers.MemoList(memoService, logg))
			r.Get("/memos/{memoId}", controllers.MemoDetail(memoService, logg))

			r.Get("/production/lots", controllers.ProductionLots(productionService, logg))
			r.Get("/production/lots/{lotCode}", controllers.ProductionLot(productionService, logg))
			r.Get("/production/stages", controllers.ProductionStages(productionService, logg))
			r.Get("/production/export", controllers.ProductionExport(productionService, logg))
			r.Get("/production/stage-events", controllers.StageEventList(stageEventService, logg))

			r.Get("/ledger/entries", controllers.LedgerList(ledgerService, logg))
			r.Get("/inventory", controllers.InventoryList(inventoryService, logg))
			r.Get("/inventory/summary", controllers.InventorySummary(inventoryService, logg))
			r.Get("/invoices", controllers.InvoiceList(invoiceService, logg))
			r.Get("/invoices/{invoiceId}", controllers.InvoiceDetail(invoiceService, logg))
			r.Get("/audit", controllers.AuditList(auditService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.WriteRateLimit(writePolicy, limiter, logg))
			r.Use(middleware.Passcode(passcode, logg))
			r.Use(middleware.Idempotency(idempotency, logg))

			r.Post("/memos", controllers.MemoCreate(memoService, logg))
			r.Post("/memos/close", controllers.MemoClose(memoService, logg))
			r.Post("/ledger/entries", controllers.LedgerCreate(ledgerService, logg))
			r.Post("/ledger/post", controllers.LedgerPost(ledgerService, logg))
			r.Post("/inventory", controllers.InventoryCreate(inventoryService, logg))
			r.Post("/sell", controllers.Sell(inventoryService, logg))
			r.Post("/invoices", controllers.InvoiceCreate(invoiceService, logg))
			r.Post("/production/stage-events", controllers.StageEventCreate(stageEventService, logg))
		})
	})

	return r
}
