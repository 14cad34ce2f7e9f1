package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/catalog/internal/audit"
	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	auditRepo "github.com/mrlokans/catalog/internal/database/audit"
	"github.com/mrlokans/catalog/internal/database/books"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT or SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Requests are drained; flush whatever they left behind.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// Build wires the catalog stack on top of an open database and returns the
// router, the audit service (nil when disabled) and the cleanup scheduler
// (nil when disabled).
func Build(db *database.Database, cfg *config.Config, version string) (*gin.Engine, *audit.Service, *scheduler.AuditCleanupScheduler) {
	var opts []catalog.Option
	routerCfg := http_controllers.RouterConfig{
		Database: db,
		Version:  version,
	}

	var auditService *audit.Service
	var cleanup *scheduler.AuditCleanupScheduler
	if cfg.Audit.Enabled {
		auditService = audit.NewService(auditRepo.NewRepository(db.DB))
		opts = append(opts, catalog.WithAudit(auditService))
		routerCfg.AuditReader = auditService
		cleanup = scheduler.NewAuditCleanupScheduler(auditService, cfg.Audit.CleanupSchedule, cfg.Audit.RetentionDays)
	} else {
		log.Printf("Audit log: disabled")
	}

	routerCfg.Catalog = catalog.NewService(books.NewRepository(db.DB), opts...)
	return http_controllers.NewRouter(routerCfg), auditService, cleanup
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Catalog v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	// Initialize database
	db, err := database.Open(database.Options{
		Driver:       cfg.Database.Driver,
		Path:         cfg.Database.Path,
		DSN:          cfg.Database.DSN,
		LogLevel:     cfg.Database.LogLevel,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	router, auditService, cleanup := Build(db, cfg, version)

	if cleanup != nil {
		if err := cleanup.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start audit cleanup scheduler: %v", err)
		}
	}

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if cleanup != nil {
			cleanup.Stop()
		}
		if auditService != nil {
			done := make(chan struct{})
			go func() {
				auditService.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-ctx.Done():
				log.Printf("[AUDIT] Shutdown timeout reached with audit writes pending")
			}
		}
	}

	Serve(router, cfg, onShutdown)
}
