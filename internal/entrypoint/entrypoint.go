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

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/demo"
	http_controllers "github.com/mrlokans/catalog/internal/http"
	"github.com/mrlokans/catalog/internal/importers"
	"github.com/mrlokans/catalog/internal/scheduler"
	"github.com/mrlokans/catalog/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// OpenDatabase opens the catalog database configured in cfg.
func OpenDatabase(cfg *config.Config) (*database.Database, error) {
	return database.Open(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
}

// Seed loads the fixture file at path into the configured database.
func Seed(ctx context.Context, cfg *config.Config, path string) (importers.ImportResult, error) {
	fixture, err := importers.LoadFile(path)
	if err != nil {
		return importers.ImportResult{}, err
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		return importers.ImportResult{}, err
	}
	defer db.Close()

	return importers.NewImporter(db).Import(ctx, fixture)
}

// Stats returns the dashboard counts of the configured database.
func Stats(ctx context.Context, cfg *config.Config) (services.Dashboard, error) {
	db, err := OpenDatabase(cfg)
	if err != nil {
		return services.Dashboard{}, err
	}
	defer db.Close()

	return services.NewCatalogService(db, cfg.Catalog.PageSize).Dashboard(ctx)
}

// NewRouter wires the catalog service and stores into the HTTP router.
func NewRouter(cfg *config.Config, db *database.Database, version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:            services.NewCatalogService(db, cfg.Catalog.PageSize),
		DeleteStore:        db,
		Health:             db,
		TemplatesPath:      cfg.UI.TemplatesPath,
		StaticPath:         cfg.UI.StaticPath,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		DemoMiddleware:     demo.NewMiddleware(cfg.Demo.Enabled),
		Version:            version,
	})
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Catalog v%s", version)

	db, err := OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	var overdueScheduler *scheduler.OverdueReportScheduler
	if cfg.OverdueReport.Enabled {
		overdueScheduler = scheduler.NewOverdueReportScheduler(db, cfg.OverdueReport.Schedule)
		if err := overdueScheduler.Start(schedulerCtx); err != nil {
			log.Fatalf("Failed to start overdue report scheduler: %v", err)
		}
	} else {
		log.Printf("Overdue report scheduler: disabled")
	}

	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
	}

	if len(cfg.CORS.AllowedOrigins) > 0 {
		log.Printf("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	router := NewRouter(cfg, db, version)

	onShutdown := func(ctx context.Context) {
		if overdueScheduler != nil {
			overdueScheduler.Stop()
		}
		schedulerCancel()
	}

	Serve(router, cfg, onShutdown)

	if err := db.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
