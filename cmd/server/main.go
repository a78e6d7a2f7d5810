package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/mealpoll/internal/adapters/handler/http"
	"github.com/vncsmyrnk/mealpoll/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/mealpoll/internal/config"
	"github.com/vncsmyrnk/mealpoll/internal/core/domain"
	"github.com/vncsmyrnk/mealpoll/internal/core/services"
	"github.com/vncsmyrnk/mealpoll/internal/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		logger.Fatal("invalid database driver", zap.Error(err))
	}

	if err := sqlstore.Migrate(dialect, cfg.Database.URL); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlstore.Open(ctx, dialect, cfg.Database.URL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	// Initialize Repositories
	configRepo := sqlstore.NewPollConfigRepository(db, dialect)
	voteRepo := sqlstore.NewVoteRepository(db, dialect)
	suggestionRepo := sqlstore.NewSuggestionRepository(db, dialect)

	seedCtx, cancelSeed := context.WithTimeout(ctx, 10*time.Second)
	err = configRepo.Seed(seedCtx, domain.DefaultPollConfig())
	cancelSeed()
	if err != nil {
		logger.Fatal("seeding poll config failed", zap.Error(err))
	}

	// Initialize Services
	pollService := services.NewPollService(configRepo, voteRepo, suggestionRepo, cfg.Poll.RecentSuggestions, nil)
	voteService := services.NewVoteService(configRepo, voteRepo, nil)
	suggestionService := services.NewSuggestionService(suggestionRepo, nil)
	adminService := services.NewAdminService(configRepo)

	if cfg.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD is not set, admin endpoints are disabled")
	}

	handler := http.NewHandler(http.Handlers{
		Poll:       http.NewPollHandler(pollService, logger),
		Vote:       http.NewVoteHandler(voteService, logger),
		Suggestion: http.NewSuggestionHandler(suggestionService, logger),
		Admin:      http.NewAdminHandler(adminService, cfg.Admin.Password, logger),
		Static:     http.NewStaticHandler(cfg.HTTP.StaticDir, logger),
	}, logger)
	server := &stdhttp.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running",
			zap.String("addr", "http://"+server.Addr),
			zap.String("database", string(dialect)),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
