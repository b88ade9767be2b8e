// Command fakebot запускает Telegram-бота, генерирующего фиктивных людей по команде /fake.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/tempizhere/fakebot/internal/app"
	"github.com/tempizhere/fakebot/internal/bot"
	"github.com/tempizhere/fakebot/internal/config"
	"github.com/tempizhere/fakebot/internal/formatter"
	"github.com/tempizhere/fakebot/internal/generator"
	fakegrpc "github.com/tempizhere/fakebot/internal/grpc"
	"github.com/tempizhere/fakebot/internal/i18n"
	"github.com/tempizhere/fakebot/internal/log"
	"github.com/tempizhere/fakebot/internal/middleware"
	"github.com/tempizhere/fakebot/internal/models"
	"github.com/tempizhere/fakebot/internal/repository"
	"github.com/tempizhere/fakebot/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("fakebot stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = tgbotapi.SetLogger(bot.NewBotLogger(logger)); err != nil {
		return fmt.Errorf("set telegram logger: %w", err)
	}
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("telegram bot api: %w", err)
	}
	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))

	db, err := app.NewDB(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() { _ = db.Close() }()
	}
	repo, pinger, err := newRepository(db, logger)
	if err != nil {
		return err
	}

	tr, err := i18n.NewTranslator(models.DefaultLocale, logger)
	if err != nil {
		return err
	}
	subnet, err := middleware.ParseTrustedSubnet(cfg.TrustedSubnet)
	if err != nil {
		return err
	}

	svc := service.NewService(generator.New(), formatter.New(), repo, logger)
	handler := bot.New(svc, bot.NewTelegramSender(api), tr, logger)
	dispatcher := bot.NewDispatcher(ctx, handler, cfg.Workers, cfg.RequestTimeout, logger)
	defer dispatcher.Stop()

	errCh := make(chan error, 3)

	httpServer := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           app.NewRouter(app.NewApp(svc, dispatcher, pinger, logger), subnet, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("address", cfg.RunAddr))
		if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
	}()

	var grpcServer *grpc.Server
	if cfg.GRPCAddr != "" {
		lis, lisErr := net.Listen("tcp", cfg.GRPCAddr)
		if lisErr != nil {
			return fmt.Errorf("grpc listen %s: %w", cfg.GRPCAddr, lisErr)
		}
		grpcServer = fakegrpc.NewGRPCServer(fakegrpc.NewServer(svc, logger), subnet, logger)
		go func() {
			logger.Info("Starting gRPC server", zap.String("address", cfg.GRPCAddr))
			if serveErr := grpcServer.Serve(lis); serveErr != nil {
				errCh <- fmt.Errorf("grpc server: %w", serveErr)
			}
		}()
	}

	if regErr := bot.Register(ctx, api, cfg.WebhookURL, logger); regErr != nil {
		errCh <- regErr
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-errCh:
		logger.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := httpServer.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("HTTP shutdown", zap.Error(serr))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	return err
}

// newRepository выбирает хранилище статистики: PostgreSQL при наличии DSN, иначе память
func newRepository(db *sql.DB, logger *zap.Logger) (repository.UsageRepository, app.Pinger, error) {
	if db == nil {
		logger.Info("Using in-memory usage stats")
		return repository.NewMemoryRepository(), nil, nil
	}
	repo, err := repository.NewPostgresRepository(db, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Using PostgreSQL usage stats")
	return repo, db, nil
}
