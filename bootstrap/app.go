package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"edubrief/config"
	"edubrief/driver/cms"
	"edubrief/driver/mail"
	"edubrief/driver/verify"
	"edubrief/gateway"
	"edubrief/logger"
	"edubrief/rest"
	"edubrief/server"
	"edubrief/usecase"
	appOtel "edubrief/utils/otel"
)

// App holds all components of the backend service.
type App struct {
	httpServer   *server.Server
	otelShutdown appOtel.ShutdownFunc
}

// Run initializes all components and starts the service.
// It blocks until ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	// ── OpenTelemetry ──
	otelCfg := appOtel.ConfigFromEnv()
	otelShutdown, err := appOtel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// ── Logger ──
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("Starting edubrief-backend",
		"service", otelCfg.ServiceName,
		"otel_enabled", otelCfg.Enabled,
	)

	// ── Load config ──
	appCfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return err
	}

	// ── Drivers (infrastructure layer) ──
	searchDriver, err := initSearchDriver(appCfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize search index client", "err", err)
		return err
	}
	cmsDriver := cms.NewClient(appCfg.CMS.GraphQLURL, appCfg.CMS.Timeout)
	mailDriver := mail.NewClient(appCfg.Mail.APIKey)
	verifyDriver := verify.NewClient(appCfg.Turnstile.SecretKey)

	// ── Gateways (anti-corruption layer) ──
	searchIndex := gateway.NewSearchIndexGateway(searchDriver)
	content := gateway.NewContentGateway(cmsDriver)
	mailer := gateway.NewMailGateway(mailDriver, appCfg.Mail.FromEmail, "EduBrief")
	verifier := gateway.NewVerifyGateway(verifyDriver)

	// ── Use cases (application layer) ──
	handler := &rest.Handler{
		Search:    usecase.NewSearchCollectionsUsecase(searchIndex),
		Catalog:   usecase.NewListCoursesUsecase(content),
		Content:   usecase.NewContentUsecase(content),
		Contact:   usecase.NewSubmitContactUsecase(verifier, mailer, appCfg.Mail.ContactEmail),
		Subscribe: usecase.NewSubscribeNewsletterUsecase(mailer, appCfg.Mail.ListID),
	}

	// ── Server ──
	app := &App{
		httpServer:   server.New(appCfg, handler),
		otelShutdown: otelShutdown,
	}

	go func() {
		if err := app.httpServer.Start(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("http", "err", err)
		}
	}()

	// ── Wait for shutdown signal ──
	<-ctx.Done()
	app.shutdown()
	return nil
}

// shutdown performs graceful shutdown of all components.
func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown error", "err", err)
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer otelCancel()
	if err := a.otelShutdown(otelCtx); err != nil {
		fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
	}
}
