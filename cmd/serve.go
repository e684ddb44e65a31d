package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/RecipeBook/pkg/auth"
	"droscher.com/RecipeBook/pkg/media"
	"droscher.com/RecipeBook/pkg/server"
)

const (
	timeout     = 5 * time.Second
	serviceName = "recipebook.v1.RecipeBook"
)

type ServeCmd struct {
	ConfigFile string `default:".RecipeBook.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(cliCtx *Context) error {
	logConfig := zap.NewProductionConfig()
	if cliCtx.Debug {
		logConfig = zap.NewDevelopmentConfig()
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, repo, err := openRepository(s.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := media.NewStore(ctx, conf.Media, logger)
	if err != nil {
		logger.Error("error opening media store", zap.Error(err))

		return err
	}

	authManager := auth.NewAuthManager(conf, repo, logger)
	recipeServer := server.NewRecipeServer(repo, repo, repo, repo, store, conf.Media, logger)

	mux := http.NewServeMux()
	mux.Handle("/", recipeServer.Routes(authManager.Authenticate, conf.Server.LoginURL, server.NewMetrics()))

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(serviceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- svr.ListenAndServe()
	}()

	logger.Info("server listening", zap.String("address", address), zap.String("media", conf.Media.Backend))

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return svr.Shutdown(shutdownCtx)
}

func configureCORS(handler http.Handler, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"origin",
			"referer",
			"user-agent",
			"x-request-id",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"location",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
