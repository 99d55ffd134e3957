package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"resort/config"
	"resort/shared/constant"
	"resort/transport/http/middleware"
	"resort/transport/http/response"
	"resort/transport/http/router"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	State      ServerState
	mux        chi.Router
	server     *http.Server
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:    net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler: h.mux,
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the server run behind serverless platforms that hand us
// one request at a time instead of owning the listener.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setup()
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.Middleware.Recover)
	h.mux.Use(h.Middleware.Tracing)
	h.mux.Use(h.Middleware.RateLimit())

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/", h.HealthCheck)

	h.Router.SetupRoutes(h.mux)

	h.State = ServerStateReady
}

// HealthCheck performs its nominal function
// @Summary Health check
// @Description This endpoint checks whether the server is up and serving
// @Tags service
// @Produce json
// @Success 200 {object} response.Envelope
// @Router / [get]
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State != ServerStateReady {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageOK)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown(shutdownConfig.CleanupPeriodSeconds)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	h.shutdown(shutdownConfig.CleanupPeriodSeconds)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(cleanupSeconds int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cleanupSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}
}
