package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/theoremus-urban-solutions/mvg-incidents/config"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
	"github.com/theoremus-urban-solutions/mvg-incidents/utils"
)

// Server serves the incident feed over HTTP.
type Server struct {
	cfg        config.AppConfig
	client     *mvg.Client
	loc        *time.Location
	log        zerolog.Logger
	httpServer *http.Server
}

// New builds a server from the configuration. It fails when the
// configured timezone is unknown.
func New(cfg config.AppConfig, logger zerolog.Logger) (*Server, error) {
	loc, err := utils.LoadLocation(cfg.Output.Timezone)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		client: mvg.NewClient(cfg.API.URL, cfg.API.Timeout()),
		loc:    loc,
		log:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/incidents.json", s.handleIncidentsJSON)
	mux.HandleFunc("/api/siri/situation-exchange.json", s.handleSituationExchangeJSON)
	mux.HandleFunc("/api/siri/situation-exchange.xml", s.handleSituationExchangeXML)
	mux.HandleFunc("/api/gtfsrt/service-alerts.pb", s.handleServiceAlertsPB)
	mux.HandleFunc("/api/gtfsrt/service-alerts.json", s.handleServiceAlertsJSON)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler exposes the route table, primarily for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start begins listening in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal().Err(err).Msg("server error")
		}
	}()
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
}

// WaitForShutdown blocks until SIGINT or SIGTERM, then drains in-flight
// requests before returning.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.Error().Err(err).Msg("server shutdown error")
		return
	}
	s.log.Info().Msg("server shut down")
}
