package server

import (
	"context"
	"net/http"

	"edubrief/config"
	"edubrief/logger"
	custommiddleware "edubrief/middleware"
	"edubrief/rest"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	config *config.Config
	server *http.Server
}

func New(cfg *config.Config, handler *rest.Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(custommiddleware.OTelStatusMiddleware())

	rest.RegisterRoutes(e, handler)

	return &Server{
		config: cfg,
		server: &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           e,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		},
	}
}

func (s *Server) Start() error {
	logger.Logger.Info("starting HTTP server", "addr", s.config.HTTP.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Logger.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
