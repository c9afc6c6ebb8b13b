package server

import (
	"fmt"
	"log"
	"net/http"

	"BitKV/internal/platform/config"
	"BitKV/internal/platform/server/handler/admin"
	"BitKV/internal/platform/server/handler/dbentry"
	"BitKV/internal/platform/server/handler/health"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	httpAddr string
	engine   *chi.Mux
}

func NewServer(cfg config.Config,
	entryHandler *dbentry.DbEntryHandler,
	adminHandler *admin.AdminHandler) Server {
	url := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := Server{
		engine:   chi.NewRouter(),
		httpAddr: url,
	}
	srv.engine.Use(middleware.Logger)
	srv.registerRoutes(entryHandler, adminHandler)
	return srv
}

func (s *Server) Run() error {
	log.Println("Server Running on:", s.httpAddr)
	return http.ListenAndServe(s.httpAddr, s.engine)
}

func (s *Server) registerRoutes(entryHandler *dbentry.DbEntryHandler, adminHandler *admin.AdminHandler) {
	s.engine.Get("/health", health.CheckHandler)
	s.engine.Get("/db", entryHandler.ListKeys)
	s.engine.Get("/db/{key}", entryHandler.GetEntry)
	s.engine.Post("/db/{key}", entryHandler.SaveEntry)
	s.engine.Delete("/db/{key}", entryHandler.DeleteEntry)
	s.engine.Post("/admin/merge", adminHandler.MergeSegments)
	s.engine.Get("/admin/stats", adminHandler.EngineStats)
}
