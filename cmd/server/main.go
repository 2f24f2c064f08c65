package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/gridcrm/gridcrm-backend/internal/api/middleware"
	"github.com/gridcrm/gridcrm-backend/internal/api/rest"
	"github.com/gridcrm/gridcrm-backend/internal/api/websocket"
	"github.com/gridcrm/gridcrm-backend/internal/cache"
	"github.com/gridcrm/gridcrm-backend/internal/config"
	"github.com/gridcrm/gridcrm-backend/internal/pkg/logger"
	"github.com/gridcrm/gridcrm-backend/internal/readers"
	"github.com/gridcrm/gridcrm-backend/internal/repository"
	"github.com/gridcrm/gridcrm-backend/internal/service"
	"github.com/gridcrm/gridcrm-backend/internal/sheets"
	"github.com/gridcrm/gridcrm-backend/internal/writers"
)

func main() {
	log := logger.StdLogger()
	log.Info("gridcrm backend starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log.Info("configuration loaded", "port", cfg.Port, "spreadsheet_id", cfg.SpreadsheetID)

	if cfg.SpreadsheetID == "" {
		log.Error("spreadsheet_id is required (GRIDCRM_SPREADSHEET_ID or config file)")
		os.Exit(1)
	}

	src, err := sheets.NewClient(ctx, cfg.SpreadsheetID, cfg.CredentialsFile, log)
	if err != nil {
		log.Error("failed to initialize sheets client", "error", err)
		os.Exit(1)
	}

	auditRepo, err := repository.NewSQLiteRepository(cfg.AuditDBPath)
	if err != nil {
		log.Error("failed to initialize audit database", "error", err)
		os.Exit(1)
	}
	defer auditRepo.Close()

	store := cache.NewStore(time.Duration(cfg.CacheTTLSec)*time.Second, nil)

	// Readers share one cache store so invalidation reaches every dataset.
	companies := readers.NewCompanies(store, src, log)
	contacts := readers.NewContacts(store, src, log)
	opportunities := readers.NewOpportunities(store, src, log)
	interactions := readers.NewInteractions(store, src, log)
	announcements := readers.NewAnnouncements(store, src, log)
	weekly := readers.NewWeekly(store, src, log)
	system := readers.NewSystem(store, src, log)

	wsHub := websocket.NewHub(ctx)
	go wsHub.Run()

	deps := writers.Deps{
		Source: src,
		Cache:  store,
		Audit:  auditRepo,
		Notify: func(dataset string) {
			if err := wsHub.BroadcastChange(dataset); err != nil {
				log.Warn("change broadcast failed", "dataset", dataset, "error", err)
			}
		},
		Log: log,
	}

	companySvc := service.NewCompanyService(companies, writers.NewCompanies(deps))
	contactSvc := service.NewContactService(contacts, companies, writers.NewContacts(deps))
	opportunitySvc := service.NewOpportunityService(opportunities, writers.NewOpportunities(deps))
	activitySvc := service.NewActivityService(
		interactions, weekly, announcements, opportunities,
		writers.NewInteractions(deps), writers.NewWeekly(deps), writers.NewAnnouncements(deps),
	)
	dashboardSvc := service.NewDashboardService(companies, contactSvc, opportunities, activitySvc)
	systemSvc := service.NewSystemService(system, store, auditRepo)

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Actor)
	router.Use(middleware.StructuredLog)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	handler := rest.NewHandler(companySvc, contactSvc, opportunitySvc, activitySvc, dashboardSvc, systemSvc)
	rest.SetupRoutes(apiRouter, handler)

	wsHandler := websocket.NewHandler(ctx, wsHub)
	router.HandleFunc("/ws/changes", wsHandler.ServeWS).Methods("GET")

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.ActorHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      c.Handler(router),
		ReadTimeout:  time.Duration(cfg.RequestTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeoutSec) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	wsHub.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("forced shutdown", "error", err)
	}
	log.Info("server exited")
}
