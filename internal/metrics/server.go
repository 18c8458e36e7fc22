// File: internal/metrics/server.go
// Project: Terminal Velocity
// Description: HTTP server for metrics endpoint
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-14

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/JoshuaAFerguson/pgnames/internal/logger"
)

var log = logger.WithComponent("Metrics")

// Server provides an HTTP endpoint for Prometheus metrics.
type Server struct {
	addr       string
	collector  *MetricsCollector
	httpServer *http.Server
	wg         sync.WaitGroup
}

// NewServer creates a new metrics server.
func NewServer(addr string, collector *MetricsCollector) *Server {
	return &Server{
		addr:      addr,
		collector: collector,
	}
}

// Start begins serving metrics on the configured address.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/stats", s.handleStats)

	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Info("Starting metrics server on %s", s.addr)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	log.Info("Shutting down metrics server")
	err := s.httpServer.Shutdown(ctx)
	s.wg.Wait()
	return err
}

// handleMetrics serves Prometheus-formatted metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	fmt.Fprint(w, s.collector.PrometheusFormat())
}

// handleHealth serves a minimal liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.collector.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","uptime_seconds":%.0f,"active_connections":%d}`,
		snap.Uptime.Seconds(), snap.ActiveConnections)
}

// handleStats serves a human-readable plain-text summary.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap := s.collector.Snapshot()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Terminal Velocity navigation metrics\n")
	fmt.Fprintf(w, "Uptime:              %s\n", snap.Uptime.Round(time.Second))
	fmt.Fprintf(w, "Connections total:   %d\n", snap.TotalConnections)
	fmt.Fprintf(w, "Connections active:  %d\n", snap.ActiveConnections)
	fmt.Fprintf(w, "Connections failed:  %d\n", snap.FailedConnections)
	fmt.Fprintf(w, "Peak connections:    %d\n", snap.PeakConnections)
	fmt.Fprintf(w, "Jumps executed:      %d\n", snap.JumpsExecuted)
	fmt.Fprintf(w, "Scanner resolutions: %d\n", snap.ScannerResolutions)
	fmt.Fprintf(w, "Scanner failures:    %d\n", snap.ScannerFailures)
	fmt.Fprintf(w, "Database queries:    %d\n", snap.DatabaseQueries)
	fmt.Fprintf(w, "Database errors:     %d\n", snap.DatabaseErrors)
}
