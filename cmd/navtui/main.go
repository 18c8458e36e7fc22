// File: cmd/navtui/main.go
// Project: Terminal Velocity
// Description: Interactive navigation + deep-space scanner terminal front-end
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/JoshuaAFerguson/pgnames/internal/database"
	"github.com/JoshuaAFerguson/pgnames/internal/metrics"
	"github.com/JoshuaAFerguson/pgnames/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func main() {
	var (
		username    = flag.String("username", "pilot", "Display name shown on the navigation screen")
		startSystem = flag.String("system", "", "Designation or name of the system to start at (defaults to the first system found)")
		dbHost      = flag.String("db-host", "localhost", "Database host")
		dbPort      = flag.Int("db-port", 5432, "Database port")
		dbUser      = flag.String("db-user", "terminal_velocity", "Database user")
		dbPassword  = flag.String("db-password", "", "Database password")
		dbName      = flag.String("db-name", "terminal_velocity", "Database name")
		metricsAddr = flag.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9100)")
	)
	flag.Parse()

	cfg := &database.Config{
		Host:     *dbHost,
		Port:     *dbPort,
		User:     *dbUser,
		Password: *dbPassword,
		Database: *dbName,
		SSLMode:  "disable",
	}
	db, err := database.NewDB(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	systemRepo := database.NewSystemRepository(db)

	if *metricsAddr != "" {
		srv := metrics.NewServer(*metricsAddr, metrics.Global())
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start metrics server: %v\n", err)
			os.Exit(1)
		}
		defer srv.Stop(context.Background())
	}

	startID, err := resolveStartSystem(systemRepo, *startSystem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	metrics.Global().IncrementConnections()
	metrics.Global().IncrementActiveConnections()
	defer metrics.Global().DecrementActiveConnections()

	model := tui.NewModel(*username, systemRepo, startID)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}

// resolveStartSystem finds the system to open the navigation screen on: the
// one named or designated by -system, or the first system returned by
// ListSystems when -system is empty.
func resolveStartSystem(systemRepo *database.SystemRepository, query string) (uuid.UUID, error) {
	ctx := context.Background()

	if query != "" {
		if sys, err := systemRepo.GetSystemByDesignation(ctx, query); err == nil {
			return sys.ID, nil
		}
		sys, err := systemRepo.GetSystemByName(ctx, query)
		if err != nil {
			return uuid.Nil, fmt.Errorf("could not find system %q: %w", query, err)
		}
		return sys.ID, nil
	}

	systems, err := systemRepo.ListSystems(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list systems: %w", err)
	}
	if len(systems) == 0 {
		return uuid.Nil, fmt.Errorf("no systems in database; run genmap -save first")
	}
	return systems[0].ID, nil
}
