// File: internal/tui/model.go
// Project: Terminal Velocity
// Description: Core TUI model with BubbleTea integration, screen routing, and state management
// Version: 1.3.0
// Author: Joshua Ferguson
// Created: 2025-01-07
//
// This file implements the main TUI model for Terminal Velocity using the BubbleTea framework.
// It follows the Model-View-Update (MVU) architecture pattern where:
//   - Model: Holds all application state (current system, screen models)
//   - Update: Handles messages and returns updated model + commands
//   - View: Renders the current state to the terminal
//
// Key architectural patterns:
//   - Screen-based routing: Each screen has its own model and update/view functions
//   - Async operations: Long-running operations return tea.Cmd for non-blocking execution
//   - Message passing: Custom message types communicate async operation results
//   - Repository pattern: All database access goes through typed repositories
//
// Thread Safety:
//   - The BubbleTea Update() function is called sequentially, so no locking is needed in TUI code
//   - Use context.Background() for database operations in tea.Cmd functions
//
// Screen Transitions:
//   - Screens change via m.screen = ScreenName in Update()
//   - Screen-specific state is preserved in sub-models (e.g., m.navigation, m.scanner)

package tui

import (
	"github.com/JoshuaAFerguson/pgnames/internal/database"
	"github.com/google/uuid"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies which screen is currently active.
type Screen int

const (
	ScreenNavigation Screen = iota
	ScreenScanner
)

// Model is the root BubbleTea model. It holds the repositories needed to
// resolve star systems and the state for each screen reachable from the
// navigation view.
type Model struct {
	screen Screen

	username        string
	currentSystemID uuid.UUID

	systemRepo *database.SystemRepository

	width, height int

	navigation navigationModel
	scanner    scannerModel

	err error
}

// NewModel constructs the root model, starting on the navigation screen
// centred on startSystemID.
func NewModel(username string, systemRepo *database.SystemRepository, startSystemID uuid.UUID) Model {
	return Model{
		screen:          ScreenNavigation,
		username:        username,
		currentSystemID: startSystemID,
		systemRepo:      systemRepo,
		navigation:      newNavigationModel(),
	}
}

// Init kicks off loading the starting system and its connections.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.ClearScreen, m.loadConnectedSystems())
}

// Update dispatches messages to the active screen's handler.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case systemsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.navigation.currentSystem = msg.current
		m.navigation.connectedSystems = msg.connected
		m.navigation.loading = false
		return m, nil
	}

	switch m.screen {
	case ScreenScanner:
		return m.updateScanner(msg)
	default:
		return m.updateNavigation(msg)
	}
}

// View renders the active screen.
func (m Model) View() string {
	if m.err != nil {
		return errorView(m.err.Error())
	}
	switch m.screen {
	case ScreenScanner:
		return m.viewScanner()
	default:
		return m.viewNavigation()
	}
}
