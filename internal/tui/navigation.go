// File: internal/tui/navigation.go
// Project: Terminal Velocity
// Description: Star-system navigation screen - browse connected systems, enter the scanner
// Version: 1.1.0
// Author: Joshua Ferguson
// Created: 2025-01-07

package tui

import (
	"context"

	"github.com/JoshuaAFerguson/pgnames/internal/metrics"
	"github.com/JoshuaAFerguson/pgnames/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// navigationModel holds the state for the navigation screen: the system the
// viewer is currently centred on and the systems directly reachable from it.
type navigationModel struct {
	cursor           int
	currentSystem    *models.StarSystem
	connectedSystems []*models.StarSystem
	loading          bool
	error            string
}

func newNavigationModel() navigationModel {
	return navigationModel{loading: true}
}

// systemsLoadedMsg reports the result of loadConnectedSystems.
type systemsLoadedMsg struct {
	current   *models.StarSystem
	connected []*models.StarSystem
	err       error
}

// loadConnectedSystems fetches the current system and every system it has a
// direct jump route to, so the navigation screen can list them.
func (m Model) loadConnectedSystems() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		current, err := m.systemRepo.GetSystemByID(ctx, m.currentSystemID)
		if err != nil {
			return systemsLoadedMsg{err: err}
		}

		connectedIDs, err := m.systemRepo.GetConnections(ctx, m.currentSystemID)
		if err != nil {
			return systemsLoadedMsg{err: err}
		}

		connected := make([]*models.StarSystem, 0, len(connectedIDs))
		for _, id := range connectedIDs {
			sys, err := m.systemRepo.GetSystemByID(ctx, id)
			if err != nil {
				continue
			}
			connected = append(connected, sys)
		}

		return systemsLoadedMsg{current: current, connected: connected}
	}
}

// updateNavigation handles input for the navigation screen.
//
// Key Bindings:
//   - up/k, down/j: move the cursor over the connected-systems list
//   - enter/space: jump to the selected connected system
//   - s: open the deep-space scanner
func (m Model) updateNavigation(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			m.screen = ScreenScanner
			m.scanner = newScannerModel()
			return m, nil

		case "up", "k":
			if m.navigation.cursor > 0 {
				m.navigation.cursor--
			}
			return m, nil

		case "down", "j":
			if m.navigation.cursor < len(m.navigation.connectedSystems)-1 {
				m.navigation.cursor++
			}
			return m, nil

		case "enter", " ":
			if len(m.navigation.connectedSystems) == 0 || m.navigation.cursor >= len(m.navigation.connectedSystems) {
				return m, nil
			}
			target := m.navigation.connectedSystems[m.navigation.cursor]
			m.currentSystemID = target.ID
			m.navigation.cursor = 0
			m.navigation.loading = true
			metrics.Global().IncrementJumps()
			return m, m.loadConnectedSystems()
		}
	}
	return m, nil
}

// viewNavigation renders the navigation screen.
func (m Model) viewNavigation() string {
	if m.navigation.loading {
		return loadingView()
	}

	header := titleStyle.Render("NAVIGATION")
	if m.navigation.currentSystem != nil {
		header += "\n" + subtitleStyle.Render("Current system: "+m.navigation.currentSystem.Name)
	}
	s := header + "\n\n"

	if len(m.navigation.connectedSystems) == 0 {
		s += helpStyle.Render("No jump routes from this system.") + "\n\n"
	} else {
		for i, sys := range m.navigation.connectedSystems {
			line := sys.Name
			if sys.Designation != "" {
				line += " (" + string(sys.Designation) + ")"
			}
			if i == m.navigation.cursor {
				s += selectedMenuItemStyle.Render("> "+line) + "\n"
			} else {
				s += menuItemStyle.Render("  "+line) + "\n"
			}
		}
		s += "\n"
	}

	s += renderFooter("Up/Down: Select | Enter: Jump | S: Scanner | Ctrl+C: Quit")
	return s
}
