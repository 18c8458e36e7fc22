// File: internal/tui/scanner.go
// Project: Terminal Velocity
// Description: Deep-space scanner screen - resolves typed system designations to coordinates
// Version: 1.0.0
// Author: Joshua Ferguson
// Created: 2025-01-07
//
// The scanner screen lets a player type a full procedural system
// designation (e.g. "Dryau Aowsy AB-C h1-23") and resolves it to a
// galactic coordinate and error radius via internal/pgnames.Codec,
// without needing that system to already exist in the database.

package tui

import (
	"fmt"
	"strings"

	"github.com/JoshuaAFerguson/pgnames/internal/metrics"
	"github.com/JoshuaAFerguson/pgnames/internal/pgnames"
	tea "github.com/charmbracelet/bubbletea"
)

// scannerModel contains the state for the deep-space scanner screen.
type scannerModel struct {
	input  string  // Designation typed so far
	result string  // Last successful resolution, formatted for display
	err    string  // Last resolution error, formatted for display
	codec  *pgnames.Codec
}

// newScannerModel creates and initializes a new scanner screen model.
// The codec is built once per screen entry; NewCodec only fails on an
// internal catalogue invariant, never on player input.
func newScannerModel() scannerModel {
	codec, err := pgnames.NewCodec()
	m := scannerModel{codec: codec}
	if err != nil {
		m.err = fmt.Sprintf("scanner offline: %v", err)
	}
	return m
}

// updateScanner handles input and state updates for the scanner screen.
//
// Key Bindings:
//   - esc/backspace: return to navigation (or delete a character if input is non-empty)
//   - ctrl+u: clear input
//   - enter: resolve the typed designation
//   - any other printable rune: append to input
func (m Model) updateScanner(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.screen = ScreenNavigation
			return m, nil

		case "backspace":
			if len(m.scanner.input) > 0 {
				m.scanner.input = m.scanner.input[:len(m.scanner.input)-1]
				return m, nil
			}
			m.screen = ScreenNavigation
			return m, nil

		case "ctrl+u":
			m.scanner.input = ""
			m.scanner.result = ""
			m.scanner.err = ""
			return m, nil

		case "enter":
			m.scanner = m.scanner.resolve()
			return m, nil

		default:
			if len(msg.String()) == 1 {
				char := msg.String()[0]
				if char >= 32 && char < 127 && len(m.scanner.input) < 80 {
					m.scanner.input += msg.String()
				}
			}
			return m, nil
		}
	}

	return m, nil
}

// resolve runs the typed designation through the codec and records
// either a formatted result or a formatted error.
func (m scannerModel) resolve() scannerModel {
	name := strings.TrimSpace(m.input)
	if name == "" {
		m.err = "enter a system designation first"
		m.result = ""
		return m
	}
	if m.codec == nil {
		m.err = "scanner offline"
		return m
	}

	timer := metrics.StartTimer("scanner_resolve")
	point, radius, err := m.codec.CoordsOf(name)
	timer.Stop()
	if err != nil {
		metrics.Global().IncrementScannerFailures()
		m.err = fmt.Sprintf("could not resolve %q: %v", name, err)
		m.result = ""
		return m
	}

	metrics.Global().IncrementScannerResolutions()
	m.result = fmt.Sprintf("%s -> (%.1f, %.1f, %.1f) Ly, +/- %.1f Ly", name, point.X, point.Y, point.Z, radius)
	m.err = ""
	return m
}

// viewScanner renders the deep-space scanner screen.
func (m Model) viewScanner() string {
	s := titleStyle.Render("📡 DEEP-SPACE SCANNER") + "\n\n"
	s += helpStyle.Render("Type a full system designation and press Enter to resolve it.") + "\n\n"

	s += "> " + m.scanner.input + "█\n\n"

	if m.scanner.result != "" {
		s += successStyle.Render(m.scanner.result) + "\n\n"
	}
	if m.scanner.err != "" {
		s += errorStyle.Render(m.scanner.err) + "\n\n"
	}

	s += renderFooter("Enter: Resolve | Ctrl+U: Clear | Esc: Back")
	return s
}
