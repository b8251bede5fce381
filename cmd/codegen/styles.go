package main

import "github.com/charmbracelet/lipgloss"

var (
	colorOK     = lipgloss.Color("#3fb950")
	colorErr    = lipgloss.Color("#f85149")
	colorAccent = lipgloss.Color("#58a6ff")
	colorDim    = lipgloss.Color("8")
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorErr)
	valueStyle   = lipgloss.NewStyle().Foreground(colorAccent)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)
