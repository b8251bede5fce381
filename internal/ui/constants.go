package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconOpen     = "🖼"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 700
)

// Preview styling
var (
	PreviewBackground = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	PlaceholderColor  = color.RGBA{R: 102, G: 102, B: 102, A: 255}
)

// PlaceholderTextSize is the point size of the preview placeholder text
const PlaceholderTextSize float32 = 12

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)
