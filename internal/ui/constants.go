package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Layout sizing
const (
	URLEntryRows = 6
	LogoSize     = 32

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 480
)

// MaxLogLines bounds the log view; older lines are dropped
const MaxLogLines = 500
