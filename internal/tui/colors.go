package tui

// Color constants for the punchcard TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#2F4245" // Grey-teal

	// Text Colors
	ColorPrimaryText   = "#E8F0EE" // Primary text (field labels, user input, titles)
	ColorSecondaryText = "#A9BCB8" // Secondary text - muted sea-grey
	ColorDisabledText  = "#64736F" // Disabled/muted text
	ColorPlaceholder   = "#A9BCB8" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Accent elements, active borders
	ColorAccentBright = "#2DD4BF" // Highlights, running timer

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings, active rows
)
