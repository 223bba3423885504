package config

// ANSI palette indexes for log levels, as understood by lipgloss.Color.
const (
	LogErrorColor = "1"
	LogWarnColor  = "3"
	LogInfoColor  = "2"
)

// Color constants for logger prefixes
const (
	ColorGreen   = "2"
	ColorBlue    = "4"
	ColorMagenta = "5"
	ColorCyan    = "6"
)
