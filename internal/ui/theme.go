package ui

import "os"

// Brand colors.
const (
	ColorPrimary   = "#68A063"
	ColorSecondary = "#3C873A"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorMuted     = "#6B7280"
)

// ThemeColors holds the hex colors used by styled components.
type ThemeColors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme controls how UI components are styled.
type Theme struct {
	NoColor bool
	Colors  ThemeColors
}

// NewTheme returns the default theme. Color is disabled when the NO_COLOR
// environment variable is set to any non-empty value.
func NewTheme() *Theme {
	return &Theme{
		NoColor: os.Getenv("NO_COLOR") != "",
		Colors: ThemeColors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
}
