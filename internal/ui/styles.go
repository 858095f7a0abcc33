package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Verdict band styles, one per score bucket
	Solid lipgloss.Style
	Soft  lipgloss.Style
	Risk  lipgloss.Style
	Fog   lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	FlagType  lipgloss.Style
	Evidence  lipgloss.Style
	Separator lipgloss.Style
	Success   lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconClean string
	IconFlag  string
	IconFog   string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Verdict bands
		s.Solid = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))          // Green
		s.Soft = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // Yellow
		s.Risk = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))            // Red
		s.Fog = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")) // Magenta bold

		// Structural styles
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.FlagType = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))           // Gray
		s.Evidence = lipgloss.NewStyle().Underline(true)
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Gray
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // Green

		// Unicode icons
		s.IconClean = "✓" // check mark
		s.IconFlag = "⚠"  // warning sign
		s.IconFog = "✗"   // cross mark
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Solid = lipgloss.NewStyle()
		s.Soft = lipgloss.NewStyle()
		s.Risk = lipgloss.NewStyle()
		s.Fog = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.FlagType = lipgloss.NewStyle()
		s.Evidence = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconClean = "OK:"
		s.IconFlag = "WARN:"
		s.IconFog = "FLAG:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// ScoreStyle returns the band style for a sentence or mean score. The
// buckets match the verdict labels.
func (s *Styles) ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score <= 25:
		return s.Solid
	case score <= 50:
		return s.Soft
	case score <= 75:
		return s.Risk
	default:
		return s.Fog
	}
}

// ScoreIcon returns the icon for a sentence score.
func (s *Styles) ScoreIcon(score float64) string {
	switch {
	case score <= 25:
		return s.IconClean
	case score <= 50:
		return s.IconFlag
	default:
		return s.IconFog
	}
}
