package core

// Color represents a foreground color for a screen cell.
// Drivers map it to their own styling (lipgloss, tcell).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
)
