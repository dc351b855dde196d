package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of display colors.
type Palette struct {
	Green, Yellow, Red, Blue, Purple, Aqua, Dim, Fg, Header lipgloss.Color
}

// Gruvbox dark and light palettes.
var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Aqua:   "#689d6a",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
	}
	LightPalette = Palette{
		Green:  "#79740e",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Aqua:   "#427b58",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
	}
)

// Active colors. SetDarkMode swaps them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorAqua   lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by SetDarkMode.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleAqua   lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var darkMode = true

func init() {
	applyPalette(DarkPalette)
}

// SetDarkMode selects the dark (default) or light palette.
func SetDarkMode(on bool) {
	darkMode = on
	if on {
		applyPalette(DarkPalette)
		return
	}
	applyPalette(LightPalette)
}

// DarkMode reports which palette is active.
func DarkMode() bool { return darkMode }

func applyPalette(p Palette) {
	ColorGreen, ColorYellow, ColorRed = p.Green, p.Yellow, p.Red
	ColorBlue, ColorPurple, ColorAqua = p.Blue, p.Purple, p.Aqua
	ColorDim, ColorFg, ColorHeader = p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ItemStyle returns the style used for a schedule item of the given type.
func ItemStyle(t domain.ItemType) lipgloss.Style {
	switch t {
	case domain.ItemClass:
		return StyleBlue
	case domain.ItemPractice:
		return StyleYellow
	case domain.ItemGame:
		return StyleRed
	case domain.ItemStudy:
		return StylePurple
	case domain.ItemWorkout:
		return StyleGreen
	case domain.ItemRest:
		return StyleAqua
	default:
		return StyleDim
	}
}

// ItemBadge returns a colored "● Label" marker for an item type.
func ItemBadge(t domain.ItemType, label string) string {
	return ItemStyle(t).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
