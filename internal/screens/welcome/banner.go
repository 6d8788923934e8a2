package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerwiz/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ███████╗███████╗██████╗ ██╗    ██╗██╗███████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██║    ██║██║╚══███╔╝
 ██║     ███████║██████╔╝█████╗  █████╗  ██████╔╝██║ █╗ ██║██║  ███╔╝
 ██║     ██╔══██║██╔══██╗██╔══╝  ██╔══╝  ██╔══██╗██║███╗██║██║ ███╔╝
 ╚██████╗██║  ██║██║  ██║███████╗███████╗██║  ██║╚███╔███╔╝██║███████╗
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝ ╚══╝╚══╝ ╚═╝╚══════╝`

const bannerCompact = "C A R E E R W I Z"

// RenderBanner returns the banner styled in the primary color, or a compact
// fallback for terminals narrower than 72 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 72 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
