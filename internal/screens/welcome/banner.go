package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soilsense/internal/ui/theme"
)

const bannerArt = `
 ███████╗ ██████╗ ██╗██╗     ███████╗███████╗███╗   ██╗███████╗███████╗
 ██╔════╝██╔═══██╗██║██║     ██╔════╝██╔════╝████╗  ██║██╔════╝██╔════╝
 ███████╗██║   ██║██║██║     ███████╗█████╗  ██╔██╗ ██║███████╗█████╗
 ╚════██║██║   ██║██║██║     ╚════██║██╔══╝  ██║╚██╗██║╚════██║██╔══╝
 ███████║╚██████╔╝██║███████╗███████║███████╗██║ ╚████║███████║███████╗
 ╚══════╝ ╚═════╝ ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═══╝╚══════╝╚══════╝`

const bannerCompact = "S O I L S E N S E"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 73

// RenderBanner returns the SOILSENSE banner in the primary color, or a
// compact one-liner on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
