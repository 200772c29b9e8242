package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/armchain/internal/chain"
)

// Style sets the colours not carried by the joints themselves.
type Style struct {
	Background color.RGBA
	Link       color.RGBA
	LinkWidth  float64
}

func DefaultStyle() Style {
	return Style{Background: chain.Black, Link: chain.Gray, LinkWidth: 1}
}

// ChainToSVG renders one frame of joints as an SVG document: links first,
// circles on top, in chain order.
func ChainToSVG(joints []chain.Joint, width, height int, style Style) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(style.Background)))

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.1f">
`, hex(style.Link), style.LinkWidth))
	for _, j := range joints {
		if !j.HasParent {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, j.Parent.X, j.Parent.Y, j.Position.X, j.Position.Y))
	}
	sb.WriteString("</g>\n<g>\n")

	for _, j := range joints {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>
`, j.Position.X, j.Position.Y, j.Radius, hex(j.Color)))
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
