package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/yllada/nordvpn-tray/common"
)

// Glyph is the symbol drawn inside a generated tray badge.
type Glyph int

const (
	GlyphNone Glyph = iota
	GlyphDot
	GlyphRing
	GlyphArc
	GlyphDash
)

// BadgeStyle defines a generated round tray icon.
type BadgeStyle struct {
	Size   int
	Fill   color.RGBA
	Border color.RGBA
	Symbol color.RGBA
	Glyph  Glyph
}

var badgeStyles = map[common.ConnectionState]BadgeStyle{
	common.StateConnected: {
		Fill:   color.RGBA{66, 103, 255, 255},
		Border: color.RGBA{40, 70, 200, 255},
		Symbol: color.RGBA{255, 255, 255, 255},
		Glyph:  GlyphDot,
	},
	common.StateDisconnected: {
		Fill:   color.RGBA{117, 117, 117, 255},
		Border: color.RGBA{80, 80, 80, 255},
		Symbol: color.RGBA{255, 255, 255, 255},
		Glyph:  GlyphRing,
	},
	common.StateConnecting: {
		Fill:   color.RGBA{255, 160, 0, 255},
		Border: color.RGBA{200, 120, 0, 255},
		Symbol: color.RGBA{255, 255, 255, 255},
		Glyph:  GlyphArc,
	},
	common.StateUnknown: {
		Fill:   color.RGBA{189, 189, 189, 255},
		Border: color.RGBA{117, 117, 117, 255},
		Symbol: color.RGBA{66, 66, 66, 255},
		Glyph:  GlyphDash,
	},
}

// StyleFor returns the badge style of a connection state at the tray size.
func StyleFor(state common.ConnectionState) BadgeStyle {
	style, ok := badgeStyles[state]
	if !ok {
		style = badgeStyles[common.StateUnknown]
	}
	style.Size = common.TrayIconSize
	return style
}

// Render draws the badge and encodes it as PNG.
func (s BadgeStyle) Render() []byte {
	size := max(s.Size, 8)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	c := float64(size) / 2
	outer := c - 1
	inner := c * 0.45

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d := math.Hypot(dx, dy)
			switch {
			case d > outer:
				continue
			case d > outer-1.5:
				img.Set(x, y, s.Border)
			case s.inGlyph(dx, dy, d, inner):
				img.Set(x, y, s.Symbol)
			default:
				img.Set(x, y, s.Fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogWarn("Failed to encode tray icon: %v", err)
		return nil
	}
	return buf.Bytes()
}

func (s BadgeStyle) inGlyph(dx, dy, d, r float64) bool {
	switch s.Glyph {
	case GlyphDot:
		return d <= r
	case GlyphRing:
		return d <= r && d >= r-2
	case GlyphArc:
		// upper half of a ring
		return d <= r && d >= r-2 && dy <= 0
	case GlyphDash:
		return math.Abs(dy) <= 1 && math.Abs(dx) <= r
	default:
		return false
	}
}

// GenerateIcon renders the fallback tray icon for a connection state.
func GenerateIcon(state common.ConnectionState) []byte {
	return StyleFor(state).Render()
}
