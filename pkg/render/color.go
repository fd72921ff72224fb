// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the colors of the static part of the field.
type FieldColors struct {
	BackgroundColor color.RGBA
	LaneLineColor   color.RGBA
	SlotColor       color.RGBA
	BarrierColor    color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// HealthColors — градиент полоски здоровья от полной к пустой.
type HealthColors struct {
	High color.RGBA
	Mid  color.RGBA
	Low  color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// Lerp смешивает два цвета, t обрезается до [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// HealthColor: ratio 1 даёт High, 0.5 даёт Mid, 0 даёт Low.
func (h HealthColors) HealthColor(ratio float64) color.RGBA {
	ratio = clamp01(ratio)
	if ratio >= 0.5 {
		return Lerp(h.Mid, h.High, (ratio-0.5)*2)
	}
	return Lerp(h.Low, h.Mid, ratio*2)
}

// LevelTint brightens a tower color with every level above the first, so merged
// towers stand out without a separate palette.
func LevelTint(c color.RGBA, level int) color.RGBA {
	if level <= 1 {
		return c
	}
	t := float64(level-1) * 0.2
	return Lerp(c, color.RGBA{255, 215, 0, c.A}, t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
