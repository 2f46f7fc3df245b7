package card

import "image/color"

// barColor maps a percentile onto the poor -> neutral -> excellent
// scale: 0-50 interpolates the lower half, 50-100 the upper half.
func (p Palette) barColor(percentile int) color.RGBA {
	if percentile < 0 {
		percentile = 0
	}
	if percentile > 100 {
		percentile = 100
	}
	if percentile < 50 {
		return lerp(p.GradientPoor, p.GradientNeutral, float64(percentile)/50)
	}
	return lerp(p.GradientNeutral, p.GradientExcellent, float64(percentile-50)/50)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: 255,
	}
}
