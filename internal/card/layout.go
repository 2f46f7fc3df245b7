package card

import (
	"fmt"
	"image/color"

	"statcard/internal/config"
)

// Layout pins every block of the card to fixed coordinates so that
// batch-generated cards line up. All cards are 800x1000.
type Layout struct {
	Width  int
	Height int

	Margin float64

	TitleSize    float64
	TitleMinSize float64
	HeaderSize   float64
	StatsSize    float64

	HeaderNameY float64
	HeaderTeamY float64

	BasicStartY  float64
	BasicRowStep float64

	AdvancedGap      float64
	AdvancedRowStep  float64
	AdvancedTitlePad float64

	BarX         float64
	BarMaxWidth  float64
	BarHeight    float64
	FooterOffset float64
}

func DefaultLayout() Layout {
	return Layout{
		Width:            800,
		Height:           1000,
		Margin:           40,
		TitleSize:        40,
		TitleMinSize:     24,
		HeaderSize:       30,
		StatsSize:        24,
		HeaderNameY:      40,
		HeaderTeamY:      100,
		BasicStartY:      180,
		BasicRowStep:     40,
		AdvancedGap:      40,
		AdvancedRowStep:  50,
		AdvancedTitlePad: 50,
		BarX:             430,
		BarMaxWidth:      300,
		BarHeight:        16,
		FooterOffset:     60,
	}
}

// Palette holds the card colors parsed once at startup.
type Palette struct {
	Background        color.RGBA
	Text              color.RGBA
	GradientPoor      color.RGBA
	GradientNeutral   color.RGBA
	GradientExcellent color.RGBA
}

func NewPalette(c config.Colors) (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = parseHexColor(c.Background); err != nil {
		return Palette{}, err
	}
	if p.Text, err = parseHexColor(c.Text); err != nil {
		return Palette{}, err
	}
	if p.GradientPoor, err = parseHexColor(c.GradientPoor); err != nil {
		return Palette{}, err
	}
	if p.GradientNeutral, err = parseHexColor(c.GradientNeutral); err != nil {
		return Palette{}, err
	}
	if p.GradientExcellent, err = parseHexColor(c.GradientExcellent); err != nil {
		return Palette{}, err
	}
	return p, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
