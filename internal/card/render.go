package card

import (
	"bytes"
	"fmt"

	"statcard/internal/config"
	"statcard/internal/domain"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer draws CardModels onto a fixed-size canvas. It is read-only
// after construction and safe to share across requests.
type Renderer struct {
	layout      Layout
	palette     Palette
	defs        map[string]domain.StatDefinition
	order       []domain.StatDefinition
	attribution string

	titleFont *truetype.Font
	textFont  *truetype.Font
}

func NewRenderer(cfg config.Card, attribution string) (*Renderer, error) {
	palette, err := NewPalette(cfg.Colors)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	titleFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: title font: %v", domain.ErrRender, err)
	}
	textFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: text font: %v", domain.ErrRender, err)
	}
	order := cfg.Definitions()
	defs := make(map[string]domain.StatDefinition, len(order))
	for _, d := range order {
		defs[d.Key] = d
	}
	return &Renderer{
		layout:      DefaultLayout(),
		palette:     palette,
		defs:        defs,
		order:       order,
		attribution: attribution,
		titleFont:   titleFont,
		textFont:    textFont,
	}, nil
}

// Render draws the model and returns PNG bytes. The result depends only
// on the model, two calls with the same model give identical bytes.
func (r *Renderer) Render(m domain.CardModel) ([]byte, error) {
	l := r.layout
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetColor(r.palette.Background)
	dc.Clear()

	r.drawHeader(dc, m.Player)

	rows := indexRows(m.Rows)
	y := l.BasicStartY
	dc.SetFontFace(truetype.NewFace(r.textFont, &truetype.Options{Size: l.StatsSize}))
	for _, def := range r.order {
		if def.Category != domain.CategoryBasic {
			continue
		}
		r.drawRow(dc, def, rows[def.Key], y)
		y += l.BasicRowStep
	}

	y += l.AdvancedGap
	dc.SetFontFace(truetype.NewFace(r.textFont, &truetype.Options{Size: l.HeaderSize}))
	dc.SetColor(r.palette.Text)
	dc.DrawString("Advanced Stats", l.Margin, y)
	y += l.AdvancedTitlePad

	dc.SetFontFace(truetype.NewFace(r.textFont, &truetype.Options{Size: l.StatsSize}))
	for _, def := range r.order {
		if def.Category != domain.CategoryAdvanced {
			continue
		}
		r.drawRow(dc, def, rows[def.Key], y)
		y += l.AdvancedRowStep
	}

	r.drawFooter(dc, m)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(dc *gg.Context, p domain.PlayerRecord) {
	l := r.layout
	dc.SetColor(r.palette.Text)

	name, face := r.fitTitle(dc, p.Name)
	dc.SetFontFace(face)
	dc.DrawString(name, l.Margin, l.HeaderNameY+l.TitleSize)

	dc.SetFontFace(truetype.NewFace(r.textFont, &truetype.Options{Size: l.HeaderSize}))
	sub := p.Team + " | " + p.Position + " | " + p.Season
	dc.DrawString(sub, l.Margin, l.HeaderTeamY+l.HeaderSize)
}

// fitTitle shrinks the title face until the name fits the content
// width, then falls back to an ellipsis at the minimum size. Names are
// never clipped off-canvas.
func (r *Renderer) fitTitle(dc *gg.Context, name string) (string, font.Face) {
	l := r.layout
	max := float64(l.Width) - 2*l.Margin
	for size := l.TitleSize; size >= l.TitleMinSize; size -= 2 {
		face := truetype.NewFace(r.titleFont, &truetype.Options{Size: size})
		dc.SetFontFace(face)
		if w, _ := dc.MeasureString(name); w <= max {
			return name, face
		}
	}
	face := truetype.NewFace(r.titleFont, &truetype.Options{Size: l.TitleMinSize})
	dc.SetFontFace(face)
	runes := []rune(name)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if w, _ := dc.MeasureString(string(runes) + "…"); w <= max {
			break
		}
	}
	return string(runes) + "…", face
}

func (r *Renderer) drawRow(dc *gg.Context, def domain.StatDefinition, row domain.PercentileResult, y float64) {
	l := r.layout
	dc.SetColor(r.palette.Text)
	if row.Key == "" || row.Missing {
		dc.DrawString(def.Label+": N/A", l.Margin, y)
		return
	}
	dc.DrawString(def.Label+": "+def.FormatValue(row.Value), l.Margin, y)
	if !row.Ranked {
		return
	}

	width := l.BarMaxWidth * float64(row.Percentile) / 100
	dc.SetColor(r.palette.barColor(row.Percentile))
	dc.DrawRectangle(l.BarX, y-l.BarHeight, width, l.BarHeight)
	dc.Fill()

	dc.SetColor(r.palette.Text)
	dc.DrawString(fmt.Sprintf("%d", row.Percentile), l.BarX+l.BarMaxWidth+10, y)
}

func (r *Renderer) drawFooter(dc *gg.Context, m domain.CardModel) {
	l := r.layout
	dc.SetFontFace(truetype.NewFace(r.textFont, &truetype.Options{Size: l.StatsSize}))
	dc.SetColor(r.palette.Text)
	dc.DrawString("Generated on "+m.GeneratedAt.Format("2006-01-02 15:04"),
		l.Margin, float64(l.Height)-l.FooterOffset)
	dc.DrawString(r.attribution,
		l.Margin, float64(l.Height)-l.FooterOffset/2)
}

func indexRows(rows []domain.PercentileResult) map[string]domain.PercentileResult {
	m := make(map[string]domain.PercentileResult, len(rows))
	for _, row := range rows {
		m[row.Key] = row
	}
	return m
}
