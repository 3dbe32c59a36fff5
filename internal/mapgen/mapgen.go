// Package mapgen draws a printable PDF chart of a pirate's voyage: every
// location visited, in order, with a small sketch of its scenery.
package mapgen

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"plunder/internal/game"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	sceneSize = 56.0
	pathStep  = 110.0
	perRow    = 4
	fontSize  = 8
	titleSize = 16
	labelSize = 7
)

// Stop is one location on the chart.
type Stop struct {
	Name    string
	Level   int
	Scenery string
	Guarded bool // adversaries waited there
	Looted  bool
}

// Stops resolves a route of location names against the levels. Names that
// are not part of any level are kept with empty scenery.
func Stops(levels []*game.Level, p *game.Player) []Stop {
	type at struct {
		level int
		loc   *game.Location
	}
	index := map[string]at{}
	for _, lv := range levels {
		for _, loc := range lv.Locations {
			index[loc.Name] = at{lv.Number, loc}
		}
	}
	route := p.Route()
	stops := make([]Stop, 0, len(route))
	for _, name := range route {
		s := Stop{Name: name}
		if a, ok := index[name]; ok {
			s.Level = a.level
			s.Scenery = a.loc.Scenery
			s.Guarded = len(a.loc.Adversaries) > 0
			s.Looted = a.loc.Finished(p)
		}
		stops = append(stops, s)
	}
	return stops
}

// Generate returns PDF bytes for the voyage chart. A player who never left
// port yields nil.
func Generate(levels []*game.Level, p *game.Player, title string) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	stops := Stops(levels, p)
	if len(stops) == 0 {
		return nil, nil
	}

	// Winding path so the voyage zig-zags down the page
	positions := make([][2]float64, len(stops))
	x0 := float64(margin) + sceneSize
	y0 := float64(margin) + 110
	for i := range stops {
		row, col := i/perRow, i%perRow
		if row%2 == 1 {
			col = perRow - 1 - col
		}
		positions[i][0] = x0 + float64(col)*pathStep
		positions[i][1] = y0 + float64(row)*pathStep
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Parchment
	pdf.SetFillColor(245, 235, 210)
	pdf.Rect(0, 0, pageW, pageH, "F")
	drawWavyBorder(pdf)

	pdf.SetDrawColor(80, 50, 30)
	pdf.SetTextColor(80, 50, 30)
	pdf.SetLineWidth(1)

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(pageW-margin-200, margin+2)
	pdf.CellFormat(200, 14, "Voyage of "+p.Name, "", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(pageW-margin-200, margin+18)
	sub := fmt.Sprintf("%d gold pieces", p.Treasure())
	if title != "" {
		sub = title + " - " + sub
	}
	pdf.CellFormat(200, 10, sub, "", 0, "R", false, 0, "")

	drawCompassRose(pdf, margin+50, margin+50)

	// Dashed red course between stops
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(2)
	pdf.SetDashPattern([]float64{10, 6}, 0)
	for i := 0; i < len(positions)-1; i++ {
		pdf.Line(positions[i][0], positions[i][1], positions[i+1][0], positions[i+1][1])
	}
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)

	last := len(stops) - 1
	for i, s := range stops {
		x, y := positions[i][0], positions[i][1]
		drawScene(pdf, x, y, s, i == last)

		pdf.SetFont("Helvetica", "B", labelSize)
		pdf.SetTextColor(40, 25, 15)
		pdf.SetXY(x-sceneSize/2-14, y+sceneSize/2+4)
		pdf.CellFormat(sceneSize+28, 10, label(s.Name), "", 0, "C", false, 0, "")
		if s.Level > 0 {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.SetXY(x-sceneSize/2, y+sceneSize/2+14)
			pdf.CellFormat(sceneSize, 8, fmt.Sprintf("Level %d", s.Level), "", 0, "C", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetTextColor(80, 50, 30)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func label(name string) string {
	l := strings.ToUpper(name)
	if len(l) > 22 {
		l = l[:19] + "..."
	}
	return l
}

// drawWavyBorder draws the tattered edge of the parchment.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints returns a closed polygon around a rectangle, each side
// wobbling sinusoidally.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	pts := make([]gofpdf.PointType, 0, steps*4+4)
	side := func(from int, at func(t float64, i int) gofpdf.PointType) {
		for i := from; i <= steps; i++ {
			pts = append(pts, at(float64(i)/float64(steps), i))
		}
	}
	side(0, func(t float64, i int) gofpdf.PointType {
		return gofpdf.PointType{X: x + t*w + amp*math.Sin(float64(i)*0.7), Y: y + amp*math.Cos(float64(i)*0.5)}
	})
	side(1, func(t float64, i int) gofpdf.PointType {
		return gofpdf.PointType{X: x + w + amp*math.Sin(float64(i)*0.6), Y: y + t*h + amp*math.Cos(float64(i)*0.4)}
	})
	side(1, func(t float64, i int) gofpdf.PointType {
		return gofpdf.PointType{X: x + w - t*w + amp*math.Sin(float64(i)*0.8), Y: y + h + amp*math.Cos(float64(i)*0.3)}
	})
	side(1, func(t float64, i int) gofpdf.PointType {
		return gofpdf.PointType{X: x + amp*math.Sin(float64(i)*0.5), Y: y + h - t*h + amp*math.Cos(float64(i)*0.6)}
	})
	return pts
}

// drawCompassRose draws an eight point rose with cardinal labels.
func drawCompassRose(pdf *gofpdf.Fpdf, cx, cy float64) {
	const rad = 22.0
	pdf.SetDrawColor(101, 67, 33)
	pdf.SetLineWidth(1)
	pdf.Circle(cx, cy, rad, "D")
	for i := 0; i < 8; i++ {
		angle := float64(i)*math.Pi/4 - math.Pi/2 // 0 = N
		if i%2 == 0 {
			pdf.SetDrawColor(180, 40, 40)
			pdf.SetLineWidth(1.5)
		} else {
			pdf.SetDrawColor(180, 140, 60)
			pdf.SetLineWidth(1)
		}
		pdf.Line(cx, cy, cx+rad*math.Cos(angle), cy+rad*math.Sin(angle))
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(80, 50, 30)
	for _, lab := range []struct {
		label  string
		dx, dy float64
	}{
		{"N", 0, -rad - 10},
		{"S", 0, rad + 10},
		{"E", rad + 8, 0},
		{"W", -rad - 8, 0},
	} {
		pdf.SetXY(cx+lab.dx-4, cy+lab.dy-3)
		pdf.CellFormat(8, 6, lab.label, "", 0, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", fontSize)
}

func drawScene(pdf *gofpdf.Fpdf, x, y float64, s Stop, last bool) {
	r := sceneSize / 2.0
	if last {
		pdf.SetDrawColor(80, 50, 20)
		pdf.SetLineWidth(2)
		pdf.Circle(x, y, r+4.0, "D")
		pdf.SetLineWidth(1)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
	switch s.Scenery {
	case "port":
		drawPort(pdf, x, y, r)
	case "beach":
		drawBeach(pdf, x, y, r)
	case "jungle":
		drawJungle(pdf, x, y, r)
	case "swamp":
		drawSwamp(pdf, x, y, r)
	case "temple":
		drawTemple(pdf, x, y, r)
	case "fort":
		drawFort(pdf, x, y, r)
	case "ruins":
		drawRuins(pdf, x, y, r)
	case "volcano":
		drawVolcano(pdf, x, y, r)
	case "treasury":
		drawChest(pdf, x, y, r)
	default:
		pdf.Circle(x, y, r*0.35, "D")
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
	if s.Guarded {
		drawSwords(pdf, x, y, r)
	}
	if s.Looted {
		drawX(pdf, x, y, r)
	}
}

func drawPort(pdf *gofpdf.Fpdf, x, y, r float64) {
	// Jetty with a moored ship's mast and sail
	pdf.Line(x-r*0.8, y+r*0.4, x+r*0.8, y+r*0.4)
	pdf.Line(x, y+r*0.3, x, y-r*0.6)
	pdf.Polygon([]gofpdf.PointType{{X: x, Y: y - r*0.55}, {X: x + r*0.45, Y: y}, {X: x, Y: y}}, "D")
	pdf.Arc(x, y+r*0.3, r*0.5, r*0.2, 0, 0, 180, "D")
}

func drawBeach(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i := 0; i < 5; i++ {
		dx := -r + float64(i)*r*0.5
		dy := 3 * float64(i%2)
		pdf.Line(x+dx, y+dy, x+dx+r*0.5, y-dy)
	}
	pdf.Circle(x+r*0.3, y-r*0.4, 4, "D")
}

func drawJungle(pdf *gofpdf.Fpdf, x, y, r float64) {
	for i, dx := range []float64{-r * 0.4, 0, r * 0.35} {
		h := 12 + float64(i)*4
		pdf.Line(x+dx, y+r*0.3, x+dx, y+r*0.3-h)
		pdf.Line(x+dx, y+r*0.3-h, x+dx-6, y+r*0.3-h+5)
		pdf.Line(x+dx, y+r*0.3-h, x+dx+6, y+r*0.3-h+5)
	}
}

func drawSwamp(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Ellipse(x, y+r*0.2, r*0.7, r*0.2, 0, "D")
	for _, dx := range []float64{-r * 0.3, 0, r * 0.3} {
		pdf.Line(x+dx, y+r*0.1, x+dx+2, y-r*0.4)
	}
}

func drawTemple(pdf *gofpdf.Fpdf, x, y, r float64) {
	// Stepped pyramid
	for i := 0; i < 3; i++ {
		w := r * (1.4 - 0.4*float64(i))
		pdf.Rect(x-w/2, y+r*0.3-float64(i+1)*8, w, 8, "D")
	}
}

func drawFort(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Rect(x-r*0.6, y-r*0.1, r*1.2, r*0.5, "D")
	for _, dx := range []float64{-r * 0.6, r * 0.35} {
		pdf.Rect(x+dx, y-r*0.45, r*0.25, r*0.35, "D")
	}
}

func drawRuins(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Line(x-r*0.6, y+r*0.4, x+r*0.6, y+r*0.4)
	for i, dx := range []float64{-r * 0.45, -r * 0.05, r * 0.35} {
		h := r * (0.8 - 0.25*float64(i%2))
		pdf.Line(x+dx, y+r*0.4, x+dx, y+r*0.4-h)
	}
}

func drawVolcano(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Polygon([]gofpdf.PointType{
		{X: x - r*0.8, Y: y + r*0.4},
		{X: x - r*0.2, Y: y - r*0.3},
		{X: x + r*0.2, Y: y - r*0.3},
		{X: x + r*0.8, Y: y + r*0.4},
	}, "D")
	pdf.Circle(x-3, y-r*0.5, 3, "D")
	pdf.Circle(x+2, y-r*0.7, 4, "D")
}

func drawChest(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.Rect(x-r*0.5, y-r*0.1, r, r*0.45, "D")
	pdf.Arc(x, y-r*0.1, r*0.5, r*0.25, 0, 180, 360, "D")
	pdf.Rect(x-3, y-r*0.05, 6, 6, "D")
}

func drawSwords(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.SetLineWidth(1.5)
	pdf.Line(x-r*0.4, y-r*0.4, x+r*0.4, y+r*0.4)
	pdf.Line(x-r*0.4, y+r*0.4, x+r*0.4, y-r*0.4)
	pdf.SetLineWidth(1)
}

// drawX marks the spot in red beside the scene.
func drawX(pdf *gofpdf.Fpdf, x, y, r float64) {
	cx, cy := x+r*0.85, y-r*0.85
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(2.5)
	pdf.Line(cx-6, cy-6, cx+6, cy+6)
	pdf.Line(cx-6, cy+6, cx+6, cy-6)
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}
