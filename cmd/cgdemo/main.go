// Command cgdemo renders paths, strokes, dashes and text built with cg
// into a PNG image.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/cg"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "cgdemo.png", "output file")
		debug  = flag.Bool("debug", false, "log cg debug messages")
	)
	flag.Parse()

	if *debug {
		cg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{30, 40, 60, 255}), image.Point{}, draw.Src)

	fill(dst, shapes(), color.RGBA{255, 200, 0, 255}, cg.FillRuleWinding)
	fill(dst, star(), color.RGBA{255, 255, 255, 255}, cg.FillRuleEvenOdd)
	drawStrokes(dst)
	if err := drawText(dst); err != nil {
		log.Fatalf("Failed to draw text: %v", err)
	}

	if err := save(dst, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// fill rasterizes p, paints it in c and releases it.
func fill(dst *image.RGBA, p *cg.Path, c color.Color, rule cg.FillRule) {
	defer p.Release()
	b := dst.Bounds()
	mask, err := cg.Rasterize(p, b.Dx(), b.Dy(), cg.WithFillRule(rule))
	if err != nil {
		log.Fatalf("Failed to rasterize: %v", err)
	}
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func shapes() *cg.Path {
	m := cg.NewMutablePath()
	m.AddEllipseInRect(nil, cg.MakeRect(60, 60, 160, 120))
	m.AddRoundedRect(nil, cg.MakeRect(260, 60, 160, 120), 20, 20)

	// Rotated squares around a common center.
	for i := range 8 {
		t := cg.MakeTranslation(620, 120).Rotate(float64(i) * math.Pi / 4)
		m.AddRect(&t, cg.MakeRect(30, -15, 30, 30))
	}
	return m.AsPath()
}

func star() *cg.Path {
	const points = 5
	m := cg.NewMutablePath()
	pts := make([]cg.Point, points)
	for i := range pts {
		angle := float64(i)*4*math.Pi/points - math.Pi/2
		pts[i] = cg.Pt(80*math.Cos(angle), 80*math.Sin(angle))
	}
	t := cg.MakeTranslation(140, 330)
	m.AddLines(&t, pts...)
	m.CloseSubpath()
	return m.AsPath()
}

func drawStrokes(dst *image.RGBA) {
	wave := cg.NewMutablePath()
	defer wave.Release()
	wave.MoveTo(nil, 260, 300)
	wave.AddCurveTo(nil, 310, 250, 360, 350, 410, 300)
	wave.AddCurveTo(nil, 460, 250, 510, 350, 560, 300)

	fill(dst, wave.CopyByStrokingPath(nil, cg.RoundStrokeStyle().WithWidth(8)),
		color.RGBA{255, 120, 0, 255}, cg.FillRuleWinding)

	circle := cg.NewPathWithEllipseInRect(cg.MakeRect(600, 250, 120, 120), nil)
	defer circle.Release()
	dashed := cg.DefaultStrokeStyle().WithWidth(4).WithCap(cg.LineCapRound).WithDashPattern(12, 8)
	fill(dst, circle.CopyByStrokingPath(nil, dashed), color.RGBA{120, 220, 255, 255}, cg.FillRuleWinding)
}

func drawText(dst *image.RGBA) error {
	f, err := cg.NewFont(goregular.TTF)
	if err != nil {
		return err
	}
	m := cg.NewMutablePath()
	if _, err := m.AddText(nil, f, 48, cg.Pt(60, 520), "Hello, paths!"); err != nil {
		m.Release()
		return err
	}
	fill(dst, m.AsPath(), color.White, cg.FillRuleWinding)
	return nil
}

func save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
