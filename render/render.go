package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridnav/grid"
)

const minCellSize = 8

// Render draws the field, the start and goal markers, and the path onto
// a fresh canvas and returns it as an image.Image. An empty path yields
// the arena and markers only; callers deciding whether a missing path
// should be drawn at all do so before calling.
func Render(f *grid.Field, start, goal grid.Cell, path []grid.Cell, opts Options) (image.Image, error) {
	dc, err := draw(f, start, goal, path, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG renders and PNG-encodes the scene to w.
func WritePNG(w io.Writer, f *grid.Field, start, goal grid.Cell, path []grid.Cell, opts Options) error {
	dc, err := draw(f, start, goal, path, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the scene into the named PNG file.
func SavePNG(filename string, f *grid.Field, start, goal grid.Cell, path []grid.Cell, opts Options) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", filename, err)
	}
	if err := WritePNG(out, f, start, goal, path, opts); err != nil {
		out.Close()
		return err
	}
	// a failed flush on close must not report success
	if err := out.Close(); err != nil {
		return fmt.Errorf("render: closing %s: %w", filename, err)
	}
	return nil
}

// canvas converts between cell and pixel coordinates for one rendering.
// Pixel y runs downward while cell y runs upward, so rows are flipped.
type canvas struct {
	field   *grid.Field
	cell    float64
	margin  float64
	legendH float64
}

// origin returns the top-left pixel corner of c's tile.
func (cv *canvas) origin(c grid.Cell) (x, y float64) {
	x = cv.margin + float64(c.X)*cv.cell
	y = cv.margin + float64(cv.field.Height()-1-c.Y)*cv.cell
	return x, y
}

// center returns the pixel center of c's tile.
func (cv *canvas) center(c grid.Cell) (x, y float64) {
	x, y = cv.origin(c)
	return x + cv.cell/2, y + cv.cell/2
}

// size returns the full canvas dimensions in pixels.
func (cv *canvas) size() (w, h int) {
	w = int(2*cv.margin + float64(cv.field.Width())*cv.cell)
	h = int(2*cv.margin + float64(cv.field.Height())*cv.cell + cv.legendH)
	return w, h
}

// draw validates inputs and paints the full scene.
func draw(f *grid.Field, start, goal grid.Cell, path []grid.Cell, opts Options) (*gg.Context, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if opts.CellSize < minCellSize {
		return nil, fmt.Errorf("%w: CellSize %d below minimum %d", ErrBadOptions, opts.CellSize, minCellSize)
	}
	if opts.Margin < 0 {
		return nil, fmt.Errorf("%w: negative Margin %d", ErrBadOptions, opts.Margin)
	}
	if !f.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCellOutOfBounds, start)
	}
	if !f.Contains(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrCellOutOfBounds, goal)
	}
	for i, c := range path {
		if !f.Contains(c) {
			return nil, fmt.Errorf("%w: path[%d] = %v", ErrCellOutOfBounds, i, c)
		}
	}
	pal := normalize(opts.Palette)

	cv := &canvas{
		field:  f,
		cell:   float64(opts.CellSize),
		margin: float64(opts.Margin),
	}
	if opts.ShowLegend {
		cv.legendH = cv.cell * 0.45
	}
	w, h := cv.size()
	dc := gg.NewContext(w, h)

	dc.SetHexColor(pal.Background)
	dc.Clear()

	drawTiles(dc, cv, pal, opts)
	drawGridLines(dc, cv, pal)
	if len(path) > 0 {
		drawPath(dc, cv, pal, path, opts)
	}
	drawStart(dc, cv, pal, start)
	drawGoal(dc, cv, pal, goal)
	if opts.Title != "" {
		dc.SetHexColor(pal.Label)
		dc.DrawStringAnchored(opts.Title, float64(w)/2, cv.margin/2, 0.5, 0.5)
	}
	if opts.ShowLegend {
		drawLegend(dc, cv, pal)
	}
	return dc, nil
}

// normalize fills empty palette fields from the defaults.
func normalize(p Palette) Palette {
	d := DefaultPalette()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&p.Background, d.Background)
	fill(&p.Free, d.Free)
	fill(&p.Obstacle, d.Obstacle)
	fill(&p.ObstacleMark, d.ObstacleMark)
	fill(&p.GridLine, d.GridLine)
	fill(&p.Label, d.Label)
	fill(&p.Path, d.Path)
	fill(&p.Arrow, d.Arrow)
	fill(&p.Start, d.Start)
	fill(&p.Goal, d.Goal)
	return p
}

// drawTiles paints every cell as a rounded tile, obstacle tiles with a
// cross, and optionally the coordinate label near the tile's lower edge.
func drawTiles(dc *gg.Context, cv *canvas, pal Palette, opts Options) {
	inset := cv.cell * 0.03
	radius := cv.cell * 0.12
	for y := 0; y < cv.field.Height(); y++ {
		for x := 0; x < cv.field.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			ox, oy := cv.origin(c)
			if cv.field.Blocked(c) {
				dc.SetHexColor(pal.Obstacle)
			} else {
				dc.SetHexColor(pal.Free)
			}
			dc.DrawRoundedRectangle(ox+inset, oy+inset, cv.cell-2*inset, cv.cell-2*inset, radius)
			dc.Fill()

			if cv.field.Blocked(c) {
				pad := cv.cell * 0.26
				dc.SetHexColor(pal.ObstacleMark)
				dc.SetLineWidth(cv.cell * 0.05)
				dc.DrawLine(ox+pad, oy+pad, ox+cv.cell-pad, oy+cv.cell-pad)
				dc.Stroke()
				dc.DrawLine(ox+cv.cell-pad, oy+pad, ox+pad, oy+cv.cell-pad)
				dc.Stroke()
			}
			if opts.ShowCoordinates {
				if cv.field.Blocked(c) {
					dc.SetHexColor(pal.Free)
				} else {
					dc.SetHexColor(pal.Label)
				}
				label := fmt.Sprintf("(%d,%d)", x, y)
				dc.DrawStringAnchored(label, ox+cv.cell/2, oy+cv.cell-cv.cell*0.12, 0.5, 0.5)
			}
		}
	}
}

// drawGridLines strokes dashed separators along the cell boundaries.
func drawGridLines(dc *gg.Context, cv *canvas, pal Palette) {
	w := cv.margin + float64(cv.field.Width())*cv.cell
	h := cv.margin + float64(cv.field.Height())*cv.cell
	dc.SetHexColor(pal.GridLine)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for x := 0; x <= cv.field.Width(); x++ {
		px := cv.margin + float64(x)*cv.cell
		dc.DrawLine(px, cv.margin, px, h)
		dc.Stroke()
	}
	for y := 0; y <= cv.field.Height(); y++ {
		py := cv.margin + float64(y)*cv.cell
		dc.DrawLine(cv.margin, py, w, py)
		dc.Stroke()
	}
	dc.SetDash()
}

// drawPath strokes the route polyline, then the direction arrowheads,
// then the white-edged dots and step badges so markers sit on top.
func drawPath(dc *gg.Context, cv *canvas, pal Palette, path []grid.Cell, opts Options) {
	if len(path) > 1 {
		dc.SetHexColor(pal.Path)
		dc.SetLineWidth(cv.cell * 0.045)
		x0, y0 := cv.center(path[0])
		dc.MoveTo(x0, y0)
		for _, c := range path[1:] {
			x, y := cv.center(c)
			dc.LineTo(x, y)
		}
		dc.Stroke()

		if opts.ShowArrows {
			for i := 1; i < len(path); i++ {
				ax, ay := cv.center(path[i-1])
				bx, by := cv.center(path[i])
				drawArrowhead(dc, pal, ax, ay, bx, by, cv.cell*0.09)
			}
		}
	}

	for i, c := range path {
		x, y := cv.center(c)
		dc.SetHexColor("#FFFFFF")
		dc.DrawCircle(x, y, cv.cell*0.085)
		dc.Fill()
		dc.SetHexColor(pal.Path)
		dc.DrawCircle(x, y, cv.cell*0.06)
		dc.Fill()

		if opts.ShowStepIndices {
			bx := x + cv.cell*0.17
			by := y - cv.cell*0.17
			dc.SetHexColor("#FFFFFF")
			dc.DrawCircle(bx, by, cv.cell*0.1)
			dc.Fill()
			dc.SetHexColor(pal.Path)
			dc.SetLineWidth(1)
			dc.DrawCircle(bx, by, cv.cell*0.1)
			dc.Stroke()
			dc.DrawStringAnchored(fmt.Sprintf("%d", i), bx, by, 0.5, 0.5)
		}
	}
}

// drawArrowhead fills a small triangle 62% of the way from (ax,ay) to
// (bx,by), pointing along the segment.
func drawArrowhead(dc *gg.Context, pal Palette, ax, ay, bx, by, size float64) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	tipX := ax + dx*0.62
	tipY := ay + dy*0.62
	baseX := tipX - ux*size
	baseY := tipY - uy*size
	// perpendicular half-width
	px, py := -uy*size*0.6, ux*size*0.6

	dc.SetHexColor(pal.Arrow)
	dc.MoveTo(tipX, tipY)
	dc.LineTo(baseX+px, baseY+py)
	dc.LineTo(baseX-px, baseY-py)
	dc.ClosePath()
	dc.Fill()
}

// drawStart paints the green square marker and its caption.
func drawStart(dc *gg.Context, cv *canvas, pal Palette, start grid.Cell) {
	x, y := cv.center(start)
	side := cv.cell * 0.3
	dc.SetHexColor(pal.Start)
	dc.DrawRectangle(x-side/2, y-side/2, side, side)
	dc.Fill()
	dc.DrawStringAnchored("START", x, y+cv.cell*0.3, 0.5, 0.5)
}

// drawGoal paints the gold five-pointed star and its caption.
func drawGoal(dc *gg.Context, cv *canvas, pal Palette, goal grid.Cell) {
	x, y := cv.center(goal)
	dc.SetHexColor(pal.Goal)
	starPath(dc, x, y, cv.cell*0.24)
	dc.Fill()
	dc.DrawStringAnchored("GOAL", x, y+cv.cell*0.3, 0.5, 0.5)
}

// starPath traces a five-pointed star centered at (cx,cy) with outer
// radius r, tip up.
func starPath(dc *gg.Context, cx, cy, r float64) {
	inner := r * 0.45
	for i := 0; i < 10; i++ {
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		rad := r
		if i%2 == 1 {
			rad = inner
		}
		x := cx + rad*math.Cos(angle)
		y := cy + rad*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// drawLegend paints the swatch band below the grid.
func drawLegend(dc *gg.Context, cv *canvas, pal Palette) {
	y := cv.margin + float64(cv.field.Height())*cv.cell + cv.margin/2 + cv.legendH/2
	x := cv.margin
	sw := cv.cell * 0.16

	entry := func(label string, paint func(cx, cy float64)) {
		paint(x+sw/2, y)
		dc.SetHexColor(pal.Label)
		dc.DrawStringAnchored(label, x+sw+4, y, 0, 0.5)
		tw, _ := dc.MeasureString(label)
		x += sw + 4 + tw + cv.cell*0.2
	}

	entry("obstacle", func(cx, cy float64) {
		dc.SetHexColor(pal.Obstacle)
		dc.DrawRectangle(cx-sw/2, cy-sw/2, sw, sw)
		dc.Fill()
	})
	entry("free", func(cx, cy float64) {
		dc.SetHexColor(pal.Free)
		dc.DrawRectangle(cx-sw/2, cy-sw/2, sw, sw)
		dc.Fill()
		dc.SetHexColor(pal.GridLine)
		dc.SetLineWidth(1)
		dc.DrawRectangle(cx-sw/2, cy-sw/2, sw, sw)
		dc.Stroke()
	})
	entry("path", func(cx, cy float64) {
		dc.SetHexColor(pal.Path)
		dc.SetLineWidth(3)
		dc.DrawLine(cx-sw/2, cy, cx+sw/2, cy)
		dc.Stroke()
		dc.DrawCircle(cx, cy, sw*0.25)
		dc.Fill()
	})
	entry("start", func(cx, cy float64) {
		dc.SetHexColor(pal.Start)
		dc.DrawRectangle(cx-sw/2, cy-sw/2, sw, sw)
		dc.Fill()
	})
	entry("goal", func(cx, cy float64) {
		dc.SetHexColor(pal.Goal)
		starPath(dc, cx, cy, sw*0.7)
		dc.Fill()
	})
}
