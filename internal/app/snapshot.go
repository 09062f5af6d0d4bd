package app

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/relabs-tech/imu_cursor/internal/cursor"
	"github.com/relabs-tech/imu_cursor/internal/pipeline"
)

// Snapshot geometry: the reference canvas shows ±500 world units, rendered
// here into a square viewport.
const (
	snapshotSize  = 640
	snapshotScale = 500.0
)

var (
	snapshotBg     = color.RGBA{0, 0, 0, 255}
	snapshotTrail  = color.RGBA{255, 255, 0, 255}
	snapshotCursor = color.RGBA{255, 0, 0, 255}
)

// toPixel maps a world coordinate onto the viewport. World Y grows upward,
// image Y downward.
func toPixel(p cursor.Point) (int, int) {
	half := float64(snapshotSize) / 2
	px := int(math.Round(half + p.X/snapshotScale*half))
	py := int(math.Round(half - p.Y/snapshotScale*half))
	return px, py
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= snapshotSize || y >= snapshotSize {
		return
	}
	img.SetRGBA(x, y, c)
}

// drawSegment draws a line between two pixel positions by stepping the
// longer axis. Fast enough for a 400-point trail on demand.
func drawSegment(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		setPixel(img, x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		setPixel(img, x, y, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// writePathPNG renders the cursor trail plus a coordinate label and encodes
// it as PNG.
func writePathPNG(w io.Writer, points []cursor.Point, frame pipeline.Frame, have bool) error {
	img := image.NewRGBA(image.Rect(0, 0, snapshotSize, snapshotSize))
	for y := 0; y < snapshotSize; y++ {
		for x := 0; x < snapshotSize; x++ {
			img.SetRGBA(x, y, snapshotBg)
		}
	}

	// Trail, oldest to newest
	for i := 1; i < len(points); i++ {
		x0, y0 := toPixel(points[i-1])
		x1, y1 := toPixel(points[i])
		drawSegment(img, x0, y0, x1, y1, snapshotTrail)
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(snapshotTrail),
		Face: basicfont.Face7x13,
	}

	if !have {
		drawer.Dot = fixed.P(8, 16)
		drawer.DrawBytes([]byte("Waiting for frames..."))
		return png.Encode(w, img)
	}

	// Cursor marker
	cx, cy := toPixel(cursor.Point{X: frame.X, Y: frame.Y})
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			setPixel(img, cx+dx, cy+dy, snapshotCursor)
		}
	}

	drawer.Dot = fixed.P(8, 16)
	drawer.DrawBytes([]byte(fmt.Sprintf("x=%8.2f y=%8.2f", frame.X, frame.Y)))

	return png.Encode(w, img)
}
