package render

import (
	"math"

	"github.com/stationhq/station/backend-go/internal/element"
)

// PathCommand is a single path segment in Canvas2D form:
// ["M", x, y], ["L", x, y], ["Q", cx, cy, x, y], ["C", ...], ["Z"].
type PathCommand []any

// Magic number for bezier approximation of a circle/ellipse:
// k = 4 * (sqrt(2) - 1) / 3
const bezierCircleK = 0.5522847498

func moveTo(x, y float64) PathCommand { return PathCommand{"M", x, y} }
func lineTo(x, y float64) PathCommand { return PathCommand{"L", x, y} }
func quadTo(cx, cy, x, y float64) PathCommand {
	return PathCommand{"Q", cx, cy, x, y}
}
func closePath() PathCommand { return PathCommand{"Z"} }

// rectPath generates the outline of a rectangle with an optional corner
// radius, in local element space (origin at top-left).
func rectPath(w, h, radius float64) []PathCommand {
	if radius <= 0 {
		return []PathCommand{
			moveTo(0, 0),
			lineTo(w, 0),
			lineTo(w, h),
			lineTo(0, h),
			closePath(),
		}
	}

	r := min(radius, min(w, h)/2)
	return []PathCommand{
		moveTo(r, 0),
		lineTo(w-r, 0),
		quadTo(w, 0, w, r),
		lineTo(w, h-r),
		quadTo(w, h, w-r, h),
		lineTo(r, h),
		quadTo(0, h, 0, h-r),
		lineTo(0, r),
		quadTo(0, 0, r, 0),
		closePath(),
	}
}

// ellipsePath generates an ellipse fitted to the element box using four
// bezier curves, in local element space.
func ellipsePath(w, h float64) []PathCommand {
	rx, ry := w/2, h/2
	cx, cy := rx, ry
	kx, ky := rx*bezierCircleK, ry*bezierCircleK

	return []PathCommand{
		moveTo(cx+rx, cy),
		{"C", cx + rx, cy + ky, cx + kx, cy + ry, cx, cy + ry},
		{"C", cx - kx, cy + ry, cx - rx, cy + ky, cx - rx, cy},
		{"C", cx - rx, cy - ky, cx - kx, cy - ry, cx, cy - ry},
		{"C", cx + kx, cy - ry, cx + rx, cy - ky, cx + rx, cy},
		closePath(),
	}
}

// polygonPath generates a regular polygon inscribed in the element box,
// first vertex pointing up.
func polygonPath(w, h float64, sides int) []PathCommand {
	if sides < 3 {
		sides = 3
	}
	rx, ry := w/2, h/2
	cx, cy := rx, ry

	cmds := make([]PathCommand, 0, sides+1)
	for i := 0; i < sides; i++ {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(sides)
		x := cx + rx*math.Cos(angle)
		y := cy + ry*math.Sin(angle)
		if i == 0 {
			cmds = append(cmds, moveTo(x, y))
		} else {
			cmds = append(cmds, lineTo(x, y))
		}
	}
	return append(cmds, closePath())
}

// starPath generates a star with numPoints outer points. The outer radius
// fits the element box; innerRadius is in canvas pixels.
func starPath(w, h float64, numPoints int, innerRadius float64) []PathCommand {
	if numPoints < 3 {
		numPoints = 3
	}
	outer := min(w, h) / 2
	cx, cy := w/2, h/2

	cmds := make([]PathCommand, 0, numPoints*2+1)
	for i := 0; i < numPoints*2; i++ {
		r := outer
		if i%2 == 1 {
			r = innerRadius
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(numPoints)
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			cmds = append(cmds, moveTo(x, y))
		} else {
			cmds = append(cmds, lineTo(x, y))
		}
	}
	return append(cmds, closePath())
}

// linePath generates an open polyline from a flat coordinate array in
// local element space.
func linePath(points []float64) []PathCommand {
	if len(points) < 4 {
		return nil
	}
	cmds := []PathCommand{moveTo(points[0], points[1])}
	for i := 2; i+1 < len(points); i += 2 {
		cmds = append(cmds, lineTo(points[i], points[i+1]))
	}
	return cmds
}

// arrowHeadPath generates the closed arrow head at the end of the last
// segment of the polyline.
func arrowHeadPath(points []float64, length, width float64) []PathCommand {
	if len(points) < 4 {
		return nil
	}

	x1, y1 := points[len(points)-4], points[len(points)-3]
	x2, y2 := points[len(points)-2], points[len(points)-1]

	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return nil
	}
	ux, uy := dx/dist, dy/dist
	// Perpendicular unit vector
	px, py := -uy, ux

	baseX, baseY := x2-ux*length, y2-uy*length
	halfW := width / 2

	return []PathCommand{
		moveTo(x2, y2),
		lineTo(baseX+px*halfW, baseY+py*halfW),
		lineTo(baseX-px*halfW, baseY-py*halfW),
		closePath(),
	}
}

// shapePath generates the local-space outline for a shape element.
// Returns nil for variants that are not path-drawn (text, image).
func shapePath(el element.Element) []PathCommand {
	switch el.Type {
	case element.TypeRect:
		return rectPath(el.Width, el.Height, el.CornerRadius)
	case element.TypeCircle:
		return ellipsePath(el.Width, el.Height)
	case element.TypeTriangle:
		return polygonPath(el.Width, el.Height, 3)
	case element.TypePolygon:
		return polygonPath(el.Width, el.Height, el.Sides)
	case element.TypeStar:
		return starPath(el.Width, el.Height, el.NumPoints, el.InnerRadius)
	case element.TypeLine:
		return linePath(el.Points)
	case element.TypeArrow:
		return append(linePath(el.Points), arrowHeadPath(el.Points, el.PointerLength, el.PointerWidth)...)
	case element.TypeText, element.TypeImage:
		return nil
	default:
		return nil
	}
}
