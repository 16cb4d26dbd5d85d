// Package contour finds external contours of foreground blobs in a binary
// frame, reduced to the bounding-box/area summary the template matcher
// needs (§4.5.2 step 1-2). It is a connected-component flood fill rather
// than a full contour-tracing algorithm — the spec only ever consumes
// bounding boxes and pixel area, never the contour's actual boundary path.
package contour

import "github.com/cocosip/go-ticket-vision/internal/frame"

// Box is an external contour's axis-aligned bounding box plus pixel area.
type Box struct {
	X, Y, W, H int
	Area       int
}

// Find labels 8-connected foreground components and returns one Box per
// component, in the order first encountered during a row-major scan (top
// to bottom, left to right) — a stable, deterministic order that later
// stages do not rely on, but determinism itself (§5) does.
func Find(f *frame.Frame) []Box {
	visited := make([]bool, f.Width*f.Height)
	var boxes []Box

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			idx := y*f.Width + x
			if visited[idx] || f.Pix[idx] != 255 {
				continue
			}
			boxes = append(boxes, floodFill(f, visited, x, y))
		}
	}
	return boxes
}

func floodFill(f *frame.Frame, visited []bool, startX, startY int) Box {
	stack := []point{{startX, startY}}
	visited[startY*f.Width+startX] = true

	minX, minY := startX, startY
	maxX, maxY := startX, startY
	area := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		area++

		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || ny < 0 || nx >= f.Width || ny >= f.Height {
					continue
				}
				nidx := ny*f.Width + nx
				if visited[nidx] || f.Pix[nidx] != 255 {
					continue
				}
				visited[nidx] = true
				stack = append(stack, point{nx, ny})
			}
		}
	}

	return Box{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1, Area: area}
}

type point struct{ x, y int }
