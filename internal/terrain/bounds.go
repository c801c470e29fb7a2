package terrain

// WorldBounds returns the grid's axis-aligned world-space extent, assuming
// the north-up affine convention used throughout this core (A > 0, E < 0).
func (g *Grid) WorldBounds() Bounds {
	x0, y0 := g.PixelToWorld(0, 0)
	x1, y1 := g.PixelToWorld(float64(g.width), float64(g.height))
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Bounds{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// Contains reports whether the world point (x,y) falls within the grid's
// extent.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
