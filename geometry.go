package ledwand

import (
	"fmt"
	"image"
)

// Geometry describes the tiled construction of a dot-matrix display. Tiles are
// stacked in rows, with SpacerHeight physical rows of nothing between two
// adjacent tile rows.
type Geometry struct {
	TileWidth    int `yaml:"tile_width"`
	TileHeight   int `yaml:"tile_height"`
	SpacerHeight int `yaml:"spacer_height"`
	TilesX       int `yaml:"tiles_x"`
	TilesY       int `yaml:"tiles_y"`
}

// DefaultGeometry is the 448x160 display at the CCCB.
var DefaultGeometry = Geometry{
	TileWidth:    8,
	TileHeight:   8,
	SpacerHeight: 4,
	TilesX:       56,
	TilesY:       20,
}

// PixelWidth is the device width in pixels.
func (g Geometry) PixelWidth() int { return g.TilesX * g.TileWidth }

// PixelHeight is the device height in pixels.
func (g Geometry) PixelHeight() int { return g.TilesY * g.TileHeight }

// Bounds returns the device pixel grid.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.PixelWidth(), g.PixelHeight())
}

// CanvasHeight is the height of the working canvas. With spacers the canvas
// contains the gap rows between tile rows, so that images keep their
// proportions once the gaps are removed again.
func (g Geometry) CanvasHeight(spacers bool) int {
	if !spacers || g.TilesY == 0 {
		return g.PixelHeight()
	}
	return g.PixelHeight() + (g.TilesY-1)*g.SpacerHeight
}

// DisplayHeight returns the number of rows left of a canvas with the given
// height once all spacer rows are removed.
func (g Geometry) DisplayHeight(canvasHeight int) int {
	period := g.TileHeight + g.SpacerHeight
	full := canvasHeight / period
	remainder := canvasHeight % period
	spacers := full*g.SpacerHeight + max(0, remainder-g.TileHeight)
	return canvasHeight - spacers
}

// Validate checks that the geometry can be rendered to.
func (g Geometry) Validate() error {
	switch {
	case g.TileWidth != 8:
		return fmt.Errorf("%w: tile width %d, must be 8", ErrGeometry, g.TileWidth)
	case g.TileHeight <= 0:
		return fmt.Errorf("%w: tile height %d", ErrGeometry, g.TileHeight)
	case g.SpacerHeight < 0:
		return fmt.Errorf("%w: negative spacer height %d", ErrGeometry, g.SpacerHeight)
	case g.TilesX <= 0 || g.TilesY <= 0:
		return fmt.Errorf("%w: %dx%d tiles", ErrGeometry, g.TilesX, g.TilesY)
	}
	return nil
}
