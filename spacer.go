package ledwand

// RemoveSpacers drops the rows of src that fall into the gaps between tile
// rows. The result has g.DisplayHeight(src.Height()) rows; the trailing gap
// after the last tile row is dropped as well.
func RemoveSpacers(src *Bitmap, g Geometry) *Bitmap {
	dst := NewBitmap(src.Width(), g.DisplayHeight(src.Height()))
	removeSpacers(dst, src, g)
	return dst
}

func removeSpacers(dst, src *Bitmap, g Geometry) {
	sy := 0
	for y := 0; y < dst.Height(); y++ {
		if y != 0 && y%g.TileHeight == 0 {
			sy += g.SpacerHeight
		}
		copy(dst.Row(y), src.Row(sy))
		sy++
	}
}
