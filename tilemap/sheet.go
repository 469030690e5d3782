package tilemap

import "image"

// Sheet describes how equally sized frames are packed into an image: a
// margin around the whole grid and spacing between neighbouring frames.
// Extruded tilesets use a 1px margin and 2px spacing.
type Sheet struct {
	FrameWidth  int
	FrameHeight int
	Margin      int
	Spacing     int
}

// Columns returns how many whole frames fit across an image of the given width
func (s Sheet) Columns(imageWidth int) int {
	return fit(imageWidth, s.FrameWidth, s.Margin, s.Spacing)
}

// Rows returns how many whole frames fit down an image of the given height
func (s Sheet) Rows(imageHeight int) int {
	return fit(imageHeight, s.FrameHeight, s.Margin, s.Spacing)
}

func fit(size, frame, margin, spacing int) int {
	if frame <= 0 {
		return 0
	}
	n := (size - 2*margin + spacing) / (frame + spacing)
	if n < 0 {
		return 0
	}
	return n
}

// Frame returns the source rectangle of frame index, counting left to right
// then top to bottom in a grid of the given column count
func (s Sheet) Frame(index, columns int) image.Rectangle {
	if columns <= 0 || index < 0 {
		return image.Rectangle{}
	}
	col, row := index%columns, index/columns
	x := s.Margin + col*(s.FrameWidth+s.Spacing)
	y := s.Margin + row*(s.FrameHeight+s.Spacing)
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight)
}
