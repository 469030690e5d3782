package tilemap

import (
	"image"
	"testing"
)

func TestSheetGrid(t *testing.T) {
	tests := []struct {
		name       string
		sheet      Sheet
		w, h       int
		cols, rows int
	}{
		// 19 columns of 48px tiles with a 1px margin and 2px spacing
		{"extruded tileset", Sheet{48, 48, 1, 2}, 19*48 + 18*2 + 2, 10*48 + 9*2 + 2, 19, 10},
		{"plain strip", Sheet{21, 21, 0, 0}, 105, 21, 5, 1},
		{"partial frame ignored", Sheet{21, 21, 0, 0}, 110, 30, 5, 1},
		{"single image", Sheet{21, 22, 0, 0}, 21, 22, 1, 1},
		{"too small", Sheet{64, 64, 1, 2}, 10, 10, 0, 0},
		{"zero frame", Sheet{}, 100, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sheet.Columns(tt.w); got != tt.cols {
				t.Errorf("Columns = %d, want %d", got, tt.cols)
			}
			if got := tt.sheet.Rows(tt.h); got != tt.rows {
				t.Errorf("Rows = %d, want %d", got, tt.rows)
			}
		})
	}
}

func TestSheetFrame(t *testing.T) {
	s := Sheet{FrameWidth: 48, FrameHeight: 48, Margin: 1, Spacing: 2}

	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(1, 1, 49, 49)},
		{1, image.Rect(51, 1, 99, 49)},
		{19, image.Rect(1, 51, 49, 99)},
		{20, image.Rect(51, 51, 99, 99)},
		{-1, image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := s.Frame(tt.index, 19); got != tt.want {
			t.Errorf("Frame(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	if got := s.Frame(3, 0); got != (image.Rectangle{}) {
		t.Errorf("No columns should give an empty frame, got %v", got)
	}
}
