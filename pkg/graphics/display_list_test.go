package graphics

import (
	"image"
	"testing"
)

// countingCanvas tallies calls per operation for replay assertions.
type countingCanvas struct {
	saves, restores int
	rects, circles  int
	texts           int
	size            Size
}

func (c *countingCanvas) Save()                             { c.saves++ }
func (c *countingCanvas) Restore()                          { c.restores++ }
func (c *countingCanvas) Translate(dx, dy float64)          {}
func (c *countingCanvas) ClipRect(Rect)                     {}
func (c *countingCanvas) ClipRRect(RRect)                   {}
func (c *countingCanvas) DrawRect(Rect, Paint)              { c.rects++ }
func (c *countingCanvas) DrawRRect(RRect, Paint)            {}
func (c *countingCanvas) DrawCircle(Offset, float64, Paint) { c.circles++ }
func (c *countingCanvas) DrawRectShadow(Rect, BoxShadow)    {}
func (c *countingCanvas) DrawRRectShadow(RRect, BoxShadow)  {}
func (c *countingCanvas) DrawImage(image.Image, Offset)     {}
func (c *countingCanvas) DrawText(string, TextStyle, Offset) {
	c.texts++
}
func (c *countingCanvas) Size() Size { return c.size }

// TestPictureRecorder_Replay verifies that recorded operations replay onto
// another canvas in order and count.
func TestPictureRecorder_Replay(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 100, Height: 100})

	canvas.Save()
	canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), FillPaint(ColorBlack))
	canvas.DrawCircle(Offset{X: 25, Y: 25}, 10, FillPaint(ColorWhite))
	canvas.DrawText("hi", TextStyle{}, Offset{X: 5, Y: 5})
	canvas.Restore()

	list := recorder.EndRecording()
	if list.Len() != 5 {
		t.Fatalf("expected 5 recorded ops, got %d", list.Len())
	}
	if list.Size() != (Size{Width: 100, Height: 100}) {
		t.Errorf("unexpected list size: %+v", list.Size())
	}

	target := &countingCanvas{}
	list.Paint(target)

	if target.saves != 1 || target.restores != 1 {
		t.Errorf("expected 1 save/restore, got %d/%d", target.saves, target.restores)
	}
	if target.rects != 1 || target.circles != 1 || target.texts != 1 {
		t.Errorf("unexpected replay counts: %+v", target)
	}
}

// TestPictureRecorder_IgnoresAfterEnd verifies that drawing after
// EndRecording does not extend the finished list.
func TestPictureRecorder_IgnoresAfterEnd(t *testing.T) {
	var recorder PictureRecorder
	canvas := recorder.BeginRecording(Size{Width: 10, Height: 10})
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlack))
	list := recorder.EndRecording()

	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlack))

	if list.Len() != 1 {
		t.Errorf("expected 1 op, got %d", list.Len())
	}
}

// TestPictureRecorder_EndWithoutBegin verifies an empty list is returned.
func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	var recorder PictureRecorder
	list := recorder.EndRecording()

	if list.Len() != 0 {
		t.Errorf("expected empty list, got %d ops", list.Len())
	}
}

// TestEstimateTextSize verifies the layout estimate scales with rune count
// and font size.
func TestEstimateTextSize(t *testing.T) {
	style := TextStyle{FontSize: 10}
	size := EstimateTextSize("abcd", style)

	if size.Width != 24 {
		t.Errorf("expected width 24, got %v", size.Width)
	}
	if size.Height != 12 {
		t.Errorf("expected height 12, got %v", size.Height)
	}

	// Multi-byte runes count once.
	wide := EstimateTextSize("日本", style)
	if wide.Width != 12 {
		t.Errorf("expected width 12 for two runes, got %v", wide.Width)
	}
}

// TestTextStyle_ResolvedSize verifies the default font size fallback.
func TestTextStyle_ResolvedSize(t *testing.T) {
	if got := (TextStyle{}).ResolvedSize(); got != defaultFontSize {
		t.Errorf("expected default size %v, got %v", float64(defaultFontSize), got)
	}
	if got := (TextStyle{FontSize: 20}).ResolvedSize(); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}
