package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/inkwell/pkg/graphics"
)

// DisplayOp represents one serialized canvas drawing operation.
type DisplayOp struct {
	Op     string
	Params map[string]any
}

// RecordCanvas implements graphics.Canvas and records every call as a
// DisplayOp so tests can assert on painted output without a renderer.
type RecordCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordCanvas creates a recording canvas of the given size.
func NewRecordCanvas(size graphics.Size) *RecordCanvas {
	return &RecordCanvas{size: size}
}

// Ops returns all recorded operations in call order.
func (c *RecordCanvas) Ops() []DisplayOp {
	return c.ops
}

// Named returns the recorded operations with the given op name, in order.
func (c *RecordCanvas) Named(op string) []DisplayOp {
	var matched []DisplayOp
	for _, rec := range c.ops {
		if rec.Op == op {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Reset discards all recorded operations.
func (c *RecordCanvas) Reset() {
	c.ops = c.ops[:0]
}

func (c *RecordCanvas) append(op string, kvs ...any) {
	var params map[string]any
	if len(kvs) > 0 {
		params = make(map[string]any, len(kvs)/2)
		for i := 0; i+1 < len(kvs); i += 2 {
			params[kvs[i].(string)] = kvs[i+1]
		}
	}
	c.ops = append(c.ops, DisplayOp{Op: op, Params: params})
}

func (c *RecordCanvas) Save() {
	c.append("save")
}

func (c *RecordCanvas) Restore() {
	c.append("restore")
}

func (c *RecordCanvas) Translate(dx, dy float64) {
	c.append("translate", "dx", round2(dx), "dy", round2(dy))
}

func (c *RecordCanvas) ClipRect(rect graphics.Rect) {
	c.append("clipRect", "rect", serializeRect(rect))
}

func (c *RecordCanvas) ClipRRect(rrect graphics.RRect) {
	c.append("clipRRect",
		"rect", serializeRect(rrect.Rect),
		"radius", serializeRadius(rrect),
	)
}

func (c *RecordCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.append("drawRect",
		"rect", serializeRect(rect),
		"color", serializeColor(paint.Color),
	)
}

func (c *RecordCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.append("drawRRect",
		"rect", serializeRect(rrect.Rect),
		"radius", serializeRadius(rrect),
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
}

func (c *RecordCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.append("drawCircle",
		"cx", round2(center.X),
		"cy", round2(center.Y),
		"radius", round2(radius),
		"color", serializeColor(paint.Color),
	)
}

func (c *RecordCanvas) DrawRectShadow(rect graphics.Rect, shadow graphics.BoxShadow) {
	c.append("drawRectShadow",
		"rect", serializeRect(rect),
		"color", serializeColor(shadow.Color),
		"blur", round2(shadow.BlurRadius),
	)
}

func (c *RecordCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.BoxShadow) {
	c.append("drawRRectShadow",
		"rect", serializeRect(rrect.Rect),
		"color", serializeColor(shadow.Color),
		"blur", round2(shadow.BlurRadius),
		"offsetY", round2(shadow.Offset.Y),
	)
}

func (c *RecordCanvas) DrawImage(_ image.Image, position graphics.Offset) {
	c.append("drawImage", "x", round2(position.X), "y", round2(position.Y))
}

func (c *RecordCanvas) DrawText(text string, style graphics.TextStyle, position Offset) {
	c.append("drawText",
		"text", text,
		"color", serializeColor(style.Color),
		"x", round2(position.X),
		"y", round2(position.Y),
	)
}

func (c *RecordCanvas) Size() graphics.Size {
	return c.size
}

// Offset aliases graphics.Offset for test readability.
type Offset = graphics.Offset

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return map[string]any{
		"left":   round2(r.Left),
		"top":    round2(r.Top),
		"right":  round2(r.Right),
		"bottom": round2(r.Bottom),
	}
}

func serializeRadius(rr graphics.RRect) map[string]any {
	return map[string]any{
		"topLeft":     round2(rr.TopLeft.X),
		"topRight":    round2(rr.TopRight.X),
		"bottomRight": round2(rr.BottomRight.X),
		"bottomLeft":  round2(rr.BottomLeft.X),
	}
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
