package widgets

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/inkwell/pkg/graphics"
)

// scaleIcon resamples an icon to fit the given slot, preserving aspect
// ratio. Catmull-Rom keeps small glyph icons crisp when scaling down.
func scaleIcon(img image.Image, slot graphics.Rect) image.Image {
	if img == nil || slot.IsEmpty() {
		return nil
	}
	srcBounds := img.Bounds()
	srcW, srcH := srcBounds.Dx(), srcBounds.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	scale := slot.Width() / float64(srcW)
	if s := slot.Height() / float64(srcH); s < scale {
		scale = s
	}
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, srcBounds, xdraw.Over, nil)
	return dst
}

// tintIcon recolors every opaque pixel of the icon to the given color,
// preserving the alpha channel. The icon's own colors are discarded, which
// is what template (glyph) icons expect.
func tintIcon(img image.Image, tint graphics.Color) image.Image {
	if img == nil {
		return nil
	}
	r, g, b, _ := tint.RGBAF()
	fill := image.NewUniform(color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 0xFF,
	})

	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.DrawMask(dst, dst.Bounds(), fill, image.Point{}, img, bounds.Min, xdraw.Over)
	return dst
}
