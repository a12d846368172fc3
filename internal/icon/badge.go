// Package icon generates the procedural PWA icons for Coin Quest.
//
// Icons are drawn analytically (a yellow coin badge on deep blue) and
// encoded into PNG by hand: the package owns the CRC-32 table, the chunk
// framing and the IDAT compression seam, so no image encoder is involved.
package icon

import "math"

// RGBA is a single 8-bit-per-channel pixel.
type RGBA struct {
	R, G, B, A uint8
}

// Badge palette.
var (
	ColorBackground = RGBA{R: 30, G: 58, B: 138, A: 255}  // deep blue
	ColorFill       = RGBA{R: 250, G: 204, B: 21, A: 255} // warm yellow
	ColorRing       = RGBA{R: 254, G: 240, B: 138, A: 255} // pale yellow
)

const (
	bytesPerPixel = 4

	radiusFactor         = 0.37
	maskableRadiusFactor = 0.33 // leaves a safe zone for OS mask cropping
	ringFactor           = 0.012
)

// Badge holds the geometry of the coin badge for one image size.
type Badge struct {
	CX, CY float64 // Centre of the image
	Radius float64 // Outer radius of the disc
	Ring   float64 // Half-width of the outline band around the disc edge
}

// Design computes the badge geometry for a width x height image.
func Design(width, height int, maskable bool) Badge {
	factor := radiusFactor
	if maskable {
		factor = maskableRadiusFactor
	}

	return Badge{
		CX:     float64(width) / 2,
		CY:     float64(height) / 2,
		Radius: float64(min(width, height)) * factor,
		Ring:   math.Max(1, math.Round(float64(width)*ringFactor)),
	}
}

// ColorAt returns the badge colour for pixel (x, y).
// The ring band wins over the fill where both apply.
func (b Badge) ColorAt(x, y int) RGBA {
	dist := math.Hypot(float64(x)-b.CX, float64(y)-b.CY)

	c := ColorBackground
	if dist < b.Radius {
		c = ColorFill
	}
	if math.Abs(dist-b.Radius) < b.Ring {
		c = ColorRing
	}
	return c
}

// RowSize returns the length of one raster row: filter byte plus RGBA pixels.
func RowSize(width int) int {
	return 1 + width*bytesPerPixel
}

// Synthesize renders the badge into a raw PNG scanline buffer.
// Every row starts with filter type 0 (none); the result has
// height*RowSize(width) bytes and is fully opaque.
func Synthesize(width, height int, maskable bool) []byte {
	badge := Design(width, height, maskable)
	rowSize := RowSize(width)
	raw := make([]byte, rowSize*height)

	for y := 0; y < height; y++ {
		row := raw[y*rowSize : (y+1)*rowSize]
		row[0] = 0 // filter: none

		for x := 0; x < width; x++ {
			c := badge.ColorAt(x, y)
			p := row[1+x*bytesPerPixel:]
			p[0] = c.R
			p[1] = c.G
			p[2] = c.B
			p[3] = c.A
		}
	}

	return raw
}

// PixelAt reads pixel (x, y) back out of a raster produced by Synthesize.
func PixelAt(raw []byte, width, x, y int) RGBA {
	off := y*RowSize(width) + 1 + x*bytesPerPixel
	return RGBA{R: raw[off], G: raw[off+1], B: raw[off+2], A: raw[off+3]}
}
