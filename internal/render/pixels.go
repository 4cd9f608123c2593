package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// HistoryImage paints a w*h grid of cells, scaling each cell to a square of
// scale pixels.
func HistoryImage(cells []uint8, w, h, scale int, on, off color.Color) (*image.RGBA, error) {
	if len(cells) != w*h {
		return nil, fmt.Errorf("history has %d cells, want %dx%d", len(cells), w, h)
	}
	if scale <= 0 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBinaryRGBA(base.Pix, cells, on, off)
	if scale == 1 {
		return base, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			img.SetRGBA(x, y, base.RGBAAt(x/scale, y/scale))
		}
	}
	return img, nil
}

// WritePNG encodes a history as PNG.
func WritePNG(w io.Writer, cells []uint8, width, height, scale int) error {
	img, err := HistoryImage(cells, width, height, scale, color.White, color.Black)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Flatten joins rows into a single row-major buffer.
func Flatten(rows [][]uint8) (cells []uint8, w, h int) {
	if len(rows) == 0 {
		return nil, 0, 0
	}
	w = len(rows[0])
	cells = make([]uint8, 0, w*len(rows))
	for _, row := range rows {
		cells = append(cells, row...)
	}
	return cells, w, len(rows)
}
