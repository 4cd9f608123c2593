package render

import (
	"bufio"
	"io"

	"github.com/logrusorgru/aurora"
)

// TextPainter writes generations as lines of glyphs.
type TextPainter struct {
	Live  string
	Dead  string
	Color bool
}

// NewTextPainter returns a painter using block glyphs.
func NewTextPainter() *TextPainter {
	return &TextPainter{Live: "█", Dead: " "}
}

// Paint writes one line per row.
func (p *TextPainter) Paint(w io.Writer, rows [][]uint8) error {
	au := aurora.NewAurora(p.Color)
	live := au.Green(p.Live).String()
	dead := au.BrightBlack(p.Dead).String()

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, c := range row {
			if c != 0 {
				bw.WriteString(live)
				continue
			}
			bw.WriteString(dead)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
