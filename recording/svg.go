package recording

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/segbar"
)

// WriteSVG writes the recording as a standalone SVG document.
func (r *Recording) WriteSVG(w io.Writer) error {
	return WriteSVG(r, w)
}

// WriteSVG writes r as a standalone SVG document, one element per command.
// Empty rectangles are omitted.
func WriteSVG(r *Recording, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		r.width, r.height, r.width, r.height)
	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case FillRectCommand:
			if cmd.Rect.Empty() {
				continue
			}
			fmt.Fprintf(bw, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
				num(cmd.Rect.Left), num(cmd.Rect.Top),
				num(cmd.Rect.Width()), num(cmd.Rect.Height()),
				fillAttrs(cmd.Color))
		case FillPathCommand:
			fmt.Fprintf(bw, `  <path d="%s"%s/>`+"\n", pathData(cmd.Path), fillAttrs(cmd.Color))
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// pathData formats p as SVG path data.
func pathData(p *segbar.Path) string {
	var sb strings.Builder
	for _, e := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := e.(type) {
		case segbar.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(e.Point.X), num(e.Point.Y))
		case segbar.LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(e.Point.X), num(e.Point.Y))
		case segbar.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s",
				num(e.Control.X), num(e.Control.Y), num(e.Point.X), num(e.Point.Y))
		case segbar.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func fillAttrs(c segbar.RGBA) string {
	n := c.Color()
	s := fmt.Sprintf(` fill="#%02x%02x%02x"`, n.R, n.G, n.B)
	if n.A != 0xff {
		s += ` fill-opacity="` + num(c.A) + `"`
	}
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
