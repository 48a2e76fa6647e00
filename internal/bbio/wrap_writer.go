package bbio

import "io"

var newline = []byte{'\n'}

// WrapWriter breaks everything written to it into lines of c bytes.
// A line break is only emitted once more data follows it, so the last
// line is left open for the caller to terminate. If c <= 0, writes pass
// through unchanged.
type WrapWriter struct {
	w   io.Writer
	c   int
	col int
}

func NewWrapWriter(w io.Writer, c int) *WrapWriter {
	return &WrapWriter{w: w, c: c}
}

func (ww *WrapWriter) Write(buf []byte) (n int, err error) {
	if ww.c <= 0 {
		return ww.w.Write(buf)
	}
	for len(buf) > 0 {
		if ww.col >= ww.c {
			if _, err = ww.w.Write(newline); err != nil {
				return
			}
			ww.col = 0
		}
		chunk := min(ww.c-ww.col, len(buf))
		var m int
		m, err = ww.w.Write(buf[:chunk])
		n += m
		ww.col += m
		buf = buf[m:]
		if err != nil {
			return
		}
	}
	return
}
