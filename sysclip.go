package stipple

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// sysclipHeader tags clipboard text produced by EncodeClipboard so paste
// can tell stipple data apart from arbitrary text.
const sysclipHeader = "stipple-clip"

// EncodeClipboard renders a clipboard snapshot as a text block: a header
// line with dimensions, then one line of space-separated indices per row.
// The format is what travels through the OS clipboard between editor
// instances.
func EncodeClipboard(cb *Clipboard) string {
	if cb.Empty() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %d\n", sysclipHeader, cb.W, cb.H)
	for y := 0; y < cb.H; y++ {
		for x := 0; x < cb.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(cb.At(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeClipboard parses text produced by EncodeClipboard. Returns an
// error for unrecognized or malformed text; the caller keeps its current
// clipboard in that case.
func DecodeClipboard(text string) (*Clipboard, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 {
		return nil, fmt.Errorf("stipple: empty clipboard text")
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 3 || fields[0] != sysclipHeader {
		return nil, fmt.Errorf("stipple: not stipple clipboard data")
	}
	w, err := strconv.Atoi(fields[1])
	if err != nil || w <= 0 {
		return nil, fmt.Errorf("stipple: bad clipboard width %q", fields[1])
	}
	h, err := strconv.Atoi(fields[2])
	if err != nil || h <= 0 {
		return nil, fmt.Errorf("stipple: bad clipboard height %q", fields[2])
	}
	if len(lines)-1 != h {
		return nil, fmt.Errorf("stipple: clipboard has %d rows, header says %d", len(lines)-1, h)
	}

	cb := &Clipboard{W: w, H: h, data: make([]int, w*h)}
	for y := 0; y < h; y++ {
		cols := strings.Fields(lines[y+1])
		if len(cols) != w {
			return nil, fmt.Errorf("stipple: clipboard row %d has %d columns, header says %d", y, len(cols), w)
		}
		for x, col := range cols {
			v, err := strconv.Atoi(col)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("stipple: bad clipboard value %q at (%d, %d)", col, x, y)
			}
			cb.data[y*w+x] = v
		}
	}
	return cb, nil
}

// WriteSystemClipboard publishes a clipboard snapshot to the OS clipboard.
func WriteSystemClipboard(cb *Clipboard) error {
	if cb.Empty() {
		return nil
	}
	return clipboard.WriteAll(EncodeClipboard(cb))
}

// ReadSystemClipboard reads a snapshot previously published by another
// editor instance. Returns an error when the OS clipboard holds something
// else.
func ReadSystemClipboard() (*Clipboard, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return nil, err
	}
	return DecodeClipboard(text)
}
