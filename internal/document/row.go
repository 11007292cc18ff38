package document

// TabStop is the column multiple render tabs expand to.
const TabStop = 8

// Highlight classifies one render byte for color selection.
type Highlight byte

const (
	HLNormal Highlight = iota
	HLNumber
	HLMatch
)

// Row is one line of the document. chars is the authoritative content
// (no trailing newline); render and hl are derived from it and always
// regenerated together.
type Row struct {
	chars  []byte
	render []byte
	hl     []Highlight
}

func newRow(text []byte) *Row {
	r := &Row{chars: append([]byte(nil), text...)}
	r.updateRender()
	return r
}

// Chars returns the logical content of the row.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the tab-expanded, display-ready content.
func (r *Row) Render() []byte { return r.render }

// Highlights returns the per-render-byte classification overlay.
func (r *Row) Highlights() []Highlight { return r.hl }

// Len reports the logical length of the row in bytes.
func (r *Row) Len() int { return len(r.chars) }

// RenderLen reports the length of the render buffer.
func (r *Row) RenderLen() int { return len(r.render) }

// updateRender recomputes render and hl from chars. It must run after
// every mutation of chars.
func (r *Row) updateRender() {
	render := make([]byte, 0, len(r.chars))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.updateHighlight()
}

func (r *Row) updateHighlight() {
	hl := make([]Highlight, len(r.render))
	for i, c := range r.render {
		if c >= '0' && c <= '9' {
			hl[i] = HLNumber
		}
	}
	r.hl = hl
}

// CxToRx converts a logical column into a render column, accounting for
// tab expansion. Monotonic in cx.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx converts a render column back into a logical column. Any render
// column inside an expanded tab's span maps to the column immediately
// after that tab; callers (search cursor placement) rely on this
// clamp-forward behavior.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return len(r.chars)
}

// insertChar inserts c at position at, clamping at to [0, len(chars)].
func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = c
	r.updateRender()
}

// deleteChar removes the byte at position at. Out-of-range positions are
// ignored; the caller may rely on that.
func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.chars) {
		return false
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
	r.updateRender()
	return true
}

// appendChars concatenates s onto the end of the row.
func (r *Row) appendChars(s []byte) {
	r.chars = append(r.chars, s...)
	r.updateRender()
}

// SaveHighlight copies the overlay covering [start, start+length) and
// overwrites it with Match. The returned copy is handed back through
// RestoreHighlight when the match moves on.
func (r *Row) SaveHighlight(start, length int) []Highlight {
	if start < 0 || start >= len(r.hl) {
		return nil
	}
	if start+length > len(r.hl) {
		length = len(r.hl) - start
	}
	saved := make([]Highlight, length)
	copy(saved, r.hl[start:start+length])
	for i := start; i < start+length; i++ {
		r.hl[i] = HLMatch
	}
	return saved
}

// RestoreHighlight copies a segment previously taken by SaveHighlight
// back into the overlay.
func (r *Row) RestoreHighlight(start int, saved []Highlight) {
	if start < 0 || start >= len(r.hl) || len(saved) == 0 {
		return
	}
	copy(r.hl[start:], saved)
}
