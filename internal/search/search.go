// Package search implements incremental substring search over the
// document's rendered rows, with wrap-around and match-highlight
// save/restore.
package search

import (
	"bytes"

	"github.com/kk-code-lab/spike/internal/document"
	"github.com/kk-code-lab/spike/internal/ui/input"
)

const (
	forward  = 1
	backward = -1
)

// Controller drives one find session. It remembers the last matched row
// so arrow keys move to the next/previous match, and it holds the
// highlight segment it painted over so the overlay can be restored when
// the match moves on or the session ends.
type Controller struct {
	doc        *document.Document
	lastMatch  int
	direction  int
	savedRow   int
	savedStart int
	saved      []document.Highlight
}

func NewController(doc *document.Document) *Controller {
	return &Controller{
		doc:       doc,
		lastMatch: -1,
		direction: forward,
		savedRow:  -1,
	}
}

// Step runs one callback invocation of the incremental search: it
// restores the previous match highlight, updates the scan direction
// from the key, and scans for the query starting after the last match,
// wrapping around the document in both directions. On a match it paints
// the span with the Match highlight and returns the cursor position
// (cy, cx) the caller should jump to.
func (c *Controller) Step(query string, key input.Event) (int, int, bool) {
	c.restoreSaved()

	// Enter accepts the current match and Escape cancels; neither
	// should move the cursor again.
	if key.Kind == input.KindEscape || (key.Kind == input.KindChar && key.Ch == '\r') {
		c.lastMatch = -1
		c.direction = forward
		return 0, 0, false
	}

	switch key.Kind {
	case input.KindRight, input.KindDown:
		c.direction = forward
	case input.KindLeft, input.KindUp:
		c.direction = backward
	default:
		c.lastMatch = -1
		c.direction = forward
	}

	if query == "" {
		return 0, 0, false
	}
	if c.lastMatch == -1 {
		c.direction = forward
	}

	numRows := c.doc.NumRows()
	current := c.lastMatch
	needle := []byte(query)
	for i := 0; i < numRows; i++ {
		current += c.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		row := c.doc.Row(current)
		idx := bytes.Index(row.Render(), needle)
		if idx == -1 {
			continue
		}

		c.lastMatch = current
		c.saved = row.SaveHighlight(idx, len(needle))
		c.savedRow = current
		c.savedStart = idx
		return current, row.RxToCx(idx), true
	}
	return 0, 0, false
}

// End finishes the session: the painted highlight is restored and the
// match state resets so the next session starts fresh and forward.
func (c *Controller) End() {
	c.restoreSaved()
	c.lastMatch = -1
	c.direction = forward
}

func (c *Controller) restoreSaved() {
	if c.savedRow == -1 {
		return
	}
	if row := c.doc.Row(c.savedRow); row != nil {
		row.RestoreHighlight(c.savedStart, c.saved)
	}
	c.savedRow = -1
	c.saved = nil
}
