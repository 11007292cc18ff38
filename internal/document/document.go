// Package document holds the in-memory line buffer the editor operates
// on: ordered rows of logical content plus their derived render and
// highlight overlays, and the editing operations against them.
package document

import "bytes"

// Document is an ordered collection of rows with a monotonic dirty
// counter. Out-of-range indices passed to mutating operations are
// silently ignored.
type Document struct {
	rows     []*Row
	dirty    int
	filename string
}

func New() *Document {
	return &Document{}
}

// NumRows reports the number of rows in the document.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns the row at index i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Dirty reports the number of mutations since the last load or save.
func (d *Document) Dirty() int { return d.dirty }

// ResetDirty marks the document as unmodified (after load/save).
func (d *Document) ResetDirty() { d.dirty = 0 }

// Filename returns the path the document was loaded from, if any.
func (d *Document) Filename() string { return d.filename }

func (d *Document) SetFilename(name string) { d.filename = name }

// InsertRow splices a new row at position at (0 <= at <= NumRows),
// shifting subsequent rows down.
func (d *Document) InsertRow(at int, text []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(text)
	d.dirty++
}

// DeleteRow removes the row at position at, shifting subsequent rows up.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.dirty++
}

// InsertChar inserts c at cursor position (cy, cx). A cursor on the
// virtual line past the last row first appends an empty row.
func (d *Document) InsertChar(cy, cx int, c byte) {
	if cy == len(d.rows) {
		d.InsertRow(len(d.rows), nil)
	}
	if row := d.Row(cy); row != nil {
		row.insertChar(cx, c)
		d.dirty++
	}
}

// InsertNewline splits the row at (cy, cx): with the cursor at column 0
// an empty row is inserted above, otherwise the suffix moves to a new
// row below and the current row is truncated. The cursor belongs at
// (cy+1, 0) afterwards.
func (d *Document) InsertNewline(cy, cx int) {
	if cx == 0 {
		d.InsertRow(cy, nil)
		return
	}
	row := d.Row(cy)
	if row == nil {
		d.InsertRow(cy, nil)
		return
	}
	if cx > len(row.chars) {
		cx = len(row.chars)
	}
	d.InsertRow(cy+1, row.chars[cx:])
	row.chars = row.chars[:cx]
	row.updateRender()
	d.dirty++
}

// DeleteChar deletes the character left of cursor (cy, cx). At column 0
// the row is merged onto the end of the previous one. It returns the
// cursor position after the edit; at document start or past the last
// row it is a no-op.
func (d *Document) DeleteChar(cy, cx int) (int, int) {
	if cy == len(d.rows) {
		return cy, cx
	}
	if cx == 0 && cy == 0 {
		return cy, cx
	}
	row := d.Row(cy)
	if row == nil {
		return cy, cx
	}
	if cx > 0 {
		if row.deleteChar(cx - 1) {
			d.dirty++
		}
		return cy, cx - 1
	}
	prev := d.Row(cy - 1)
	newCx := len(prev.chars)
	d.RowAppendChars(cy-1, row.chars)
	d.DeleteRow(cy)
	return cy - 1, newCx
}

// RowInsertChar inserts c into row cy at column at, clamping at to the
// row bounds.
func (d *Document) RowInsertChar(cy, at int, c byte) {
	if row := d.Row(cy); row != nil {
		row.insertChar(at, c)
		d.dirty++
	}
}

// RowDeleteChar removes the byte at column at of row cy; out-of-range
// positions are ignored.
func (d *Document) RowDeleteChar(cy, at int) {
	if row := d.Row(cy); row != nil && row.deleteChar(at) {
		d.dirty++
	}
}

// RowAppendChars concatenates s onto the end of row cy.
func (d *Document) RowAppendChars(cy int, s []byte) {
	if row := d.Row(cy); row != nil {
		row.appendChars(s)
		d.dirty++
	}
}

// Serialize renders the canonical save format: every row's content
// followed by a single LF, regardless of the source line endings.
func (d *Document) Serialize() []byte {
	var buf bytes.Buffer
	for _, row := range d.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
