package app

import "github.com/kk-code-lab/spike/internal/ui/input"

// moveCursor applies one arrow-key movement. The cursor row may sit on
// the virtual line one past the last row; the column is clamped to the
// row it lands on after any vertical move.
func (e *Editor) moveCursor(kind input.Kind) {
	row := e.doc.Row(e.cy)

	switch kind {
	case input.KindLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Len()
		}
	case input.KindRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case input.KindUp:
		if e.cy > 0 {
			e.cy--
		}
	case input.KindDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	rowLen := 0
	if row = e.doc.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// movePage repositions the cursor to the viewport edge and replays a
// screenful of vertical moves.
func (e *Editor) movePage(kind input.Kind) {
	if kind == input.KindPageUp {
		e.cy = e.rowOff
	} else {
		e.cy = e.rowOff + e.screenRows - 1
		if e.cy > e.doc.NumRows() {
			e.cy = e.doc.NumRows()
		}
	}

	move := input.KindDown
	if kind == input.KindPageUp {
		move = input.KindUp
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(move)
	}
}

// scroll recomputes the render column and clamps the scroll offsets so
// the cursor stays inside the viewport. It runs once per frame before
// compositing.
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.doc.Row(e.cy); row != nil {
		e.rx = row.CxToRx(e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}
