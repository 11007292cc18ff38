// Package render composes terminal frames: document rows with their
// highlight colors, the status bar, the message bar, and final cursor
// placement, all appended into one buffer written in a single call.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/kk-code-lab/spike/internal/document"
	"github.com/kk-code-lab/spike/internal/textutil"
)

// Version is shown in the welcome banner when no file is open.
const Version = "0.0.1"

// fillerMarker is drawn on viewport rows past the end of the document.
const fillerMarker = "-_-"

// messageTimeout bounds how long a status message stays visible.
const messageTimeout = 5 * time.Second

// ANSI SGR color codes per highlight class.
const (
	colorDefault = 39
	colorNumber  = 31
	colorMatch   = 34
)

// Frame carries everything one frame is composed from.
type Frame struct {
	Doc        *document.Document
	CY         int // cursor row
	RX         int // cursor render column
	RowOff     int
	ColOff     int
	ScreenRows int // viewport rows, bars excluded
	ScreenCols int
	Message    string
	MessageAt  time.Time
	Now        time.Time
}

// Compose builds the complete frame as one contiguous byte sequence:
// hide cursor, home, content rows, status bar, message bar, cursor
// placement, show cursor.
func Compose(f Frame) []byte {
	var buf bytes.Buffer

	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	drawRows(&buf, f)
	drawStatusBar(&buf, f)
	drawMessageBar(&buf, f)

	fmt.Fprintf(&buf, "\x1b[%d;%dH", f.CY-f.RowOff+1, f.RX-f.ColOff+1)
	buf.WriteString("\x1b[?25h")

	return buf.Bytes()
}

func drawRows(buf *bytes.Buffer, f Frame) {
	numRows := f.Doc.NumRows()
	for y := 0; y < f.ScreenRows; y++ {
		fileRow := y + f.RowOff
		if fileRow >= numRows {
			if numRows == 0 && y == f.ScreenRows/3 {
				drawWelcome(buf, f.ScreenCols)
			} else {
				buf.WriteString(textutil.TruncateToWidth(fillerMarker, f.ScreenCols))
			}
		} else {
			drawRow(buf, f.Doc.Row(fileRow), f.ColOff, f.ScreenCols)
		}
		buf.WriteString("\x1b[K")
		buf.WriteString("\r\n")
	}
}

// drawRow writes the visible slice of one row, switching the SGR color
// only when the highlight class changes from the previous byte.
func drawRow(buf *bytes.Buffer, row *document.Row, colOff, width int) {
	render := row.Render()
	hl := row.Highlights()
	if colOff >= len(render) {
		return
	}
	end := colOff + width
	if end > len(render) {
		end = len(render)
	}

	currentColor := colorDefault
	for i := colOff; i < end; i++ {
		color := colorFor(hl[i])
		if color != currentColor {
			fmt.Fprintf(buf, "\x1b[%dm", color)
			currentColor = color
		}
		buf.WriteByte(render[i])
	}
	if currentColor != colorDefault {
		fmt.Fprintf(buf, "\x1b[%dm", colorDefault)
	}
}

func colorFor(h document.Highlight) int {
	switch h {
	case document.HLNumber:
		return colorNumber
	case document.HLMatch:
		return colorMatch
	default:
		return colorDefault
	}
}

func drawWelcome(buf *bytes.Buffer, width int) {
	welcome := textutil.TruncateToWidth(
		fmt.Sprintf("Spike editor -- version %s", Version), width)
	padding := (width - len(welcome)) / 2
	if padding > 0 {
		buf.WriteString(textutil.TruncateToWidth(fillerMarker, padding))
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

func drawStatusBar(buf *bytes.Buffer, f Frame) {
	name := f.Doc.Filename()
	if name == "" {
		name = "[No Name]"
	}
	name = textutil.TruncateToWidth(textutil.SanitizeStatusText(name), 20)

	modified := ""
	if f.Doc.Dirty() > 0 {
		modified = " (modified)"
	}
	status := fmt.Sprintf("%s - %d lines%s", name, f.Doc.NumRows(), modified)

	percent := 100
	if n := f.Doc.NumRows(); n > 0 {
		percent = (f.CY + 1) * 100 / n
		if percent > 100 {
			percent = 100
		}
	}
	rstatus := fmt.Sprintf("%d/%d %d%%", f.CY+1, f.Doc.NumRows(), percent)

	buf.WriteString("\x1b[7m")
	status = textutil.TruncateToWidth(status, f.ScreenCols)
	buf.WriteString(status)
	for col := textutil.DisplayWidth(status); col < f.ScreenCols; col++ {
		if f.ScreenCols-col == textutil.DisplayWidth(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
	}
	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

func drawMessageBar(buf *bytes.Buffer, f Frame) {
	buf.WriteString("\x1b[K")
	if f.Message == "" || f.Now.Sub(f.MessageAt) >= messageTimeout {
		return
	}
	msg := textutil.SanitizeStatusText(f.Message)
	buf.WriteString(textutil.TruncateToWidth(msg, f.ScreenCols))
}
