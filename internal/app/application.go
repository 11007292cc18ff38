// Package app ties the editor together: it owns the editor state
// (document, cursor, viewport, status message), runs the main loop, and
// dispatches decoded keys to the document, viewport and search layers.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kk-code-lab/spike/internal/document"
	"github.com/kk-code-lab/spike/internal/fileio"
	"github.com/kk-code-lab/spike/internal/ui/input"
	"github.com/kk-code-lab/spike/internal/ui/render"
)

// quitConfirmations is how many extra Ctrl-Q presses an unsaved
// document demands before quitting.
const quitConfirmations = 3

// barRows is the screen space reserved for the status and message bars.
const barRows = 2

// TTY is the terminal surface the editor runs on.
type TTY interface {
	Size() (rows, cols int, err error)
	WriteFrame(frame []byte) error
	ReadByteTimeout() (byte, bool, error)
}

// Editor is the single owned mutable state of the process. All fields
// belong to the main loop; nothing here is shared across goroutines.
type Editor struct {
	tty     TTY
	doc     *document.Document
	decoder *input.Decoder

	cx, cy         int
	rx             int
	rowOff, colOff int
	screenRows     int
	screenCols     int

	statusMsg  string
	statusTime time.Time

	quitRemaining int
	quit          bool
}

// New builds an editor on the given terminal. Failing to query the
// terminal size is a fatal setup error.
func New(tty TTY) (*Editor, error) {
	e := &Editor{
		tty:           tty,
		doc:           document.New(),
		quitRemaining: quitConfirmations,
	}
	e.decoder = input.NewDecoder(tty.ReadByteTimeout)
	if err := e.updateSize(); err != nil {
		return nil, err
	}
	return e, nil
}

// Document exposes the open document.
func (e *Editor) Document() *document.Document { return e.doc }

// OpenFile loads path into the document. A missing file starts an
// empty buffer that will be created on the first save.
func (e *Editor) OpenFile(path string) error {
	e.doc.SetFilename(path)
	lines, binary, err := fileio.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.SetStatus("%s: new file", path)
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	for _, line := range lines {
		e.doc.InsertRow(e.doc.NumRows(), line)
	}
	e.doc.ResetDirty()
	if binary {
		e.SetStatus("WARNING! %s looks binary; edits may corrupt it", path)
	}
	return nil
}

// SetStatus replaces the transient status message.
func (e *Editor) SetStatus(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = time.Now()
}

// Run drives the main loop: compose and write a frame, block on the
// next key, dispatch it. Fatal terminal errors abort the loop; the
// caller restores the terminal and reports them.
func (e *Editor) Run() error {
	for !e.quit {
		if err := e.refresh(); err != nil {
			return err
		}
		ev, err := e.decoder.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if err := e.processKey(ev); err != nil {
			return err
		}
	}
	// Leave a clean screen behind.
	return e.tty.WriteFrame([]byte("\x1b[2J\x1b[H"))
}

// refresh recomputes the viewport and writes one complete frame.
func (e *Editor) refresh() error {
	if err := e.updateSize(); err != nil {
		return err
	}
	e.scroll()
	frame := render.Compose(render.Frame{
		Doc:        e.doc,
		CY:         e.cy,
		RX:         e.rx,
		RowOff:     e.rowOff,
		ColOff:     e.colOff,
		ScreenRows: e.screenRows,
		ScreenCols: e.screenCols,
		Message:    e.statusMsg,
		MessageAt:  e.statusTime,
		Now:        time.Now(),
	})
	return e.tty.WriteFrame(frame)
}

func (e *Editor) updateSize() error {
	rows, cols, err := e.tty.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	e.screenRows = rows - barRows
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	e.screenCols = cols
	return nil
}

// save serializes the document to its filename, prompting for one when
// the buffer is unnamed. Save failures are reported through the status
// bar and never abort the session.
func (e *Editor) save() error {
	if e.doc.Filename() == "" {
		name, ok, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatus("Save aborted")
			return nil
		}
		e.doc.SetFilename(name)
	}

	data := e.doc.Serialize()
	n, err := fileio.Save(e.doc.Filename(), data)
	if err != nil {
		e.SetStatus("Can't save! I/O error: %v", err)
		return nil
	}
	e.doc.ResetDirty()
	e.SetStatus("%d bytes written to disk", n)
	log.Debug().Str("path", e.doc.Filename()).Int("bytes", n).Msg("document saved")
	return nil
}
