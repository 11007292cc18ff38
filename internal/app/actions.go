package app

import (
	"github.com/rs/zerolog/log"

	"github.com/kk-code-lab/spike/internal/search"
	"github.com/kk-code-lab/spike/internal/ui/input"
)

// processKey dispatches one decoded key event.
func (e *Editor) processKey(ev input.Event) error {
	switch {
	case ev.IsCtrl('q'):
		if e.doc.Dirty() > 0 && e.quitRemaining > 0 {
			e.SetStatus("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitRemaining)
			e.quitRemaining--
			return nil
		}
		log.Debug().Int("dirty", e.doc.Dirty()).Msg("quitting")
		e.quit = true
		return nil

	case ev.IsCtrl('s'):
		e.quitRemaining = quitConfirmations
		return e.save()

	case ev.IsCtrl('f'):
		e.quitRemaining = quitConfirmations
		return e.find()

	case ev.Kind == input.KindHome:
		e.cx = 0

	case ev.Kind == input.KindEnd:
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = row.Len()
		}

	case ev.Kind == input.KindBackspace || ev.IsCtrl('h'):
		e.cy, e.cx = e.doc.DeleteChar(e.cy, e.cx)

	case ev.Kind == input.KindDelete:
		e.moveCursor(input.KindRight)
		e.cy, e.cx = e.doc.DeleteChar(e.cy, e.cx)

	case ev.Kind == input.KindPageUp || ev.Kind == input.KindPageDown:
		e.movePage(ev.Kind)

	case ev.Kind == input.KindUp || ev.Kind == input.KindDown ||
		ev.Kind == input.KindLeft || ev.Kind == input.KindRight:
		e.moveCursor(ev.Kind)

	case ev.Kind == input.KindEscape || ev.IsCtrl('l'):
		// Swallowed: the screen is redrawn every cycle anyway.

	case ev.Kind == input.KindChar && ev.Ch == '\r':
		e.doc.InsertNewline(e.cy, e.cx)
		e.cy++
		e.cx = 0

	case ev.Kind == input.KindChar:
		e.doc.InsertChar(e.cy, e.cx, ev.Ch)
		e.cx++
	}

	// Any key other than Ctrl-Q rearms the quit confirmation.
	e.quitRemaining = quitConfirmations
	return nil
}

// find runs an incremental search session. Escape restores the
// pre-search cursor and scroll position; Enter leaves the cursor on the
// accepted match.
func (e *Editor) find() error {
	savedCx, savedCy := e.cx, e.cy
	savedRowOff, savedColOff := e.rowOff, e.colOff

	ctrl := search.NewController(e.doc)
	_, ok, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, ev input.Event) {
		cy, cx, found := ctrl.Step(query, ev)
		if !found {
			return
		}
		e.cy, e.cx = cy, cx
		// Out-of-range on purpose: the next scroll pulls the match row
		// to the top of the viewport.
		e.rowOff = e.doc.NumRows()
	})
	ctrl.End()
	if err != nil {
		return err
	}
	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.rowOff, e.colOff = savedRowOff, savedColOff
	}
	return nil
}
