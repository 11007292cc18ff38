package app

import (
	"fmt"

	"github.com/kk-code-lab/spike/internal/ui/input"
)

// prompt runs a single-line input loop in the message bar. The format
// must contain one %s for the typed text. The callback, when non-nil,
// runs after every keystroke with the current text and the key that
// produced it (including the final Enter or Escape). The bool result is
// false when the prompt was cancelled.
func (e *Editor) prompt(format string, callback func(string, input.Event)) (string, bool, error) {
	var buf []byte
	for {
		e.SetStatus(format, buf)
		if err := e.refresh(); err != nil {
			return "", false, err
		}

		ev, err := e.decoder.ReadKey()
		if err != nil {
			return "", false, fmt.Errorf("read key: %w", err)
		}

		switch {
		case ev.Kind == input.KindBackspace || ev.Kind == input.KindDelete || ev.IsCtrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}

		case ev.Kind == input.KindEscape:
			e.SetStatus("")
			if callback != nil {
				callback(string(buf), ev)
			}
			return "", false, nil

		case ev.Kind == input.KindChar && ev.Ch == '\r':
			if len(buf) > 0 {
				e.SetStatus("")
				if callback != nil {
					callback(string(buf), ev)
				}
				return string(buf), true, nil
			}

		case ev.Kind == input.KindChar && ev.Ch >= 0x20 && ev.Ch < 127:
			buf = append(buf, ev.Ch)
		}

		if callback != nil {
			callback(string(buf), ev)
		}
	}
}
