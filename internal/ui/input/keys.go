// Package input turns raw terminal bytes into logical key events.
package input

// Kind identifies a logical key.
type Kind int

const (
	KindChar Kind = iota
	KindEscape
	KindBackspace
	KindDelete
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
)

// Event is one decoded keypress. Ch carries the literal byte for
// KindChar events (including control bytes like Ctrl-Q).
type Event struct {
	Kind Kind
	Ch   byte
}

// IsCtrl reports whether the event is the control-key chord for letter c.
func (e Event) IsCtrl(c byte) bool {
	return e.Kind == KindChar && e.Ch == c&0x1f
}
