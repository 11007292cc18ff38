package input

import (
	"errors"
	"testing"
)

// step is one scripted result of the underlying timed byte read.
type step struct {
	b   byte
	ok  bool
	err error
}

func scriptedReader(t *testing.T, steps []step) ByteReader {
	i := 0
	return func() (byte, bool, error) {
		if i >= len(steps) {
			t.Fatalf("decoder read past the scripted input (%d reads)", len(steps))
		}
		s := steps[i]
		i++
		return s.b, s.ok, s.err
	}
}

func bytesReader(t *testing.T, data string) ByteReader {
	steps := make([]step, len(data))
	for i := 0; i < len(data); i++ {
		steps[i] = step{b: data[i], ok: true}
	}
	return scriptedReader(t, steps)
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Kind
	}{
		{"up", "\x1b[A", KindUp},
		{"down", "\x1b[B", KindDown},
		{"right", "\x1b[C", KindRight},
		{"left", "\x1b[D", KindLeft},
		{"home csi", "\x1b[H", KindHome},
		{"end csi", "\x1b[F", KindEnd},
		{"home o", "\x1bOH", KindHome},
		{"end o", "\x1bOF", KindEnd},
		{"home vt 1", "\x1b[1~", KindHome},
		{"home vt 7", "\x1b[7~", KindHome},
		{"end vt 4", "\x1b[4~", KindEnd},
		{"end vt 8", "\x1b[8~", KindEnd},
		{"delete", "\x1b[3~", KindDelete},
		{"page up", "\x1b[5~", KindPageUp},
		{"page down", "\x1b[6~", KindPageDown},
		{"unknown digit", "\x1b[9~", KindEscape},
		{"unknown csi", "\x1b[Z", KindEscape},
		{"unknown o", "\x1bOZ", KindEscape},
		{"not a sequence", "\x1bxy", KindEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(bytesReader(t, tt.data))
			ev, err := d.ReadKey()
			if err != nil {
				t.Fatalf("ReadKey: %v", err)
			}
			if ev.Kind != tt.want {
				t.Fatalf("kind = %d, want %d", ev.Kind, tt.want)
			}
		})
	}
}

func TestDecodeLiteralBytes(t *testing.T) {
	d := NewDecoder(bytesReader(t, "a"))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindChar || ev.Ch != 'a' {
		t.Fatalf("event = %+v, want char 'a'", ev)
	}
}

func TestDecodeBackspace(t *testing.T) {
	d := NewDecoder(bytesReader(t, "\x7f"))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindBackspace {
		t.Fatalf("kind = %d, want backspace", ev.Kind)
	}
}

func TestDecodeControlChord(t *testing.T) {
	d := NewDecoder(bytesReader(t, "\x11"))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if !ev.IsCtrl('q') {
		t.Fatalf("event = %+v, want Ctrl-Q", ev)
	}
	if ev.IsCtrl('s') {
		t.Fatalf("Ctrl-Q misreported as Ctrl-S")
	}
}

func TestFirstByteWaitsThroughTimeouts(t *testing.T) {
	d := NewDecoder(scriptedReader(t, []step{
		{ok: false},
		{ok: false},
		{b: 'x', ok: true},
	}))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindChar || ev.Ch != 'x' {
		t.Fatalf("event = %+v, want char 'x'", ev)
	}
}

func TestBareEscapeOnTimeout(t *testing.T) {
	// Escape followed by silence is the Escape key itself.
	d := NewDecoder(scriptedReader(t, []step{
		{b: 0x1b, ok: true},
		{ok: false},
	}))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindEscape {
		t.Fatalf("kind = %d, want escape", ev.Kind)
	}

	// Timeout on the second continuation byte degrades the same way.
	d = NewDecoder(scriptedReader(t, []step{
		{b: 0x1b, ok: true},
		{b: '[', ok: true},
		{ok: false},
	}))
	ev, err = d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindEscape {
		t.Fatalf("kind = %d, want escape", ev.Kind)
	}
}

func TestIncompleteTildeSequence(t *testing.T) {
	d := NewDecoder(scriptedReader(t, []step{
		{b: 0x1b, ok: true},
		{b: '[', ok: true},
		{b: '5', ok: true},
		{ok: false},
	}))
	ev, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if ev.Kind != KindEscape {
		t.Fatalf("kind = %d, want escape", ev.Kind)
	}
}

func TestFatalReadErrorPropagates(t *testing.T) {
	wantErr := errors.New("tty read failed")
	d := NewDecoder(scriptedReader(t, []step{{err: wantErr}}))
	if _, err := d.ReadKey(); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}

	// Errors mid-sequence propagate too.
	d = NewDecoder(scriptedReader(t, []step{
		{b: 0x1b, ok: true},
		{err: wantErr},
	}))
	if _, err := d.ReadKey(); !errors.Is(err, wantErr) {
		t.Fatalf("mid-sequence error = %v, want %v", err, wantErr)
	}
}
