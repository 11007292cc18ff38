package input

// ByteReader reads one raw byte with a bounded timeout. The bool result
// reports whether a byte arrived before the timeout; errors are fatal
// terminal conditions and are never retried.
type ByteReader func() (byte, bool, error)

// Decoder decodes escape sequences arriving byte-by-byte from a raw
// terminal. Incomplete or unrecognized sequences degrade to a plain
// Escape event rather than an error.
type Decoder struct {
	read ByteReader
}

func NewDecoder(read ByteReader) *Decoder {
	return &Decoder{read: read}
}

// ReadKey blocks until a key arrives and returns its decoded event.
// The per-byte timeout only matters mid-sequence: the first byte is
// waited for indefinitely, continuation bytes get a single timed read.
func (d *Decoder) ReadKey() (Event, error) {
	var c byte
	for {
		b, ok, err := d.read()
		if err != nil {
			return Event{}, err
		}
		if ok {
			c = b
			break
		}
	}

	switch c {
	case 0x1b:
		return d.decodeEscape()
	case 127:
		return Event{Kind: KindBackspace}, nil
	default:
		return Event{Kind: KindChar, Ch: c}, nil
	}
}

// decodeEscape consumes the remainder of an escape sequence. A timeout
// on either of the first two continuation bytes means the user pressed
// the bare Escape key.
func (d *Decoder) decodeEscape() (Event, error) {
	seq0, ok, err := d.read()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Kind: KindEscape}, nil
	}
	seq1, ok, err := d.read()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Kind: KindEscape}, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := d.read()
			if err != nil {
				return Event{}, err
			}
			if !ok || seq2 != '~' {
				return Event{Kind: KindEscape}, nil
			}
			switch seq1 {
			case '1', '7':
				return Event{Kind: KindHome}, nil
			case '4', '8':
				return Event{Kind: KindEnd}, nil
			case '3':
				return Event{Kind: KindDelete}, nil
			case '5':
				return Event{Kind: KindPageUp}, nil
			case '6':
				return Event{Kind: KindPageDown}, nil
			}
			return Event{Kind: KindEscape}, nil
		}
		switch seq1 {
		case 'A':
			return Event{Kind: KindUp}, nil
		case 'B':
			return Event{Kind: KindDown}, nil
		case 'C':
			return Event{Kind: KindRight}, nil
		case 'D':
			return Event{Kind: KindLeft}, nil
		case 'H':
			return Event{Kind: KindHome}, nil
		case 'F':
			return Event{Kind: KindEnd}, nil
		}
	case 'O':
		switch seq1 {
		case 'H':
			return Event{Kind: KindHome}, nil
		case 'F':
			return Event{Kind: KindEnd}, nil
		}
	}
	return Event{Kind: KindEscape}, nil
}
