package termio

import (
	"bufio"
	"io"
)

// Key identifies a single decoded input event.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyCtrlC
	KeyUnknown
)

const (
	byteCtrlC = 0x03
	byteEsc   = 0x1b
)

// KeyReader decodes a raw byte stream into key events on a background
// goroutine, so a consumer can select on Keys() alongside other channels
// instead of blocking a read call.
type KeyReader struct {
	keys chan Key
}

// NewKeyReader starts reading from r immediately. The reader goroutine
// exits, closing Keys(), when r returns an error (including io.EOF at the
// end of the stream).
func NewKeyReader(r io.Reader) *KeyReader {
	kr := &KeyReader{keys: make(chan Key, 16)}
	go kr.run(bufio.NewReader(r))
	return kr
}

// Keys returns the channel of decoded key events.
func (kr *KeyReader) Keys() <-chan Key {
	return kr.keys
}

func (kr *KeyReader) run(r *bufio.Reader) {
	defer close(kr.keys)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		if key, ok := kr.decode(b, r); ok {
			kr.keys <- key
		}
	}
}

// decode interprets one leading byte, consuming further bytes from r if it
// opens a CSI arrow-key escape sequence.
func (kr *KeyReader) decode(b byte, r *bufio.Reader) (Key, bool) {
	switch b {
	case byteCtrlC:
		return KeyCtrlC, true
	case '\r', '\n':
		return KeyEnter, true
	case byteEsc:
		return kr.decodeEscape(r)
	default:
		return KeyUnknown, false
	}
}

func (kr *KeyReader) decodeEscape(r *bufio.Reader) (Key, bool) {
	b1, err := r.ReadByte()
	if err != nil || b1 != '[' {
		return KeyUnknown, false
	}
	b2, err := r.ReadByte()
	if err != nil {
		return KeyUnknown, false
	}
	switch b2 {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	default:
		return KeyUnknown, false
	}
}
