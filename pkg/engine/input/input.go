package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C.
var ErrInterrupted = errors.New("input interrupted")

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	in io.Reader
	fd int
}

// NewKeyReader reads from stdin
func NewKeyReader() *KeyReader {
	return &KeyReader{in: os.Stdin, fd: int(os.Stdin.Fd())}
}

// readByte reads a single byte
func (r *KeyReader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := io.ReadFull(r.in, buf)
	return buf[0], err
}

// readEscape decodes what follows an ESC byte. A lone ESC is "escape".
func (r *KeyReader) readEscape() (string, error) {
	b2, err := r.readByte()
	if err != nil {
		return "escape", nil
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.readByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	if b2 == '[' && b3 >= '0' && b3 <= '9' {
		return r.readFunctionKey(b3)
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// functionKeys maps the numeric parameter of "ESC [ n ~" to a code
var functionKeys = map[string]string{
	"19": "f8",
	"24": "f12",
}

// readFunctionKey reads the rest of an "ESC [ n ~" sequence whose first
// digit is first.
func (r *KeyReader) readFunctionKey(first byte) (string, error) {
	num := []byte{first}
	for len(num) < 4 {
		b, err := r.readByte()
		if err != nil {
			return "", err
		}
		if b == '~' {
			return functionKeys[string(num)], nil
		}
		if b < '0' || b > '9' {
			break
		}
		num = append(num, b)
	}
	return "", nil
}

// decode reads one key and maps it to a raw input code.
func (r *KeyReader) decode() (string, error) {
	b, err := r.readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 3:
		return "", ErrInterrupted
	case b == 0x1b:
		return r.readEscape()
	case b == ' ':
		return "space", nil
	case b == '\n' || b == '\r':
		return "enter", nil
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A')), nil
	case b > 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// ReadKey blocks for one key press and returns its code. Unknown sequences
// come back as an empty code. The terminal is restored before returning.
func (r *KeyReader) ReadKey() (string, error) {
	if r.in == os.Stdin && term.IsTerminal(r.fd) {
		oldState, err := term.MakeRaw(r.fd)
		if err != nil {
			return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
		}
		defer term.Restore(r.fd, oldState)
	}
	return r.decode()
}
