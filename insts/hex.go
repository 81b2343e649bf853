package insts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is matched by every ParseError.
var ErrMalformed = errors.New("malformed instruction")

// ParseError reports hexadecimal text that is not a 32-bit word.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed instruction %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformed.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// ParseHex parses an unsigned hexadecimal instruction word. Surrounding
// whitespace is trimmed. The text must not carry a 0x prefix. Values with
// fewer than eight digits are zero-extended.
func ParseHex(text string) (uint32, error) {
	trimmed := strings.TrimSpace(text)

	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Text: trimmed, Err: err}
	}

	return uint32(v), nil
}

// FormatHex formats an instruction word as eight uppercase hex digits.
func FormatHex(word uint32) string {
	return fmt.Sprintf("%08X", word)
}
