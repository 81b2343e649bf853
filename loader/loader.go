// Package loader reads RISC-V instruction lists from hex text files and
// writes rewritten streams back out.
//
// The input format is one instruction word per line, written as up to eight
// hexadecimal digits without a 0x prefix.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/rvhazard/insts"
)

// Errors reported by the loader. Wrapped errors keep the underlying cause.
var (
	// ErrInputUnavailable means the input file could not be opened or read.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrMalformedInstruction means a line is not a 32-bit hex word.
	ErrMalformedInstruction = insts.ErrMalformed
	// ErrOutputWrite means a result file could not be written.
	ErrOutputWrite = errors.New("output write failed")
)

// Program is an instruction list read from a file.
type Program struct {
	// Path is the file the program was read from.
	Path string
	// Words holds the instruction words in file order.
	Words []uint32
}

// Load reads and parses the hex file at path. Any unreadable or malformed
// line aborts the load; no partial program is returned.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer func() { _ = f.Close() }()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Program{Path: path, Words: words}, nil
}

// Parse reads one instruction word per line from r.
func Parse(r io.Reader) ([]uint32, error) {
	var words []uint32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		word, err := insts.ParseHex(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	return words, nil
}

// Write writes one eight-digit hex word per line to w.
func Write(w io.Writer, words []uint32) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, insts.FormatHex(word)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes words to the file at path, replacing its contents.
func WriteFile(path string, words []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	if err := Write(f, words); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	return nil
}
