// core/msout/scanner.go
package msout

import (
	"bufio"
	"io"
)

// scanner provides the two read shapes the ms format mixes freely:
// whole lines (header, seed, dataset boundaries) and whitespace-delimited
// tokens (counts, positions, haplotypes). Lines have no length limit.
type scanner struct {
	br *bufio.Reader
}

func newScanner(r io.Reader) *scanner {
	return &scanner{br: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// line reads up to and including the next newline. A final line without
// a newline is still returned; the EOF surfaces on the following call.
func (s *scanner) line() (string, error) {
	ln, err := s.br.ReadString('\n')
	if len(ln) > 0 {
		return ln, nil
	}
	return "", err
}

// token skips leading whitespace and appends the next run of
// non-whitespace bytes to dst. The delimiter after the token is left
// unconsumed. io.EOF means no token remained.
func (s *scanner) token(dst []byte) ([]byte, error) {
	for {
		b, err := s.br.ReadByte()
		if err != nil {
			return nil, err
		}
		if !isSpace(b) {
			dst = append(dst, b)
			break
		}
	}
	for {
		b, err := s.br.ReadByte()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		if isSpace(b) {
			if err := s.br.UnreadByte(); err != nil {
				return nil, err
			}
			return dst, nil
		}
		dst = append(dst, b)
	}
}
