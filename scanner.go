package objsoup

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
)

// Tables holds what a single scan extracts. Faces are already resolved to
// positions; Positions keeps file order so the 1-based index of a "v" line is
// its slice index plus one.
type Tables struct {
	Positions []mgl32.Vec3
	Faces     [][3]mgl32.Vec3
}

type scanState int

const (
	stateInactive scanState = iota
	stateVerts
	stateFaces
)

type scanner struct {
	src    []byte
	name   string
	format Format

	state      scanState
	field      int
	tokenStart int // 0 until the whitespace after the marker is seen
	line       int

	positions []mgl32.Vec3
	faces     [][3]mgl32.Vec3
}

// Scan walks src once and returns its position and face tables. It fails with
// a *TokenError on the first token that cannot be used.
func Scan(src []byte, opts ...Option) (*Tables, error) {
	o := buildOptions(opts)
	s := &scanner{
		src:    src,
		name:   o.name,
		format: o.format,
		line:   1,
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	return &Tables{Positions: s.positions, Faces: s.faces}, nil
}

func (s *scanner) run() error {
	// the start of input counts as a line start
	prev := '\n'
	for i := 0; i < len(s.src); {
		c, size := utf8.DecodeRune(s.src[i:])
		if err := s.step(i, size, c, prev); err != nil {
			return err
		}
		if c == '\n' {
			s.line++
		}
		prev = c
		i += size
	}
	return s.finish()
}

func (s *scanner) step(i, size int, c, prev rune) error {
	switch s.state {
	case stateInactive:
		if prev != '\n' {
			return nil
		}
		switch c {
		case 'v':
			if s.acceptMarker(i + size) {
				s.positions = append(s.positions, mgl32.Vec3{})
				s.enter(stateVerts)
			}
		case 'f':
			if s.acceptMarker(i + size) {
				s.faces = append(s.faces, [3]mgl32.Vec3{})
				s.enter(stateFaces)
			}
		}
		return nil
	}

	if !unicode.IsSpace(c) {
		return nil
	}
	if s.tokenStart == 0 {
		s.tokenStart = i + size
		return nil
	}
	if err := s.consume(s.tokenStart, i); err != nil {
		return err
	}
	if s.field == 2 {
		s.state = stateInactive
		return nil
	}
	s.field++
	s.tokenStart = i + size
	return nil
}

// acceptMarker reports whether a marker ending at next starts a record.
func (s *scanner) acceptMarker(next int) bool {
	if s.format != FormatStrict {
		return true
	}
	if next >= len(s.src) {
		return false
	}
	c, _ := utf8.DecodeRune(s.src[next:])
	return unicode.IsSpace(c)
}

func (s *scanner) enter(state scanState) {
	s.state = state
	s.field = 0
	s.tokenStart = 0
}

// consume parses src[start:end] into the current field of the last record.
func (s *scanner) consume(start, end int) error {
	tok := string(s.src[start:end])
	switch s.state {
	case stateVerts:
		f, err := parseCoord(tok)
		if err != nil {
			return s.tokenError(start, tok, err)
		}
		s.positions[len(s.positions)-1][s.field] = f
	case stateFaces:
		idx, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return s.tokenError(start, tok, err)
		}
		if idx == 0 || idx > uint64(len(s.positions)) {
			return s.tokenError(start, tok, ErrIndexOutOfRange)
		}
		s.faces[len(s.faces)-1][s.field] = s.positions[idx-1]
	}
	return nil
}

// finish treats the end of input as a final token boundary.
func (s *scanner) finish() error {
	if s.state == stateInactive {
		return nil
	}
	end := len(s.src)
	if s.tokenStart == 0 || s.tokenStart >= end {
		return s.tokenError(end, "", ErrTruncated)
	}
	if err := s.consume(s.tokenStart, end); err != nil {
		return err
	}
	if s.field != 2 {
		return s.tokenError(end, "", ErrTruncated)
	}
	s.state = stateInactive
	return nil
}

// parseCoord reads a float32 coordinate. Values beyond the float32 range
// become ±Inf rather than failing.
func parseCoord(tok string) (float32, error) {
	f, err := strconv.ParseFloat(tok, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return float32(f), nil
}

func (s *scanner) tokenError(offset int, tok string, err error) error {
	return &TokenError{
		Resource: s.name,
		Offset:   offset,
		Line:     s.line,
		Token:    tok,
		Err:      err,
	}
}
