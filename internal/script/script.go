// Package script reads and replays recorded minesweeper moves.
//
// A script holds one move per line in the form
//
//	<verb>?x=<column>&y=<row>
//
// Blank lines and lines starting with # are skipped.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minefield/internal/mines"
)

type Verb string

const (
	Reveal     Verb = "reveal"
	Mark       Verb = "mark" // flag -> question -> clear cycle
	Flag       Verb = "flag"
	Unflag     Verb = "unflag"
	Question   Verb = "question"
	Unquestion Verb = "unquestion"
	Chord      Verb = "chord"
)

var verbs = map[Verb]struct{}{
	Reveal: {}, Mark: {}, Flag: {}, Unflag: {},
	Question: {}, Unquestion: {}, Chord: {},
}

type point struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

type Move struct {
	Line int
	Verb Verb
	At   mines.Coordinate
}

func (m Move) String() string {
	return fmt.Sprintf("%s?x=%d&y=%d", m.Verb, m.At.X, m.At.Y)
}

var ErrSyntax = errors.New("syntax error")

func decodePoint(src map[string][]string) (point, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var p point
	err := dec.Decode(&p, src)
	return p, err
}

// ParseLine parses a single non-comment line.
func ParseLine(line string) (Move, error) {
	verb, query, found := strings.Cut(strings.TrimSpace(line), "?")
	if !found {
		return Move{}, fmt.Errorf("%w: missing '?' in %q", ErrSyntax, line)
	}
	v := Verb(strings.ToLower(verb))
	if _, ok := verbs[v]; !ok {
		return Move{}, fmt.Errorf("%w: unknown verb %q", ErrSyntax, verb)
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	p, err := decodePoint(values)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return Move{Verb: v, At: mines.Coordinate{X: p.X, Y: p.Y}}, nil
}

func Parse(r io.Reader) ([]Move, error) {
	var moves []Move
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		m.Line = n
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}
