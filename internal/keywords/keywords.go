// Package keywords loads the weighted keyword database used by spamscore
// into a gollowmap.Table.
package keywords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/johnjamespj/gollowmap"
	"github.com/sirupsen/logrus"
)

const separator = ","

var (
	ErrInvalidInput = errors.New("invalid input")

	klog = logrus.WithField("component", "keywords")
)

// Database maps a lower-cased keyword to its weight
type Database = gollowmap.Table[string, int]

// LineError reports the first malformed database line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func NewDatabase() *Database {
	return gollowmap.New[string, int](gollowmap.StringHasher[string])
}

// ParseWeight accepts a non-empty run of ASCII digits that fits an int.
func ParseWeight(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", ErrInvalidInput)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return n, nil
}

// ParseLine splits a "keyword,weight" line. The keyword is lower-cased.
func ParseLine(line string) (string, int, error) {
	line = strings.TrimRight(line, "\r")
	if strings.Count(line, separator) != 1 {
		return "", 0, fmt.Errorf("%w: expected exactly one %q in %q", ErrInvalidInput, separator, line)
	}

	key, weightStr, _ := strings.Cut(line, separator)
	if key == "" {
		return "", 0, fmt.Errorf("%w: empty keyword", ErrInvalidInput)
	}
	weight, err := ParseWeight(weightStr)
	if err != nil {
		return "", 0, err
	}
	return strings.ToLower(key), weight, nil
}

// Load reads database lines from r. A keyword that repeats keeps its first
// weight.
func Load(r io.Reader) (*Database, error) {
	db := NewDatabase()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, weight, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		if !db.Insert(key, weight) {
			klog.WithField("keyword", key).Debugf("duplicate keyword on line %d ignored", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keyword database: %w", err)
	}

	klog.Debugf("loaded %d keywords: %s", db.Size(), db)
	return db, nil
}

func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	defer f.Close()

	return Load(f)
}
