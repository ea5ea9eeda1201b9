// Package scoring computes the weighted keyword score of a message and turns
// it into a verdict.
package scoring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/johnjamespj/gollowmap/internal/keywords"
	"github.com/sirupsen/logrus"
)

const (
	Spam    = "SPAM"
	NotSpam = "NOT_SPAM"

	// appended after every message line so keywords never match across lines
	lineSeparator = ","
)

var scorelog = logrus.WithField("component", "scoring")

// NormalizeMessage lower-cases every line of r, drops carriage returns and
// joins the lines, each followed by a separator.
func NormalizeMessage(r io.Reader) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), "\r", "")
		sb.WriteString(strings.ToLower(line))
		sb.WriteString(lineSeparator)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading message: %w", err)
	}
	return sb.String(), nil
}

func ReadMessageFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", keywords.ErrInvalidInput, err)
	}
	defer f.Close()

	return NormalizeMessage(f)
}

// Occurrences counts the non-overlapping occurrences of key in text. An empty
// key never occurs.
func Occurrences(text string, key string) int {
	if key == "" {
		return 0
	}
	return strings.Count(text, key)
}

// Score sums occurrences*weight over every keyword of db.
func Score(db *keywords.Database, message string) int {
	score := 0
	for c, end := db.Begin(), db.End(); !c.Equal(end); c.Next() {
		entry := c.Entry()
		if n := Occurrences(message, entry.Key); n > 0 {
			scorelog.WithField("keyword", entry.Key).Debugf("%d occurrences, weight %d", n, entry.Value)
			score += n * entry.Value
		}
	}
	return score
}

func Verdict(score int, threshold int) string {
	if threshold <= score {
		return Spam
	}
	return NotSpam
}

// ParseThreshold accepts a strictly positive decimal integer.
func ParseThreshold(s string) (int, error) {
	threshold, err := keywords.ParseWeight(s)
	if err != nil {
		return 0, err
	}
	if threshold <= 0 {
		return 0, fmt.Errorf("%w: threshold must be positive", keywords.ErrInvalidInput)
	}
	return threshold, nil
}
