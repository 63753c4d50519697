package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrMalformedLine is returned when a consumed record is too short or holds a
// non-numeric token where a number is expected.
var ErrMalformedLine = errors.New("malformed record")

// LastLine returns the whitespace-split tokens of the last non-empty line of
// the file at path.
func LastLine(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Warnf("closing %s: %v", path, closeErr)
		}
	}()

	var last []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			last = fields
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if last == nil {
		return nil, fmt.Errorf("%s: %w: file has no records", path, ErrMalformedLine)
	}
	logrus.Debugf("read %s: last record has %d tokens", path, len(last))
	return last, nil
}

// FloatAt parses tokens[pos] as a float64.
func FloatAt(tokens []string, pos int) (float64, error) {
	if pos < 0 || pos >= len(tokens) {
		return 0, fmt.Errorf("%w: need token %d, record has %d", ErrMalformedLine, pos, len(tokens))
	}
	v, err := strconv.ParseFloat(tokens[pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d %q: %v", ErrMalformedLine, pos, tokens[pos], err)
	}
	return v, nil
}

// ParseFloats parses every token of a record.
func ParseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i := range tokens {
		v, err := FloatAt(tokens, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
