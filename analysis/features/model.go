package features

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// HeaderLines is the number of leading lines of a model file that precede the
// weights (solver_type, nr_class, label, nr_feature, bias, w).
const HeaderLines = 6

// Model is a linear policy read from a model file.
type Model struct {
	Header  []string
	Weights []float64
}

// ParseModel reads the weight vector of the model file at path, one weight per
// line after the header. Blank lines are skipped.
func ParseModel(path string) (*Model, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening model %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Warnf("closing %s: %v", path, closeErr)
		}
	}()

	model := &Model{}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo <= HeaderLines {
			model.Header = append(model.Header, line)
			continue
		}
		if line == "" {
			continue
		}
		w, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("model %s line %d: invalid weight %q: %w", path, lineNo, line, err)
		}
		model.Weights = append(model.Weights, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}
	logrus.Debugf("model %s: %d weights", path, len(model.Weights))
	return model, nil
}
