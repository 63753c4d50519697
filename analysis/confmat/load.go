package confmat

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/scip-dagger/dagger-analysis/analysis"
)

// Token positions in a policy result record.
const (
	timeToken      = 2
	gapToken       = 6
	failFlagMinLen = 9
)

// Raw holds the per-(policy, data) measurements before imputation,
// indexed [policy][data].
type Raw struct {
	Time [][]analysis.Value
	Gap  [][]analysis.Value
}

// LoadPair reads the last records of a policy result file and the matching
// baseline stats file.
//
// The gap is Unknown when the record carries a non-zero fail flag. The time is
// Unknown when the policy was not faster than the baseline.
func LoadPair(resultPath, baselinePath string) (time, gap analysis.Value, err error) {
	tokens, err := analysis.LastLine(resultPath)
	if err != nil {
		return analysis.Unknown, analysis.Unknown, err
	}
	t, err := analysis.FloatAt(tokens, timeToken)
	if err != nil {
		return analysis.Unknown, analysis.Unknown, fmt.Errorf("%s: wallclock: %w", resultPath, err)
	}
	time = analysis.Known(t)

	failed := false
	if len(tokens) >= failFlagMinLen {
		flag, err := analysis.FloatAt(tokens, len(tokens)-1)
		if err != nil {
			return analysis.Unknown, analysis.Unknown, fmt.Errorf("%s: fail flag: %w", resultPath, err)
		}
		failed = flag != 0
	}
	if !failed {
		g, err := analysis.FloatAt(tokens, gapToken)
		if err != nil {
			return analysis.Unknown, analysis.Unknown, fmt.Errorf("%s: gap: %w", resultPath, err)
		}
		gap = analysis.Known(g)
	}

	baseTokens, err := analysis.LastLine(baselinePath)
	if err != nil {
		return analysis.Unknown, analysis.Unknown, err
	}
	baseTime, err := analysis.FloatAt(baseTokens, timeToken)
	if err != nil {
		return analysis.Unknown, analysis.Unknown, fmt.Errorf("%s: baseline wallclock: %w", baselinePath, err)
	}
	if t >= baseTime {
		logrus.Debugf("%s: policy time %v not below baseline %v", resultPath, t, baseTime)
		time = analysis.Unknown
	}
	return time, gap, nil
}

// Load reads every (policy, data) pair named by cfg.
func Load(cfg Config) (*Raw, error) {
	n := len(cfg.Datasets)
	raw := &Raw{Time: make([][]analysis.Value, n), Gap: make([][]analysis.Value, n)}
	for p := range raw.Time {
		raw.Time[p] = make([]analysis.Value, n)
		raw.Gap[p] = make([]analysis.Value, n)
	}
	for d, data := range cfg.Datasets {
		baseline := cfg.BaselinePath(data.Name)
		for p, policy := range cfg.Datasets {
			time, gap, err := LoadPair(cfg.ResultPath(data.Name, policy.Name), baseline)
			if err != nil {
				return nil, fmt.Errorf("policy %s on %s: %w", policy.Name, data.Name, err)
			}
			raw.Time[p][d], raw.Gap[p][d] = time, gap
		}
	}
	return raw, nil
}
