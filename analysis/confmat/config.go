package confmat

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	dataPlaceholder   = "{data}"
	policyPlaceholder = "{policy}"
)

// Dataset is one axis entry of the score matrix.
type Dataset struct {
	Name    string `yaml:"name"`    // directory name used in result paths
	Display string `yaml:"display"` // tick label on the heatmap
}

// Config locates the inputs and output of the cross-evaluation heatmap.
// Dataset order is the matrix axis order.
type Config struct {
	Datasets         []Dataset `yaml:"datasets"`
	ResultTemplate   string    `yaml:"result_template"`
	BaselineTemplate string    `yaml:"baseline_template"`
	OutputPDF        string    `yaml:"output_pdf"`
}

// DefaultConfig returns the layout written by the cross-evaluation harness.
func DefaultConfig() Config {
	return Config{
		Datasets: []Dataset{
			{Name: "mik/bounded", Display: "MIK"},
			{Name: "corlat", Display: "CORLAT"},
			{Name: "regions200", Display: "Regions"},
			{Name: "hybrid100", Display: "Hybrid"},
		},
		ResultTemplate:   "results/{data}/test/cross/{policy}/result",
		BaselineTemplate: "result/{data}/test/scip/full/stats",
		OutputPDF:        "results/conf_mat.pdf",
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every path template can be expanded.
func (c Config) Validate() error {
	if len(c.Datasets) == 0 {
		return fmt.Errorf("datasets must not be empty")
	}
	seen := make(map[string]bool, len(c.Datasets))
	for i, d := range c.Datasets {
		if d.Name == "" {
			return fmt.Errorf("dataset %d has no name", i)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate dataset %q", d.Name)
		}
		seen[d.Name] = true
	}
	if !strings.Contains(c.ResultTemplate, dataPlaceholder) || !strings.Contains(c.ResultTemplate, policyPlaceholder) {
		return fmt.Errorf("result_template %q must contain %s and %s", c.ResultTemplate, dataPlaceholder, policyPlaceholder)
	}
	if !strings.Contains(c.BaselineTemplate, dataPlaceholder) {
		return fmt.Errorf("baseline_template %q must contain %s", c.BaselineTemplate, dataPlaceholder)
	}
	if c.OutputPDF == "" {
		return fmt.Errorf("output_pdf must not be empty")
	}
	return nil
}

// Labels returns the display names in axis order, falling back to the
// dataset name when no display name is set.
func (c Config) Labels() []string {
	labels := make([]string, len(c.Datasets))
	for i, d := range c.Datasets {
		labels[i] = d.Display
		if labels[i] == "" {
			labels[i] = d.Name
		}
	}
	return labels
}

// ResultPath is the result file of policy evaluated on the test set of data.
func (c Config) ResultPath(data, policy string) string {
	return strings.NewReplacer(dataPlaceholder, data, policyPlaceholder, policy).Replace(c.ResultTemplate)
}

// BaselinePath is the baseline solver stats file for data.
func (c Config) BaselinePath(data string) string {
	return strings.ReplaceAll(c.BaselineTemplate, dataPlaceholder, data)
}
