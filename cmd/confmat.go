package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scip-dagger/dagger-analysis/analysis/confmat"
)

var (
	confmatConfigPath string // optional YAML overriding the default layout
	confmatOutput     string // overrides output_pdf
	confmatTranspose  bool   // policy dataset on the x-axis
)

var confmatCmd = &cobra.Command{
	Use:   "confmat",
	Short: "Build the cross-evaluation score heatmap",
	Long: "Compare every policy trained on one dataset and tested on another against the diagonal " +
		"(policy tested on its own dataset). Prints the normalized time, gap, combined and score " +
		"matrices and writes the heatmap PDF.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := confmat.DefaultConfig()
		if confmatConfigPath != "" {
			loaded, err := confmat.LoadConfig(confmatConfigPath)
			if err != nil {
				logrus.Fatalf("Failed to load confmat config: %v", err)
			}
			cfg = loaded
		}
		if confmatOutput != "" {
			cfg.OutputPDF = confmatOutput
		}
		if err := runConfMat(cfg, confmat.RenderOptions{Transpose: confmatTranspose}, os.Stdout); err != nil {
			logrus.Fatalf("confmat failed: %v", err)
		}
	},
}

func runConfMat(cfg confmat.Config, opts confmat.RenderOptions, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logrus.Infof("Building %dx%d score matrix", len(cfg.Datasets), len(cfg.Datasets))
	res, err := confmat.Build(cfg)
	if err != nil {
		return err
	}
	labels := cfg.Labels()
	res.Print(out, labels)
	return confmat.Render(cfg.OutputPDF, res.Score, labels, opts)
}

func init() {
	confmatCmd.Flags().StringVar(&confmatConfigPath, "config", "", "Path to a YAML file overriding datasets, path templates or output")
	confmatCmd.Flags().StringVar(&confmatOutput, "output", "", "Output PDF path (default from config: results/conf_mat.pdf)")
	confmatCmd.Flags().BoolVar(&confmatTranspose, "transpose", false, "Put the policy dataset on the x-axis")

	rootCmd.AddCommand(confmatCmd)
}
