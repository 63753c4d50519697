package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scip-dagger/dagger-analysis/analysis/ttest"
)

var ttestCmd = &cobra.Command{
	Use:   "ttest <file>",
	Short: "Paired t-test between the first two columns of a numeric file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTTest(args[0], os.Stdout); err != nil {
			logrus.Fatalf("ttest failed: %v", err)
		}
	},
}

func runTTest(path string, out io.Writer) error {
	rows, err := ttest.ReadColumns(path)
	if err != nil {
		return err
	}
	res, err := ttest.Paired(ttest.Column(rows, 0), ttest.Column(rows, 1))
	if err != nil {
		return err
	}
	return res.Write(out, len(rows[0]))
}

func init() {
	rootCmd.AddCommand(ttestCmd)
}
