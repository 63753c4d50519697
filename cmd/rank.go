package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scip-dagger/dagger-analysis/analysis/features"
)

var (
	rankModelPath string
	rankKind      string
	rankSize      int
	rankTopK      int
	rankDirection bool
)

var rankFeaturesCmd = &cobra.Command{
	Use:   "rank-features",
	Short: "Show the top weighted features of a linear policy at each depth",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRankFeatures(rankModelPath, rankKind, rankSize, rankTopK, rankDirection, os.Stdout); err != nil {
			logrus.Fatalf("rank-features failed: %v", err)
		}
	},
}

func runRankFeatures(modelPath, kindName string, size, topk int, split bool, out io.Writer) error {
	kind, err := features.ParseKind(kindName)
	if err != nil {
		return err
	}
	model, err := features.ParseModel(modelPath)
	if err != nil {
		return err
	}

	depths := features.Depths(len(model.Weights), kind)
	if rem := len(model.Weights) % (2 * kind.Size()); rem != 0 {
		logrus.Warnf("%d weights is not a multiple of %d; last depth has %d weights", len(model.Weights), 2*kind.Size(), rem)
	}
	if size > 0 && size != depths {
		logrus.Debugf("--size=%d ignored; model has %d depth levels", size, depths)
	}

	buckets := features.Rank(model.Weights, kind, topk, split)
	return features.WriteRanking(out, buckets, split)
}

func init() {
	rankFeaturesCmd.Flags().StringVar(&rankModelPath, "model", "", "File name of the model")
	rankFeaturesCmd.Flags().StringVar(&rankKind, "type", "", "Policy kind: search or prune")
	rankFeaturesCmd.Flags().IntVar(&rankSize, "size", 0, "Feature size (informational; depth is derived from the model)")
	rankFeaturesCmd.Flags().IntVar(&rankTopK, "topk", 5, "Show top k features")
	rankFeaturesCmd.Flags().BoolVar(&rankDirection, "direction", false, "Rank up and down branching directions separately")
	_ = rankFeaturesCmd.MarkFlagRequired("model")
	_ = rankFeaturesCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(rankFeaturesCmd)
}
