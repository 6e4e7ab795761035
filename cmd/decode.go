// cmd/decode.go
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flipflopcrf/ffcrf/crf"
)

var (
	decodeLogprobPath    string
	decodeConfigPath     string
	decodeModWeightsPath string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Compute transition posteriors from a logprob matrix and Viterbi-decode a basecall",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadModelConfig(decodeConfigPath)
		if err != nil {
			logrus.Fatalf("loading model config: %v", err)
		}

		logprob, err := LoadMatrix(decodeLogprobPath)
		if err != nil {
			logrus.Fatalf("loading logprob matrix: %v", err)
		}
		logrus.Infof("loaded logprob matrix: %dx%d", logprob.Rows, logprob.Cols)

		tpost, err := crf.ComputeTransitionPosteriors(logprob, true)
		if err != nil {
			logrus.Fatalf("computing transition posteriors: %v", err)
		}

		var modWeights *crf.Matrix
		if decodeModWeightsPath != "" {
			modWeights, err = LoadMatrix(decodeModWeightsPath)
			if err != nil {
				logrus.Fatalf("loading modification weights: %v", err)
			}
		}

		basecall, score, rlCumsum, modsScores, err := crf.DecodePosteriors(tpost, cfg.Alphabet, modWeights, cfg.CanNMods)
		if err != nil {
			logrus.Fatalf("decoding posteriors: %v", err)
		}

		fmt.Printf("basecall: %s\n", basecall)
		fmt.Printf("score: %g\n", score)
		fmt.Printf("run boundaries: %v\n", rlCumsum)
		if modsScores != nil {
			fmt.Printf("modification scores: %dx%d matrix computed\n", modsScores.Rows, modsScores.Cols)
		}
		logrus.Info("decode complete.")
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeLogprobPath, "logprob", "", "path to the row-major float32 logprob matrix file")
	decodeCmd.Flags().StringVar(&decodeConfigPath, "config", "", "path to the YAML model config (alphabet, can_nmods)")
	decodeCmd.Flags().StringVar(&decodeModWeightsPath, "mod-weights", "", "optional path to the modification-weight matrix file")
	_ = decodeCmd.MarkFlagRequired("logprob")
	_ = decodeCmd.MarkFlagRequired("config")
}
