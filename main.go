package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/bobonovski/gonb/config"
	"github.com/bobonovski/gonb/pipeline"
)

const usage = `nbayes <vocabulary> <map> <train_label> <train_data> <test_label> <test_data>`

var rootCmd = &cobra.Command{
	Use:   usage,
	Short: "Multinomial naive bayes text classifier",
	Long: `nbayes estimates Bayesian (Laplace smoothed) and maximum likelihood
naive bayes models from a labeled bag-of-words training set, predicts the
training and the test set with both and prints accuracy statistics.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var (
	configPath string
	outputDir  string
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "yaml file naming the output artifacts")
	rootCmd.Flags().StringVar(&outputDir, "out", "", "directory for model and prediction files (overrides the config)")
	// expose the glog flags (-v, -logtostderr, ...)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 6 {
		fmt.Fprintln(cmd.OutOrStdout(), "You must provide all the arguments. Please try again.")
		return cmd.Usage()
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	in := pipeline.Inputs{
		Vocabulary:    args[0],
		CategoryNames: args[1],
		TrainLabels:   args[2],
		TrainData:     args[3],
		TestLabels:    args[4],
		TestData:      args[5],
	}
	_, err := pipeline.Execute(in, cfg, cmd.OutOrStdout())
	return err
}

func main() {
	// glog reads its settings from the go flag set, mark it parsed
	// so that cobra is the only one consuming the command line
	flag.CommandLine.Parse([]string{})

	err := rootCmd.Execute()
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
