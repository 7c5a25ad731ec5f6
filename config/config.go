package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/bobonovski/gonb/model"
)

// datasets a run predicts
const (
	Train = "train"
	Test  = "test"
)

// Config names every artifact a run writes. Relative file names
// are resolved against OutputDir.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Models    struct {
		BE  string `yaml:"be"`
		MLE string `yaml:"mle"`
	} `yaml:"models"`
	Predictions struct {
		TrainBE  string `yaml:"train_be"`
		TrainMLE string `yaml:"train_mle"`
		TestBE   string `yaml:"test_be"`
		TestMLE  string `yaml:"test_mle"`
	} `yaml:"predictions"`
}

// Default returns the artifact names written to the working directory
func Default() *Config {
	c := &Config{OutputDir: "."}
	c.Models.BE = "model_be.tsv"
	c.Models.MLE = "model_mle.tsv"
	c.Predictions.TrainBE = "train_prediction_be.tsv"
	c.Predictions.TrainMLE = "train_prediction_mle.tsv"
	c.Predictions.TestBE = "test_prediction_be.tsv"
	c.Predictions.TestMLE = "test_prediction_mle.tsv"
	return c
}

// LoadConfig loads the configuration from a YAML file, fields
// missing from the file keep their default value
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config file")
	}

	config := Default()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal config file")
	}
	return config, nil
}

// Path resolves an artifact name against OutputDir
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// ModelPath returns the model file of a smoothing variant
func (c *Config) ModelPath(variant string) string {
	switch variant {
	case model.MaximumLikelihoodEstimate:
		return c.Path(c.Models.MLE)
	default:
		return c.Path(c.Models.BE)
	}
}

// PredictionPath returns the prediction file of a dataset
// (Train or Test) under a smoothing variant
func (c *Config) PredictionPath(dataset, variant string) string {
	switch {
	case dataset == Train && variant == model.MaximumLikelihoodEstimate:
		return c.Path(c.Predictions.TrainMLE)
	case dataset == Train:
		return c.Path(c.Predictions.TrainBE)
	case variant == model.MaximumLikelihoodEstimate:
		return c.Path(c.Predictions.TestMLE)
	default:
		return c.Path(c.Predictions.TestBE)
	}
}
