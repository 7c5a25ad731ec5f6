package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "model_be.tsv", c.ModelPath("be"))
	assert.Equal(t, "model_mle.tsv", c.ModelPath("mle"))
	assert.Equal(t, "train_prediction_be.tsv", c.PredictionPath("train", "be"))
	assert.Equal(t, "train_prediction_mle.tsv", c.PredictionPath("train", "mle"))
	assert.Equal(t, "test_prediction_be.tsv", c.PredictionPath("test", "be"))
	assert.Equal(t, "test_prediction_mle.tsv", c.PredictionPath("test", "mle"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nbayes.yaml")
	content := "output_dir: /tmp/run1\n" +
		"models:\n" +
		"  be: laplace.tsv\n" +
		"predictions:\n" +
		"  test_mle: /abs/test_mle.tsv\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/run1/laplace.tsv", c.ModelPath("be"))
	assert.Equal(t, "/tmp/run1/model_mle.tsv", c.ModelPath("mle"))
	assert.Equal(t, "/abs/test_mle.tsv", c.PredictionPath("test", "mle"))
	assert.Equal(t, "/tmp/run1/train_prediction_be.tsv", c.PredictionPath("train", "be"))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_dir: x\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
