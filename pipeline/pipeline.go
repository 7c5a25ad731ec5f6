package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/bobonovski/gonb/classifier"
	"github.com/bobonovski/gonb/config"
	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/eval"
	"github.com/bobonovski/gonb/model"
	"github.com/bobonovski/gonb/sstable"
	"github.com/bobonovski/gonb/table"
)

// Inputs are the paths of the six input files
type Inputs struct {
	Vocabulary    string
	CategoryNames string
	TrainLabels   string
	TrainData     string
	TestLabels    string
	TestData      string
}

// Run is the outcome of predicting one dataset with one model
type Run struct {
	Dataset     string
	Variant     string
	Predictions *classifier.Predictions
	Report      *eval.Report
}

type Result struct {
	Priors *table.PriorTable
	Runs   []*Run
}

type dataset struct {
	name   string
	labels *corpus.Labels
	data   *corpus.Corpus
}

// Execute trains both models on the training set, writes them to
// disk, predicts the training and the test set with each of them and
// writes the statistics report to out
func Execute(in Inputs, cfg *config.Config, out io.Writer) (*Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, corpus.NewIOError(cfg.OutputDir, err)
	}

	vocab, err := corpus.LoadVocabulary(in.Vocabulary)
	if err != nil {
		return nil, errors.Wrap(err, "load vocabulary")
	}
	names, err := corpus.LoadCategoryNames(in.CategoryNames)
	if err != nil {
		return nil, errors.Wrap(err, "load category names")
	}
	train, err := loadDataset(config.Train, in.TrainLabels, in.TrainData)
	if err != nil {
		return nil, err
	}
	test, err := loadDataset(config.Test, in.TestLabels, in.TestData)
	if err != nil {
		return nil, err
	}

	// train and persist every smoothing variant
	counts := model.Estimate(train.data, train.labels.Membership(), vocab)
	variants := model.Smoothers()
	for _, name := range variants {
		s, err := model.GetSmoother(name)
		if err != nil {
			return nil, err
		}
		if err := sstable.WriteTable(counts.Table(s), cfg.ModelPath(name)); err != nil {
			return nil, errors.Wrapf(err, "write %s model", name)
		}
	}

	priors := model.Priors(train.labels)
	log.Infof("priors sum to %.6f", priors.Sum())
	for i, id := range priors.Categories.IDs() {
		if _, err := fmt.Fprintf(out, "P(Omega = %d) = %.4f\n", id, priors.Probs[i]); err != nil {
			return nil, err
		}
	}

	result := &Result{Priors: priors}
	for _, ds := range []*dataset{train, test} {
		for _, variant := range variants {
			probs, err := sstable.ReadTable(cfg.ModelPath(variant), priors.Categories, uint32(vocab.Size()))
			if err != nil {
				return nil, errors.Wrapf(err, "read %s model", variant)
			}

			predictions := classifier.Predict(vocab, priors, ds.data, probs, ds.labels.Len())
			if err := sstable.WritePredictions(predictions.Categories,
				cfg.PredictionPath(ds.name, variant)); err != nil {
				return nil, errors.Wrapf(err, "write %s %s predictions", ds.name, variant)
			}

			report := eval.Evaluate(ds.labels.Membership(), ds.labels, predictions)
			log.Infof("%s/%s accuracy %.4f", ds.name, variant, report.Accuracy())
			if _, err := fmt.Fprintf(out, "\n%s Data Statistics(%s):\n",
				title(ds.name), strings.ToUpper(variant)); err != nil {
				return nil, err
			}
			if err := report.Write(out, names); err != nil {
				return nil, err
			}

			result.Runs = append(result.Runs, &Run{
				Dataset:     ds.name,
				Variant:     variant,
				Predictions: predictions,
				Report:      report,
			})
		}
	}
	return result, nil
}

func loadDataset(name, labelPath, dataPath string) (*dataset, error) {
	labels, err := corpus.LoadLabels(labelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s labels", name)
	}
	data, err := corpus.LoadCorpus(dataPath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s data", name)
	}
	if int(data.DocNum) > labels.Len() {
		log.Warningf("%s: %d documents in %s but only %d labels",
			name, data.DocNum, dataPath, labels.Len())
	}
	return &dataset{name: name, labels: labels, data: data}, nil
}

func title(dataset string) string {
	if dataset == config.Train {
		return "Training"
	}
	return "Test"
}
