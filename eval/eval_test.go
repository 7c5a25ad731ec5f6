package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/gonb/classifier"
	"github.com/bobonovski/gonb/corpus"
)

func sampleReport() *Report {
	labels := corpus.NewLabels(2, 1, 2, 3, 1, 2)
	predictions := &classifier.Predictions{Categories: []int{2, 2, 1, 3, 1, 4}}
	return Evaluate(labels.Membership(), labels, predictions)
}

func TestEvaluateAccuracy(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, 6, r.Total)
	assert.Equal(t, 3, r.Matched)
	assert.Equal(t, 0.5, r.Accuracy())
	// diagonal over total is an independent path to the same number
	assert.Equal(t, r.Accuracy(), r.Confusion.Accuracy())

	assert.Equal(t, []ClassAccuracy{
		{Category: 2, Matched: 1, Total: 3},
		{Category: 1, Matched: 1, Total: 2},
		{Category: 3, Matched: 1, Total: 1},
	}, r.Classes)
}

func TestConfusionMatrix(t *testing.T) {
	r := sampleReport()
	m := r.Confusion

	// predicted only categories are appended after the true ones
	assert.Equal(t, []int{2, 1, 3, 4}, m.Categories.IDs())

	assert.Equal(t, []uint32{1, 1, 0, 1}, m.Row(0))
	assert.Equal(t, []uint32{1, 1, 0, 0}, m.Row(1))
	assert.Equal(t, []uint32{0, 0, 1, 0}, m.Row(2))
	assert.Equal(t, []uint32{0, 0, 0, 0}, m.Row(3))

	// rows add up to the true counts, columns to the predictions
	assert.Equal(t, 3, m.RowSum(0))
	assert.Equal(t, 2, m.RowSum(1))
	assert.Equal(t, 1, m.RowSum(2))
	assert.Equal(t, 2, m.ColSum(0))
	assert.Equal(t, 2, m.ColSum(1))
	assert.Equal(t, 1, m.ColSum(2))
	assert.Equal(t, 1, m.ColSum(3))
}

func TestEvaluateMissingPredictions(t *testing.T) {
	labels := corpus.NewLabels(1, 1, 2)
	predictions := &classifier.Predictions{Categories: []int{1}}

	r := Evaluate(labels.Membership(), labels, predictions)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 1, r.Matched)
	assert.Equal(t, 1, r.Confusion.RowSum(0))
	assert.Equal(t, 0, r.Confusion.RowSum(1))
	assert.Equal(t, 1.0, r.Confusion.Accuracy())
}

func TestClassAccuracyGuard(t *testing.T) {
	_, ok := ClassAccuracy{Category: 1}.Accuracy()
	assert.False(t, ok)

	r := &Report{Confusion: newConfusion(corpus.NewCategories(1))}
	assert.Equal(t, 0.0, r.Accuracy())
	assert.Equal(t, 0.0, r.Confusion.Accuracy())
}

func TestReportWrite(t *testing.T) {
	r := sampleReport()
	r.Classes = append(r.Classes, ClassAccuracy{Category: 4})
	var buf bytes.Buffer

	require.NoError(t, r.Write(&buf, map[int]string{1: "alt.atheism"}))

	assert.Equal(t,
		"Overall Accuracy = 0.5000\n"+
			"Class Accuracy:\n"+
			"\tGroup 2: 0.3333\n"+
			"\tGroup 1: 0.5000 (alt.atheism)\n"+
			"\tGroup 3: 1.0000\n"+
			"\tGroup 4: n/a\n"+
			"Confusion Matrix:\n"+
			"\t2\t1\t3\t4\n"+
			"2\t1\t1\t0\t1\n"+
			"1\t1\t1\t0\t0\n"+
			"3\t0\t0\t1\t0\n"+
			"4\t0\t0\t0\t0\n",
		buf.String())
}
