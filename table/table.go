package table

import (
	"gonum.org/v1/gonum/floats"

	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/matrix"
)

// ProbabilityTable stores P(word | category) for every category
// and every word of the vocabulary. Rows are category indices,
// columns are word ids minus one.
type ProbabilityTable struct {
	Categories *corpus.Categories
	VocabSize  uint32
	prob       *matrix.Float64Matrix
}

func NewProbabilityTable(cats *corpus.Categories, vocabSize uint32) *ProbabilityTable {
	return &ProbabilityTable{
		Categories: cats,
		VocabSize:  vocabSize,
		prob:       matrix.NewFloat64Matrix(uint32(cats.Len()), vocabSize),
	}
}

// set the probability of 1-based wordId in category index c
func (t *ProbabilityTable) Set(c int, wordId uint32, p float64) {
	t.prob.Set(uint32(c), wordId-1, p)
}

// Get returns the probability of wordId in category index c and
// whether the table has an entry for it
func (t *ProbabilityTable) Get(c int, wordId uint32) (float64, bool) {
	if wordId == 0 || wordId > t.VocabSize {
		return 0, false
	}
	if !t.prob.Has(uint32(c), wordId-1) {
		return 0, false
	}
	return t.prob.Get(uint32(c), wordId-1), true
}

// Factor is the multiplier wordId contributes to a score of category
// index c. Missing entries are neutral.
func (t *ProbabilityTable) Factor(c int, wordId uint32) float64 {
	if p, ok := t.Get(c, wordId); ok {
		return p
	}
	return 1.0
}

// RowSum sums the probabilities of category index c over the vocabulary
func (t *ProbabilityTable) RowSum(c int) float64 {
	return floats.Sum(t.prob.GetRow(uint32(c)))
}

// PriorTable stores P(category) indexed like Categories
type PriorTable struct {
	Categories *corpus.Categories
	Probs      []float64
}

// Prior returns the prior of category id and false when the id is unknown
func (p *PriorTable) Prior(id int) (float64, bool) {
	idx, ok := p.Categories.Index(id)
	if !ok {
		return 0, false
	}
	return p.Probs[idx], true
}

// sum of all priors, 1 up to rounding
func (p *PriorTable) Sum() float64 {
	return floats.Sum(p.Probs)
}
