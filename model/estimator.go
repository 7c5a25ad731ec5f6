package model

import (
	log "github.com/golang/glog"

	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/matrix"
	"github.com/bobonovski/gonb/table"
	"github.com/bobonovski/gonb/util"
)

// Counts are the sufficient statistics of a multinomial
// naive bayes model
type Counts struct {
	Categories *corpus.Categories
	VocabSize  uint32
	// [c, w]-th element counts how many times word w+1
	// occurs in the documents of category index c
	WordTotal *matrix.Uint32Matrix
	// [c]-th element is the number of word occurrences of
	// category index c, i.e. the sum of row c of WordTotal
	Total []uint64
	// occurrences of words outside the vocabulary, they take
	// no part in the model
	Skipped uint64
}

// Estimate aggregates the per document word counts into per
// category word totals
func Estimate(data *corpus.Corpus, members *corpus.Membership, vocab *corpus.Vocabulary) *Counts {
	cats := members.Categories()
	vocabSize := uint32(vocab.Size())
	counts := &Counts{
		Categories: cats,
		VocabSize:  vocabSize,
		WordTotal:  matrix.NewUint32Matrix(uint32(cats.Len()), vocabSize),
		Total:      make([]uint64, cats.Len()),
	}

	for c := 0; c < cats.Len(); c += 1 {
		for _, doc := range members.Docs(c) {
			for _, wc := range data.Doc(doc) {
				if !vocab.Contains(wc.WordId) {
					counts.Skipped += uint64(wc.Count)
					continue
				}
				counts.WordTotal.Incr(uint32(c), wc.WordId-1, wc.Count)
			}
		}
		counts.Total[c] = util.VectorSum(counts.WordTotal.GetRow(uint32(c)))
		log.V(1).Infof("category %d: %d documents, %d word occurrences",
			cats.ID(c), len(members.Docs(c)), counts.Total[c])
	}

	if counts.Skipped > 0 {
		log.Warningf("%d word occurrences outside the vocabulary were ignored", counts.Skipped)
	}
	return counts
}

// Table applies s to every (category, word) pair of the full vocabulary
func (this *Counts) Table(s Smoother) *table.ProbabilityTable {
	t := table.NewProbabilityTable(this.Categories, this.VocabSize)
	for c := 0; c < this.Categories.Len(); c += 1 {
		for w := uint32(0); w < this.VocabSize; w += 1 {
			count := uint64(this.WordTotal.Get(uint32(c), w))
			t.Set(c, w+1, s.Prob(count, this.Total[c], this.VocabSize))
		}
	}
	return t
}

// EstimateTables builds the Bayesian estimate and the maximum
// likelihood estimate tables in one pass over the data
func EstimateTables(data *corpus.Corpus, members *corpus.Membership,
	vocab *corpus.Vocabulary) (be, mle *table.ProbabilityTable) {
	counts := Estimate(data, members, vocab)
	return counts.Table(Laplace{}), counts.Table(MaximumLikelihood{})
}

// Priors computes P(category) as the share of labeled documents
// in every category
func Priors(labels *corpus.Labels) *table.PriorTable {
	counts := labels.Counts()
	probs := make([]float64, len(counts))
	for c, n := range counts {
		probs[c] = float64(n) / float64(labels.Len())
	}
	return &table.PriorTable{
		Categories: labels.Categories(),
		Probs:      probs,
	}
}
