package classifier

import (
	"sort"

	log "github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/table"
)

// Classifier scores documents against every category of a prior
// table. Scores are exact decimals so that long products of small
// probabilities never underflow before they are compared.
type Classifier struct {
	vocab  *corpus.Vocabulary
	priors *table.PriorTable
	probs  *table.ProbabilityTable

	prior []decimal.Decimal
	// prior category index -> row of probs, -1 when probs has no row
	rows []int
	// prior category indices by ascending category id
	order []int
}

func New(vocab *corpus.Vocabulary, priors *table.PriorTable, probs *table.ProbabilityTable) *Classifier {
	n := priors.Categories.Len()
	c := &Classifier{
		vocab:  vocab,
		priors: priors,
		probs:  probs,
		prior:  make([]decimal.Decimal, n),
		rows:   make([]int, n),
		order:  make([]int, n),
	}
	for i := 0; i < n; i += 1 {
		c.prior[i] = decimal.NewFromFloat(priors.Probs[i])
		c.order[i] = i
		if row, ok := probs.Categories.Index(priors.Categories.ID(i)); ok {
			c.rows[i] = row
		} else {
			log.Warningf("category %d has no probabilities, its words are neutral",
				priors.Categories.ID(i))
			c.rows[i] = -1
		}
	}
	sort.Slice(c.order, func(a, b int) bool {
		return priors.Categories.ID(c.order[a]) < priors.Categories.ID(c.order[b])
	})
	return c
}

// Score returns the score of doc for every prior category index.
// The first vocabulary word seeds the score with prior * count,
// every following vocabulary word multiplies it by P(word | category).
// Words outside the vocabulary are skipped. A document without
// vocabulary words scores its priors.
func (this *Classifier) Score(doc []corpus.WordCount) []decimal.Decimal {
	scores := make([]decimal.Decimal, len(this.prior))
	seeded := false
	for _, wc := range doc {
		if !this.vocab.Contains(wc.WordId) {
			continue
		}
		if !seeded {
			count := decimal.NewFromInt(int64(wc.Count))
			for i := range scores {
				scores[i] = this.prior[i].Mul(count)
			}
			seeded = true
			continue
		}
		for i := range scores {
			if this.rows[i] < 0 {
				continue
			}
			p := this.probs.Factor(this.rows[i], wc.WordId)
			if p == 1.0 {
				continue
			}
			scores[i] = scores[i].Mul(decimal.NewFromFloat(p))
		}
	}
	if !seeded {
		copy(scores, this.prior)
	}
	return scores
}

// Classify returns the category id with the highest score,
// ties go to the lowest category id
func (this *Classifier) Classify(doc []corpus.WordCount) int {
	scores := this.Score(doc)
	best := -1
	for _, i := range this.order {
		if best < 0 || scores[i].GreaterThan(scores[best]) {
			best = i
		}
	}
	return this.priors.Categories.ID(best)
}

// Predict classifies documents 1..numDocs of data, documents
// missing from data have no words
func (this *Classifier) Predict(data *corpus.Corpus, numDocs int) *Predictions {
	p := &Predictions{Categories: make([]int, numDocs)}
	for d := 1; d <= numDocs; d += 1 {
		p.Categories[d-1] = this.Classify(data.Doc(d))
		if d%1000 == 0 {
			log.V(1).Infof("classified %d of %d documents", d, numDocs)
		}
	}
	return p
}

// Predict builds a classifier and runs it over the documents of data.
// If numDocs is smaller than the highest document id of data, all
// documents of data are classified.
func Predict(vocab *corpus.Vocabulary, priors *table.PriorTable, data *corpus.Corpus,
	probs *table.ProbabilityTable, numDocs int) *Predictions {
	if n := int(data.DocNum); n > numDocs {
		numDocs = n
	}
	return New(vocab, priors, probs).Predict(data, numDocs)
}

// Predictions maps document ids to predicted category ids,
// Categories[i] being the prediction of document i+1
type Predictions struct {
	Categories []int
}

func (p *Predictions) Len() int {
	return len(p.Categories)
}

// Category returns the prediction of the 1-based document id
func (p *Predictions) Category(docId int) (int, bool) {
	if docId < 1 || docId > len(p.Categories) {
		return 0, false
	}
	return p.Categories[docId-1], true
}
