package eval

import (
	log "github.com/golang/glog"

	"github.com/bobonovski/gonb/classifier"
	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/matrix"
)

// Report summarizes how well predictions match the true labels
type Report struct {
	Total   int
	Matched int
	// one entry per category of the membership, in discovery order
	Classes   []ClassAccuracy
	Confusion *Confusion
}

type ClassAccuracy struct {
	Category int
	Matched  int
	Total    int
}

// Accuracy returns matched / total and false when the category has
// no documents
func (c ClassAccuracy) Accuracy() (float64, bool) {
	if c.Total == 0 {
		return 0, false
	}
	return float64(c.Matched) / float64(c.Total), true
}

// Accuracy is the share of documents whose prediction equals their label
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Matched) / float64(r.Total)
}

// Confusion counts documents by true category (rows) and predicted
// category (columns). Both axes share the same category order.
type Confusion struct {
	Categories *corpus.Categories
	counts     matrix.Matrix
}

func newConfusion(cats *corpus.Categories) *Confusion {
	return &Confusion{
		Categories: cats,
		counts:     matrix.NewUint32Matrix(uint32(cats.Len()), uint32(cats.Len())),
	}
}

// Get returns the number of documents of true category index r
// predicted as category index c
func (m *Confusion) Get(r, c int) int {
	return int(m.counts.Get(uint32(r), uint32(c)))
}

func (m *Confusion) Row(r int) []uint32 {
	return m.counts.GetRow(uint32(r))
}

func (m *Confusion) RowSum(r int) int {
	sum := 0
	for c := 0; c < m.Categories.Len(); c += 1 {
		sum += m.Get(r, c)
	}
	return sum
}

func (m *Confusion) ColSum(c int) int {
	sum := 0
	for r := 0; r < m.Categories.Len(); r += 1 {
		sum += m.Get(r, c)
	}
	return sum
}

// Accuracy is the diagonal over the total of the matrix
func (m *Confusion) Accuracy() float64 {
	diag, total := 0, 0
	for r := 0; r < m.Categories.Len(); r += 1 {
		diag += m.Get(r, r)
		total += m.RowSum(r)
	}
	if total == 0 {
		return 0
	}
	return float64(diag) / float64(total)
}

// Evaluate compares predictions with the true labels. Rows and columns
// of the confusion matrix follow the category order of members, with
// categories that are only ever predicted appended at the end.
func Evaluate(members *corpus.Membership, labels *corpus.Labels, predictions *classifier.Predictions) *Report {
	cats := corpus.NewCategories(members.Categories().IDs()...)
	for _, p := range predictions.Categories {
		cats.Add(p)
	}

	r := &Report{Confusion: newConfusion(cats)}

	for d := 1; d <= labels.Len(); d += 1 {
		truth, _ := labels.Category(d)
		r.Total += 1
		if p, ok := predictions.Category(d); ok && p == truth {
			r.Matched += 1
		}
	}

	missing := 0
	for row := 0; row < members.Categories().Len(); row += 1 {
		class := ClassAccuracy{Category: cats.ID(row)}
		for _, d := range members.Docs(row) {
			class.Total += 1
			p, ok := predictions.Category(d)
			if !ok {
				missing += 1
				continue
			}
			col, _ := cats.Index(p)
			r.Confusion.counts.Incr(uint32(row), uint32(col), 1)
			if col == row {
				class.Matched += 1
			}
		}
		r.Classes = append(r.Classes, class)
	}
	if missing > 0 {
		log.Warningf("%d documents have no prediction", missing)
	}
	return r
}
