package model

import (
	"sort"

	"github.com/pkg/errors"
)

var smoothers = make(map[string]Smoother)

// Smoother turns word counts into a conditional probability
// P(word | category)
type Smoother interface {
	// short name used in artifact names and reports
	Name() string
	// probability of a word seen count times in a category
	// holding total word occurrences
	Prob(count, total uint64, vocabSize uint32) float64
}

// new smoothing variants should register themselves using this function
func Register(name string, s Smoother) {
	smoothers[name] = s
}

func GetSmoother(name string) (Smoother, error) {
	s, ok := smoothers[name]
	if !ok {
		return nil, errors.Errorf("smoother %s not registered", name)
	}
	return s, nil
}

// Smoothers returns the registered names in sorted order
func Smoothers() []string {
	names := make([]string, 0, len(smoothers))
	for name := range smoothers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
