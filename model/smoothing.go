package model

const (
	BayesianEstimate          = "be"
	MaximumLikelihoodEstimate = "mle"
)

func init() {
	Register(BayesianEstimate, Laplace{})
	Register(MaximumLikelihoodEstimate, MaximumLikelihood{})
}

// Laplace is the add-one (Bayesian estimate) smoother:
// (count + 1) / (total + V)
type Laplace struct{}

func (Laplace) Name() string { return BayesianEstimate }

func (Laplace) Prob(count, total uint64, vocabSize uint32) float64 {
	return float64(count+1) / float64(total+uint64(vocabSize))
}

// MaximumLikelihood is the unsmoothed relative frequency
// count / total. Unseen words get exactly 0.
type MaximumLikelihood struct{}

func (MaximumLikelihood) Name() string { return MaximumLikelihoodEstimate }

func (MaximumLikelihood) Prob(count, total uint64, _ uint32) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total)
}
