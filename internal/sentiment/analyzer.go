// Package sentiment attaches a text polarity score and label to employee
// feedback. The scoring backend sits behind the Scorer interface so the data
// model does not depend on any particular text-analysis implementation.
package sentiment

import (
	"github.com/jonreiter/govader"

	"perfpulse/pkg/contracts/domain"
)

// Label thresholds on the polarity score. Scores strictly above the positive
// threshold are Positive, strictly below the negative one are Negative.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Scorer estimates the polarity of a piece of text in [-1, 1].
type Scorer interface {
	Score(text string) float64
}

// VaderScorer scores text with the VADER lexicon model.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a VADER-backed scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text.
func (s *VaderScorer) Score(text string) float64 {
	if text == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}

// Label buckets a polarity score into Positive, Neutral or Negative.
func Label(score float64) string {
	switch {
	case score > positiveThreshold:
		return domain.SentimentPositive
	case score < negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
