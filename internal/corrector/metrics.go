package corrector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSkipped   = "skipped"
	resultKnown     = "known"
	resultCorrected = "corrected"
	resultUnchanged = "unchanged"
)

// wordsTotal counts word tokens by what the corrector did with them
var wordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "autocorrect_words_total",
	Help: "Word tokens processed by outcome",
}, []string{"result"})
