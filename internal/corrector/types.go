package corrector

// Candidate is one ranked vocabulary match for a query.
type Candidate struct {
	Term      string `json:"term"`
	Distance  int    `json:"distance"`
	Frequency int64  `json:"frequency"`
}

// DecisionReplaced marks a token that was swapped for its top candidate.
// Known and uncorrectable tokens get no SuggestionInfo at all.
const DecisionReplaced = "replaced"

type SuggestionInfo struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
	Decision    string   `json:"decision"`
}

type CorrectionResult struct {
	Original    string                 `json:"original"`
	Corrected   string                 `json:"corrected"`
	Suggestions map[int]SuggestionInfo `json:"suggestions"`
}
