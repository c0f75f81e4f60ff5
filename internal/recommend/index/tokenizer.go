package index

import "github.com/vantagelabs/accel-recommender/internal/utils"

// Tokenize folds text to lowercase ASCII-ish terms, splits on
// punctuation and drops stopwords.
func Tokenize(text string) []string {
	fields := utils.FoldFields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if isStopword(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
