package analyzer

// stopWords is the fixed set of common English function words excluded from
// keyword extraction. Tokens in this set never count as keywords no matter
// how often they appear.
//
// Design decision: This is a process-wide static constant. We keep it small
// and English-only on purpose; localization is out of scope.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "shall": {},
}

// isStopWord reports whether the token is in the stop-word set.
func isStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
