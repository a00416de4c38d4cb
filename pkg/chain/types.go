// Package chain implements the rule engine for the Vietnamese two-syllable
// word-chain game: format and dictionary validation, pair connection
// checks, and next-move selection.
package chain

import "github.com/phamduc/noitu/pkg/vntext"

// WordPair is one move: an ordered (first, second) syllable tuple.
type WordPair struct {
	First  string
	Second string
}

// Key returns the normalized history key for the pair. Both syllables are
// lowercased and diacritic-folded, joined with a hyphen; a hyphen cannot
// appear inside a normalized syllable.
func (p WordPair) Key() string {
	return vntext.Fold(p.First) + "-" + vntext.Fold(p.Second)
}

func (p WordPair) String() string {
	return p.First + " " + p.Second
}

// Reason identifies why a submission was rejected.
type Reason string

const (
	ReasonInvalidFormat Reason = "invalid_format"
	ReasonWordNotFound  Reason = "word_not_found"
	ReasonWordUsed      Reason = "word_used"
	ReasonNoConnection  Reason = "no_connection"
	// ReasonInvalidCharacters is reserved; character-class failures are
	// currently reported as ReasonInvalidFormat.
	ReasonInvalidCharacters Reason = "invalid_characters"
)

// ValidationResult reports the outcome of a rule check. Messages are in
// Vietnamese, intended for end-user display.
type ValidationResult struct {
	Valid   bool
	Reason  Reason
	Message string
}

func validResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalidResult(reason Reason, message string) ValidationResult {
	return ValidationResult{Reason: reason, Message: message}
}

// NextWordResult reports the outcome of a move search. When Found is
// false and Alternatives is non-empty, legal candidates existed but every
// one was already used. When Found is true, Alternatives previews up to
// five available moves; the chosen Word may or may not be among them.
type NextWordResult struct {
	Found        bool
	Word         WordPair
	Alternatives []WordPair
}
