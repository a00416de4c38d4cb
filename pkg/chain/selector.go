package chain

import (
	"math/rand"

	"github.com/phamduc/noitu/pkg/dict"
)

const (
	// maxAlternatives caps the preview list attached to a found move.
	maxAlternatives = 5
	// firstMoveDraws is how many random draws seed the opening move list.
	firstMoveDraws = 10
)

// Rand yields a uniform random index in [0, n). *rand.Rand satisfies it;
// inject a seeded source for reproducible selection.
type Rand interface {
	Intn(n int) int
}

// globalRand draws from the locked package-level source in math/rand,
// which is safe for concurrent callers.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Selector picks moves for non-player turns. It owns a Matcher over the
// same dictionary and holds no per-game state; history is supplied by the
// caller on every call.
type Selector struct {
	matcher *Matcher
	rng     Rand
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand replaces the random source used for move selection.
func WithRand(rng Rand) Option {
	return func(s *Selector) { s.rng = rng }
}

// NewSelector builds a Selector and its Matcher from d.
func NewSelector(d dict.Dictionary, opts ...Option) *Selector {
	s := &Selector{
		matcher: NewMatcher(d),
		rng:     globalRand{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Matcher exposes the selector's underlying matcher for validation calls
// against the same dictionary.
func (s *Selector) Matcher() *Matcher {
	return s.matcher
}

// FirstWord picks an opening pair: one uniform random key, then one
// uniform random value of that key. A key with no values yields not-found
// for this call; there is no retry with another key.
func (s *Selector) FirstWord() NextWordResult {
	keys := s.matcher.keys
	if len(keys) == 0 {
		return NextWordResult{}
	}
	k := keys[s.rng.Intn(len(keys))]
	vals := s.matcher.dict[k]
	if len(vals) == 0 {
		return NextWordResult{}
	}
	return NextWordResult{
		Found: true,
		Word:  WordPair{First: k, Second: vals[s.rng.Intn(len(vals))]},
	}
}

// NextWord picks a reply to current, excluding every candidate whose
// normalized pair key appears in history. A nil current delegates to
// FirstWord. When candidates exist but history exhausts them all, the
// result is not-found with the full pre-filter candidate set attached.
func (s *Selector) NextWord(current *WordPair, history []WordPair) NextWordResult {
	if current == nil {
		return s.FirstWord()
	}
	candidates := s.matcher.PossibleNextWords(current.Second)
	if len(candidates) == 0 {
		return NextWordResult{}
	}
	available := excludeUsed(candidates, history)
	if len(available) == 0 {
		return NextWordResult{Alternatives: candidates}
	}
	alternatives := available
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return NextWordResult{
		Found:        true,
		Word:         available[s.rng.Intn(len(available))],
		Alternatives: alternatives,
	}
}

// AllMoves returns every move playable from current given history. With a
// nil current it instead samples up to firstMoveDraws opening pairs with
// replacement, so the list may repeat pairs or come up short when drawn
// keys have no values.
func (s *Selector) AllMoves(current *WordPair, history []WordPair) []WordPair {
	if current != nil {
		return excludeUsed(s.matcher.PossibleNextWords(current.Second), history)
	}
	keys := s.matcher.keys
	if len(keys) == 0 {
		return nil
	}
	moves := make([]WordPair, 0, firstMoveDraws)
	for i := 0; i < firstMoveDraws; i++ {
		k := keys[s.rng.Intn(len(keys))]
		vals := s.matcher.dict[k]
		if len(vals) == 0 {
			continue
		}
		moves = append(moves, WordPair{First: k, Second: vals[s.rng.Intn(len(vals))]})
	}
	return moves
}

// CanContinue reports whether any move is playable from current.
func (s *Selector) CanContinue(current *WordPair, history []WordPair) bool {
	return len(s.AllMoves(current, history)) > 0
}

// excludeUsed drops candidates whose normalized pair key matches any
// history entry.
func excludeUsed(candidates, history []WordPair) []WordPair {
	if len(history) == 0 {
		return candidates
	}
	used := make(map[string]struct{}, len(history))
	for _, h := range history {
		used[h.Key()] = struct{}{}
	}
	out := make([]WordPair, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := used[c.Key()]; !ok {
			out = append(out, c)
		}
	}
	return out
}
