// Package game keeps the in-memory bookkeeping for one word-chain session
// between a player and the engine. It holds no persistence and no
// multi-session orchestration; the rules live in pkg/chain.
package game

import (
	"errors"

	"github.com/phamduc/noitu/pkg/chain"
	"github.com/phamduc/noitu/pkg/dict"
)

var (
	// ErrStarted is returned by Start on a session that already has moves.
	ErrStarted = errors.New("game: session already started")
	// ErrOver is returned by Submit once the session has ended.
	ErrOver = errors.New("game: session is over")
	// ErrNoOpening is returned by Start when the dictionary yields no
	// opening move.
	ErrNoOpening = errors.New("game: no opening move available")
)

// Game tracks one session: the move history and the used-pair set fed
// back into the engine on every turn.
type Game struct {
	selector *chain.Selector
	matcher  *chain.Matcher
	history  []chain.WordPair
	used     map[string]struct{}
	over     bool
}

// New builds a session over d. Options are forwarded to the selector, so
// a seeded random source makes the whole session reproducible.
func New(d dict.Dictionary, opts ...chain.Option) *Game {
	s := chain.NewSelector(d, opts...)
	return &Game{
		selector: s,
		matcher:  s.Matcher(),
		used:     make(map[string]struct{}),
	}
}

// Turn is the outcome of one player submission.
type Turn struct {
	// Player is the submitted pair, set when the input parsed.
	Player chain.WordPair
	// Validation reports why the submission was rejected, if it was.
	Validation chain.ValidationResult
	// Reply is the engine's answer to an accepted submission.
	Reply chain.NextWordResult
	// Over is true when the engine found no reply; the player has won.
	Over bool
}

// Start has the engine play the opening pair.
func (g *Game) Start() (chain.WordPair, error) {
	if len(g.history) > 0 {
		return chain.WordPair{}, ErrStarted
	}
	res := g.selector.FirstWord()
	if !res.Found {
		return chain.WordPair{}, ErrNoOpening
	}
	g.record(res.Word)
	return res.Word, nil
}

// Submit plays the player's raw input. Rule violations come back in
// Turn.Validation; only submitting into a finished session is an error.
func (g *Game) Submit(input string) (Turn, error) {
	if g.over {
		return Turn{}, ErrOver
	}

	res := g.matcher.ValidateWord(input, g.used)
	if !res.Valid {
		return Turn{Validation: res}, nil
	}
	pair, _ := g.matcher.ValidateFormat(input) // valid word implies valid format

	if res := g.matcher.ValidateConnection(g.last(), pair); !res.Valid {
		return Turn{Player: pair, Validation: res}, nil
	}
	g.record(pair)

	reply := g.selector.NextWord(&pair, g.history)
	turn := Turn{
		Player:     pair,
		Validation: chain.ValidationResult{Valid: true},
		Reply:      reply,
	}
	if !reply.Found {
		g.over = true
		turn.Over = true
		return turn, nil
	}
	g.record(reply.Word)
	return turn, nil
}

// History returns a copy of the moves played so far, in order.
func (g *Game) History() []chain.WordPair {
	out := make([]chain.WordPair, len(g.history))
	copy(out, g.history)
	return out
}

// CanContinue reports whether the session has a playable next move.
func (g *Game) CanContinue() bool {
	return !g.over && g.selector.CanContinue(g.last(), g.history)
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

func (g *Game) last() *chain.WordPair {
	if len(g.history) == 0 {
		return nil
	}
	return &g.history[len(g.history)-1]
}

func (g *Game) record(p chain.WordPair) {
	g.history = append(g.history, p)
	g.used[p.Key()] = struct{}{}
}
