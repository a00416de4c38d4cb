package chain

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/phamduc/noitu/pkg/dict"
	"github.com/phamduc/noitu/pkg/vntext"
)

const (
	msgInvalidFormat = "Từ phải gồm đúng 2 chữ cách nhau bởi dấu cách"
	msgWordUsed      = "Từ này đã được sử dụng trong game"
)

// syllableRe is the allowed character class for one syllable: ASCII
// letters plus the full Vietnamese accented letter set, both cases.
var syllableRe = regexp.MustCompile(`^[a-zA-Z ` +
	`àáảãạăằắẳẵặâầấẩẫậèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵđ` +
	`ÀÁẢÃẠĂẰẮẲẴẶÂẦẤẨẪẬÈÉẺẼẸÊỀẾỂỄỆÌÍỈĨỊÒÓỎÕỌÔỒỐỔỖỘƠỜỚỞỠỢÙÚỦŨỤƯỪỨỬỮỰỲÝỶỸỴĐ]+$`)

// Matcher answers validation and lookup queries over one dictionary. It
// keeps the raw dictionary for display-quality results and a normalized
// index for accent-insensitive lookups. Construction is the only write;
// all queries are read-only and safe for concurrent callers.
type Matcher struct {
	dict dict.Dictionary
	keys []string // sorted original keys, the stable scan order

	// index maps the folded first syllable to the lowercased second
	// syllables. Accents on the second syllable stay significant:
	// dictionary data may accent first syllables inconsistently, but a
	// second syllable's accents are part of its identity.
	index map[string][]string

	// origKeys maps a folded first syllable back to the original keys
	// that produced it, in scan order.
	origKeys map[string][]string
}

// NewMatcher builds the normalized index over d. Distinct original keys
// that fold to the same form have their value lists concatenated.
func NewMatcher(d dict.Dictionary) *Matcher {
	m := &Matcher{
		dict:     d,
		keys:     d.Keys(),
		index:    make(map[string][]string, len(d)),
		origKeys: make(map[string][]string, len(d)),
	}
	for _, k := range m.keys {
		folded := vntext.Fold(k)
		if prev, ok := m.origKeys[folded]; ok {
			slog.Warn("dictionary keys collide after normalization, merging",
				"key", k, "collides_with", prev[0], "normalized", folded)
		}
		m.origKeys[folded] = append(m.origKeys[folded], k)
		for _, v := range d[k] {
			m.index[folded] = append(m.index[folded], strings.ToLower(v))
		}
	}
	return m
}

// ValidateFormat checks that input is exactly two whitespace-separated
// syllables of Vietnamese letters. On success it returns the pair as
// authored, with casing and diacritics intact.
func (m *Matcher) ValidateFormat(input string) (WordPair, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return WordPair{}, false
	}
	tokens := strings.Fields(trimmed)
	if len(tokens) != 2 {
		return WordPair{}, false
	}
	for _, tok := range tokens {
		if !syllableRe.MatchString(tok) {
			return WordPair{}, false
		}
	}
	return WordPair{First: tokens[0], Second: tokens[1]}, true
}

// Contains reports whether (first, second) is a dictionary pair. The
// first syllable is matched accent-insensitively; the second syllable is
// lowercased but its accents must match exactly.
func (m *Matcher) Contains(first, second string) bool {
	target := strings.ToLower(second)
	for _, v := range m.index[vntext.Fold(first)] {
		if v == target {
			return true
		}
	}
	return false
}

// ValidateWord runs the full submission check: format, dictionary
// membership, then reuse against the caller-supplied set of used pair
// keys (see WordPair.Key). A nil used set skips the reuse check.
func (m *Matcher) ValidateWord(input string, used map[string]struct{}) ValidationResult {
	pair, ok := m.ValidateFormat(input)
	if !ok {
		return invalidResult(ReasonInvalidFormat, msgInvalidFormat)
	}
	if !m.Contains(pair.First, pair.Second) {
		return invalidResult(ReasonWordNotFound,
			fmt.Sprintf("Từ %q không có trong từ điển", pair.String()))
	}
	if _, reused := used[pair.Key()]; reused {
		return invalidResult(ReasonWordUsed, msgWordUsed)
	}
	return validResult()
}

// CanConnect reports whether b may follow a: a's second syllable must
// equal b's first syllable under accent-insensitive comparison.
func (m *Matcher) CanConnect(a, b WordPair) bool {
	return vntext.Fold(a.Second) == vntext.Fold(b.First)
}

// ValidateConnection checks that next may follow current. A nil current
// means game start, which any pair may open.
func (m *Matcher) ValidateConnection(current *WordPair, next WordPair) ValidationResult {
	if current == nil {
		return validResult()
	}
	if m.CanConnect(*current, next) {
		return validResult()
	}
	return invalidResult(ReasonNoConnection,
		fmt.Sprintf("Từ %q không nối được với %q", next.String(), current.Second))
}

// PossibleNextWords returns every dictionary pair whose first syllable
// folds equal to ending. Pairs carry the original dictionary spelling,
// not the normalized form, and follow the stable scan order. Duplicates
// appear when colliding keys or repeated values exist in the source.
func (m *Matcher) PossibleNextWords(ending string) []WordPair {
	var out []WordPair
	for _, k := range m.origKeys[vntext.Fold(ending)] {
		for _, v := range m.dict[k] {
			out = append(out, WordPair{First: k, Second: v})
		}
	}
	return out
}
