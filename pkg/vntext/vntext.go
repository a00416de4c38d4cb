// Package vntext provides the accent-insensitive text normalization used
// for Vietnamese syllable comparison.
package vntext

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripPool hands out NFD → remove combining marks (Mn) → NFC pipelines.
// Transformers carry state, so concurrent callers each borrow their own.
var stripPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// đ is a distinct base letter, not d plus a diacritic, so mark stripping
// alone never folds it.
var foldD = strings.NewReplacer("đ", "d", "Đ", "D")

// Normalize strips combining diacritics and folds đ/Đ to d/D. Case is
// preserved. It is idempotent and never fails; strings without Vietnamese
// accents pass through unchanged.
func Normalize(s string) string {
	t := stripPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		stripPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return foldD.Replace(out)
}

// Fold lowercases and normalizes, yielding the comparison key for
// accent-insensitive syllable equality.
func Fold(s string) string {
	return Normalize(strings.ToLower(s))
}
