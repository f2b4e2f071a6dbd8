// Package title normalizes story headlines and derives the fingerprint used
// for title/date duplicate matching.
package title

import (
	"crypto/md5"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"story_ingester/internal/language"
)

// Separators feeds put between a headline and the publication name.
var mediaSeparators = []string{":", " - ", " | ", " — ", " – "}

// Normalize lowercases title, folds accents, strips a leading or trailing
// media name segment and reduces the rest to single-space separated words.
func Normalize(title, mediaName string) string {
	t := fold(strings.ToLower(strings.TrimSpace(title)))
	name := fold(strings.ToLower(strings.TrimSpace(mediaName)))

	if name != "" {
		for _, sep := range mediaSeparators {
			if prefix := name + sep; strings.HasPrefix(t, prefix) && len(t) > len(prefix) {
				t = t[len(prefix):]
				break
			}
			if suffix := sep + name; strings.HasSuffix(t, suffix) && len(t) > len(suffix) {
				t = t[:len(t)-len(suffix)]
				break
			}
		}
	}

	var b strings.Builder
	b.Grow(len(t))
	lastSpace := true
	for _, r := range t {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Fingerprinter turns titles into language-aware fingerprints.
type Fingerprinter struct {
	detector *language.Detector
}

func NewFingerprinter(detector *language.Detector) *Fingerprinter {
	return &Fingerprinter{detector: detector}
}

// Fingerprint returns the md5 digest, as a UUID, of the stemmed content words
// of the normalized title. Equal headlines from the same publication always
// share a fingerprint; so do inflectional variants ("Markets rally" and
// "Market rallies"). ok is false when the title has no letters or digits
// ("???", emoji); such titles get no fingerprint.
func (f *Fingerprinter) Fingerprint(title, mediaName string) (fingerprint uuid.UUID, ok bool) {
	normalized := Normalize(title, mediaName)
	if normalized == "" {
		return uuid.Nil, false
	}
	lang := f.detector.Detect(normalized)
	terms := lang.Terms(normalized)
	if len(terms) == 0 {
		return uuid.Nil, false
	}
	sum := md5.Sum([]byte(strings.Join(terms, " ")))
	return uuid.UUID(sum), true
}
