package language

import (
	"strings"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

// Shorter samples are too ambiguous to classify.
const minDetectLetters = 6

var linguaLanguages = map[string]lingua.Language{
	"en": lingua.English,
	"fi": lingua.Finnish,
	"it": lingua.Italian,
}

// Detector picks a registered language for a piece of text.
type Detector struct {
	registry *Registry
	detector lingua.LanguageDetector
}

func NewDetector(registry *Registry) *Detector {
	langs := make([]lingua.Language, 0, len(registry.languages))
	for _, code := range registry.Codes() {
		if l, ok := linguaLanguages[code]; ok {
			langs = append(langs, l)
		}
	}

	d := &Detector{registry: registry}
	// lingua needs at least two candidates to build a detector.
	if len(langs) >= 2 {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			Build()
	}
	return d
}

// Detect returns the language of text, falling back to the registry default
// for short or unrecognized samples.
func (d *Detector) Detect(text string) *Language {
	if d.detector == nil {
		return d.registry.Default()
	}

	sample := strings.TrimSpace(text)
	letters := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < minDetectLetters {
		return d.registry.Default()
	}

	detected, ok := d.detector.DetectLanguageOf(sample)
	if !ok {
		return d.registry.Default()
	}
	return d.registry.Get(strings.ToLower(detected.IsoCode639_1().String()))
}
