// Package language composes per-language text capabilities used when
// fingerprinting story titles.
package language

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Tokenizer splits text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Stemmer reduces a lowercase word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// StopWordFilter reports words that carry no meaning on their own.
type StopWordFilter interface {
	IsStopWord(word string) bool
}

// Language is one language configuration assembled from capabilities.
type Language struct {
	Code      string
	Tokenizer Tokenizer
	Stemmer   Stemmer
	StopWords StopWordFilter
}

// Terms tokenizes text, drops stop words and stems the rest. When every
// token is a stop word the unfiltered tokens are stemmed instead, so short
// titles like "To Be Or Not" still yield terms.
func (l *Language) Terms(text string) []string {
	tokens := l.Tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if l.StopWords != nil && l.StopWords.IsStopWord(t) {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == 0 {
		kept = tokens
	}

	if l.Stemmer == nil {
		return kept
	}
	terms := make([]string, len(kept))
	for i, t := range kept {
		terms[i] = l.Stemmer.Stem(t)
	}
	return terms
}

// SpaceSeparatedTokenizer handles languages that delimit words with
// whitespace and punctuation.
type SpaceSeparatedTokenizer struct{}

func (SpaceSeparatedTokenizer) Tokenize(text string) []string {
	parts := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(parts) == 0 {
		return nil
	}
	return parts
}

// Registry maps ISO 639-1 codes to languages.
type Registry struct {
	languages map[string]*Language
	fallback  string
}

// NewRegistry builds a registry of the given codes. The first code is the
// fallback for text whose language cannot be determined.
func NewRegistry(codes ...string) (*Registry, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("at least one language is required")
	}

	r := &Registry{languages: make(map[string]*Language, len(codes))}
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		lang, err := newLanguage(code)
		if err != nil {
			return nil, err
		}
		r.languages[code] = lang
		if r.fallback == "" {
			r.fallback = code
		}
	}
	return r, nil
}

// Get returns the language for code, or the fallback language when code is
// unknown.
func (r *Registry) Get(code string) *Language {
	if lang, ok := r.languages[strings.ToLower(code)]; ok {
		return lang
	}
	return r.languages[r.fallback]
}

func (r *Registry) Default() *Language {
	return r.languages[r.fallback]
}

// Codes returns the registered codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.languages))
	for code := range r.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func newLanguage(code string) (*Language, error) {
	stemmer, ok := snowballStemmers[code]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", code)
	}
	stopWords, err := loadStopWords(code)
	if err != nil {
		return nil, err
	}
	return &Language{
		Code:      code,
		Tokenizer: SpaceSeparatedTokenizer{},
		Stemmer:   stemmer,
		StopWords: stopWords,
	}, nil
}
