package language

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/finnish"
	"github.com/blevesearch/snowballstem/italian"
)

// SnowballStemmer adapts a generated snowball stemming routine.
type SnowballStemmer struct {
	stem func(env *snowballstem.Env) bool
}

func (s SnowballStemmer) Stem(word string) string {
	env := snowballstem.NewEnv(word)
	s.stem(env)
	return env.Current()
}

var snowballStemmers = map[string]SnowballStemmer{
	"en": {stem: english.Stem},
	"fi": {stem: finnish.Stem},
	"it": {stem: italian.Stem},
}
