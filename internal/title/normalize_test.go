package title

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story_ingester/internal/language"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		title     string
		mediaName string
		want      string
	}{
		{"lowercase and punctuation", "  Big News!  Markets, Up. ", "", "big news markets up"},
		{"accents folded", "Café Società", "", "cafe societa"},
		{"media prefix", "Daily Planet: Big News", "Daily Planet", "big news"},
		{"media suffix", "Big News - Daily Planet", "Daily Planet", "big news"},
		{"media suffix with pipe", "Big News | daily planet", "Daily Planet", "big news"},
		{"title is only media name", "Daily Planet", "Daily Planet", "daily planet"},
		{"media name elsewhere kept", "Big Daily Planet News", "Daily Planet", "big daily planet news"},
		{"empty", "", "Daily Planet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.title, tt.mediaName))
		})
	}
}

func newFingerprinter(t *testing.T) *Fingerprinter {
	t.Helper()
	r, err := language.NewRegistry("en", "fi", "it")
	require.NoError(t, err)
	return NewFingerprinter(language.NewDetector(r))
}

func TestFingerprint(t *testing.T) {
	t.Parallel()
	f := newFingerprinter(t)

	fingerprint := func(title, mediaName string) uuid.UUID {
		t.Helper()
		id, ok := f.Fingerprint(title, mediaName)
		require.True(t, ok, title)
		return id
	}

	base := fingerprint("Big News", "")
	assert.Equal(t, base, fingerprint("Big News", ""), "deterministic")
	assert.Equal(t, base, fingerprint("  big   NEWS! ", ""))
	assert.Equal(t, base, fingerprint("Big News - Daily Planet", "Daily Planet"))
	assert.NotEqual(t, base, fingerprint("Small News", ""))

	assert.Equal(t,
		fingerprint("Stock markets rally after the announcement", ""),
		fingerprint("Stock market rallies after announcement", ""),
	)
}

func TestFingerprint_NoWords(t *testing.T) {
	t.Parallel()
	f := newFingerprinter(t)

	for _, title := range []string{"🔥🔥🔥", "???", "...", " - ", ""} {
		id, ok := f.Fingerprint(title, "Daily Planet")
		assert.False(t, ok, title)
		assert.Equal(t, uuid.Nil, id, title)
	}
}
