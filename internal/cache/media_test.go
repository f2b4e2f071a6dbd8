package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"story_ingester/internal/domain"
)

type countingFinder struct {
	calls int
	media map[int64]domain.Medium
}

func (f *countingFinder) FindByID(_ context.Context, id int64) (*domain.Medium, error) {
	f.calls++
	m, ok := f.media[id]
	if !ok {
		return nil, domain.ErrMediumNotFound
	}
	return &m, nil
}

func TestMediaCache_CachesHits(t *testing.T) {
	finder := &countingFinder{media: map[int64]domain.Medium{7: {ID: 7, Name: "Daily Planet", FullTextRSS: true}}}
	c := NewMediaCache(finder, time.Minute)
	ctx := context.Background()

	first, err := c.FindByID(ctx, 7)
	require.NoError(t, err)
	second, err := c.FindByID(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 1, finder.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len())

	second.Name = "changed"
	third, err := c.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Daily Planet", third.Name, "callers get copies")
}

func TestMediaCache_DoesNotCacheErrors(t *testing.T) {
	finder := &countingFinder{media: map[int64]domain.Medium{}}
	c := NewMediaCache(finder, time.Minute)
	ctx := context.Background()

	_, err := c.FindByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrMediumNotFound)
	_, err = c.FindByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrMediumNotFound)

	assert.Equal(t, 2, finder.calls)
	assert.Equal(t, 0, c.Len())
}

func TestMediaCache_Invalidate(t *testing.T) {
	finder := &countingFinder{media: map[int64]domain.Medium{7: {ID: 7}}}
	c := NewMediaCache(finder, time.Minute)
	ctx := context.Background()

	_, err := c.FindByID(ctx, 7)
	require.NoError(t, err)
	c.Invalidate(7)
	_, err = c.FindByID(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, finder.calls)
}

func TestMediaCache_Expires(t *testing.T) {
	finder := &countingFinder{media: map[int64]domain.Medium{7: {ID: 7}}}
	c := NewMediaCache(finder, 10*time.Millisecond)
	ctx := context.Background()

	_, err := c.FindByID(ctx, 7)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = c.FindByID(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, finder.calls)
}
