package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCacheDecision(t *testing.T) {
	cases := map[string]CacheDecision{
		"y":      CacheClear,
		"YES":    CacheClear,
		" yes\n": CacheClear,
		"n":      CacheRetain,
		"No":     CacheRetain,
	}
	for in, want := range cases {
		got, err := ParseCacheDecision(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}
}

func TestParseCacheDecision_Invalid(t *testing.T) {
	for _, in := range []string{"", "maybe", "1", "yep"} {
		got, err := ParseCacheDecision(in)
		assert.True(t, errors.Is(err, ErrInvalidDecision), in)
		assert.Equal(t, CacheUndecided, got)
		assert.False(t, got.Valid())
	}
}
