package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDecision = errors.New("invalid cache decision")

type CacheDecision int

const (
	CacheUndecided CacheDecision = iota
	CacheClear
	CacheRetain
)

func (c CacheDecision) Valid() bool {
	return c == CacheClear || c == CacheRetain
}

func (c CacheDecision) String() string {
	switch c {
	case CacheClear:
		return "clear"
	case CacheRetain:
		return "retain"
	default:
		return "undecided"
	}
}

// ParseCacheDecision accepts y/yes and n/no in any case.
func ParseCacheDecision(answer string) (CacheDecision, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return CacheClear, nil
	case "n", "no":
		return CacheRetain, nil
	}
	return CacheUndecided, fmt.Errorf("%w: %q", ErrInvalidDecision, answer)
}
