// Package foundation holds small generic helpers shared by the config and
// command layers.
package foundation

import (
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps free-form user input (config values, env vars) onto a
// closed set of values. Keys are matched case-insensitively and trimmed.
type Normalizer[T comparable] struct {
	values   map[string]T
	fallback T
}

// NewNormalizer builds a normalizer; several keys may alias the same value.
func NewNormalizer[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[normalizeKey(k)] = v
	}
	return &Normalizer[T]{values: normalized, fallback: fallback}
}

// Normalize returns the fallback when raw is not recognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[normalizeKey(raw)]; ok {
		return v
	}
	return n.fallback
}

// Strict rejects unknown input with a validation error listing the accepted keys.
func (n *Normalizer[T]) Strict(raw string) (T, error) {
	if v, ok := n.values[normalizeKey(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, ferrors.ValidationError("invalid value: " + raw).
		WithContext("accepted", strings.Join(n.Keys(), ", ")).
		Build()
}

// Keys returns the accepted input keys in sorted order.
func (n *Normalizer[T]) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
