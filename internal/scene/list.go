package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier of the form "{prefix}_{hex}".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NextLabel builds the default caption for the n+1-th entry of a list.
func NextLabel(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n+1)
}

// The helpers below never modify their input; every result is a fresh
// slice so a previous state value stays valid after an update.

func removeBy[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			out = append(out, it)
		}
	}
	return out
}

func mapBy[T any](items []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if match(it) {
			it = fn(it)
		}
		out[i] = it
	}
	return out
}

func removeAt[T any](items []T, idx int) []T {
	if idx < 0 || idx >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}

func mapAt[T any](items []T, idx int, fn func(T) T) []T {
	if idx < 0 || idx >= len(items) {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[idx] = fn(out[idx])
	return out
}

func appendCopy[T any](items []T, v ...T) []T {
	out := make([]T, 0, len(items)+len(v))
	out = append(out, items...)
	return append(out, v...)
}

func uniqueIDs(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
