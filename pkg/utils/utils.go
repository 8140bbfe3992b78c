package utils

import (
	"cmp"

	"github.com/jfcg/sorty/v2"
	"gonum.org/v1/gonum/stat"
)

func Map[T any, O any](items []T, f func(T) O) []O {
	mapped := make([]O, len(items))
	for i, item := range items {
		mapped[i] = f(item)
	}
	return mapped
}

func Filter[T any](items []T, condition func(T) bool) []T {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if condition(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func Find[T any](items []T, condition func(T) bool) *T {
	for i := range items {
		if condition(items[i]) {
			return &items[i]
		}
	}
	return nil
}

func MaxOver[T cmp.Ordered](items []T) T {
	max := items[0]
	for _, item := range items {
		if item > max {
			max = item
		}
	}
	return max
}

// Sort sorts items in place with sorty using the provided ordering.
func Sort[T any](items []T, less func(a, b T) bool) {
	lesswap := func(i, k, r, s int) bool {
		if less(items[i], items[k]) {
			if r != s {
				items[r], items[s] = items[s], items[r]
			}
			return true
		}
		return false
	}
	sorty.Sort(len(items), lesswap)
}

func SortOrdered[T cmp.Ordered](items []T) {
	Sort(items, func(a, b T) bool {
		return a < b
	})
}

func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.Variance(values, nil)
}
