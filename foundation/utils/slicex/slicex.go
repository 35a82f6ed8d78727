// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers behind the registry's ordered alias
//              list and its tag matching.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2025-03-02 v0.2.0: Added Remove, Every is true for empty input

package slicex

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	return IndexOf(slice, element) >= 0
}

// IndexOf returns the first index of the element, or -1 if not found
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// Remove returns a copy of the slice without the first occurrence of element
func Remove[T comparable](slice []T, element T) []T {
	if slice == nil {
		return nil
	}

	i := IndexOf(slice, element)
	if i < 0 {
		return Clone(slice)
	}

	result := make([]T, 0, len(slice)-1)
	result = append(result, slice[:i]...)
	return append(result, slice[i+1:]...)
}

// Unique returns a new slice with duplicate elements removed (preserves order)
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Every checks if all elements match the predicate. It is true for an
// empty slice.
func Every[T any](slice []T, predicate func(T) bool) bool {
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Some checks if at least one element matches the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}
