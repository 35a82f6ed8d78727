// Package slicex provides small generic slice helpers used across pier.
//
// Package: slicex
// Title: Generic Slice Utilities
// Description: Search, filtering and set style helpers for slices. All
//              functions are generic and never modify their input.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2025-03-02 v0.2.0: Reduced to the helpers the registry and CLI use
//
// Nil handling:
//
// Functions returning a slice return nil for a nil input. Contains and Some
// report false for a nil input, Every reports true.
//
//	tags := slicex.Unique([]string{"git", "gh", "git"}) // [git gh]
//	slicex.Contains(tags, "gh")                         // true
package slicex
