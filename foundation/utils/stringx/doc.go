// Package stringx provides the string helpers shared by the registry and the
// CLI: blank checks, rune-aware truncation and fallbacks.
package stringx
