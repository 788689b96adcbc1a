// Package libdiff aligns array elements for diff generation.
//
// Runs computes an edit script (keep, delete, insert) between two
// element sequences by mapping each element to a rune keyed by its
// canonical signature and running a text diff over the rune strings.
// The script minimizes edits over deep element equality; translating
// it into patch operations is the caller's business.
package libdiff
