// Package compare provides order-insensitive equality checks for slices and
// maps.
//
// The helpers are shallow: elements and values are compared with == (or with
// StrictEqual for untyped data), never recursively. Two distinct maps holding
// the same entries are different values as far as this package is concerned.
//
// Membership is checked in one direction only. SameValues reports true when
// both slices have the same length and every element of the first slice is
// present in the second, so duplicates are not counted:
//
//	compare.SameValues([]int{1, 1, 2}, []int{1, 2, 3}) // true
//
// Callers that need multiset semantics must count occurrences themselves.
package compare
