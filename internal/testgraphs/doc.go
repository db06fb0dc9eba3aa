// Package testgraphs builds the small fixture graphs spec.md §8 names as
// "concrete scenarios" (S1-S4), in the spirit of the teacher's
// core/test_helpers_test.go fixtures but as a non-_test.go internal
// package so code outside one package's tests can import it. Its only
// importer is cmd/lgraphdot; no package's tests use it.
package testgraphs
