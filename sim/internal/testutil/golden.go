// Package testutil provides shared test infrastructure for the bout
// simulator: golden-file assertions and scripted random streams used across
// sim/ and its sub-package tests.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares actual with testdata/<name>.golden in the calling
// package. Run the test with -update to rewrite the fixture.
func AssertGolden(t *testing.T, name string, actual []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, actual)
}
