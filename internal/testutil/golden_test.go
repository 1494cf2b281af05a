package testutil

import "testing"

func TestAssertGoldenMatches(t *testing.T) {
	AssertGolden(t, "sample.golden", "hello\nworld\n")
}
