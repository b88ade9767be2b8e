package noexit

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNoExitAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoExitAnalyzer, "a", "b")
}
