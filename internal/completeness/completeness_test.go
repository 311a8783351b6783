package completeness

import (
	"testing"

	"github.com/mleoca/ucn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCompleteWithNoObservations(t *testing.T) {
	s := New()
	report := s.Report()
	assert.True(t, report.Complete)
	assert.Empty(t, report.Warnings)
}

func TestReportFlagsDynamicImport(t *testing.T) {
	s := New()
	s.ObserveImport("a.js", model.ImportRecord{IsDynamic: true, Line: 10})
	report := s.Report()

	assert.False(t, report.Complete)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "dynamic-import", report.Warnings[0].Type)
	assert.Equal(t, 1, report.Warnings[0].Count)
}

func TestReportFlagsEvalAndReflectionSeparately(t *testing.T) {
	s := New()
	s.ObserveCall("a.js", model.CallRecord{Name: "eval", Line: 1})
	s.ObserveCall("b.py", model.CallRecord{Name: "getattr", Line: 2})
	report := s.Report()

	require.Len(t, report.Warnings, 2)
	types := map[string]bool{}
	for _, w := range report.Warnings {
		types[w.Type] = true
	}
	assert.True(t, types["eval"])
	assert.True(t, types["reflection"])
}

func TestReportTruncatesExamplesAtThree(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.ObserveImport("a.js", model.ImportRecord{IsDynamic: true, Line: i})
	}
	report := s.Report()

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 5, report.Warnings[0].Count)
	assert.Len(t, report.Warnings[0].Examples, 3)
}

func TestOrdinaryCallsDoNotTriggerWarnings(t *testing.T) {
	s := New()
	s.ObserveCall("a.js", model.CallRecord{Name: "helper", Line: 1})
	s.ObserveImport("a.js", model.ImportRecord{IsDynamic: false, Line: 2})
	report := s.Report()
	assert.True(t, report.Complete)
}
