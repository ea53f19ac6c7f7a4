package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSink_ReportFormatsWithAt(t *testing.T) {
	s := New()
	s.Report(3, "foo", "Unexpected token.")
	assert.True(t, s.HadError)
	assert.Equal(t, "[line 3] Error at 'foo': Unexpected token.", s.Statics()[0].String())
}

func TestSink_ReportFormatsWithoutAt(t *testing.T) {
	s := New()
	s.Report(1, "", "Unexpected character.")
	assert.Equal(t, "[line 1] Error: Unexpected character.", s.Statics()[0].String())
}

func TestSink_ResetClearsStaticsButNotRuntime(t *testing.T) {
	s := New()
	s.Report(1, "", "bad")
	s.ReportRuntime("boom\n[line 1]")

	s.Reset()
	assert.False(t, s.HadError)
	assert.Empty(t, s.Statics())
	assert.True(t, s.HadRuntimeError)
	assert.Equal(t, "boom\n[line 1]", s.RuntimeText())
}

func TestSink_ResetRuntimeClearsRuntimeOnly(t *testing.T) {
	s := New()
	s.Report(1, "", "bad")
	s.ReportRuntime("boom\n[line 1]")

	s.ResetRuntime()
	assert.False(t, s.HadRuntimeError)
	assert.Empty(t, s.RuntimeText())
	assert.True(t, s.HadError)
}
