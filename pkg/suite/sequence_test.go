package suite

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	group     string
	covAppend bool
}

// fakeRunner records invocations and fails the configured groups.
type fakeRunner struct {
	runs    []recordedRun
	failing map[string]bool
}

func (f *fakeRunner) Run(g Group, covAppend bool) error {
	f.runs = append(f.runs, recordedRun{group: g.Name, covAppend: covAppend})
	if f.failing[g.Name] {
		return errors.Errorf("%s blew up", g.Name)
	}
	return nil
}

func TestSequenceExecutesInOrder(t *testing.T) {
	decisions := []Decision{
		{Group: Group{Name: "a"}, Run: true},
		{Group: Group{Name: "b"}, Run: false, Reason: "not today"},
		{Group: Group{Name: "c"}, Run: true},
	}
	r := &fakeRunner{}

	out := Sequence(decisions, r)

	require.Len(t, r.runs, 2)
	assert.Equal(t, "a", r.runs[0].group)
	assert.Equal(t, "c", r.runs[1].group)
	assert.Equal(t, []string{"b"}, out.Skipped)
	assert.True(t, out.Success())
	assert.NotEmpty(t, out.RunID)
}

func TestSequenceCoverageAccumulation(t *testing.T) {
	decisions := []Decision{
		{Group: Group{Name: "skipped"}, Run: false, Reason: "missing code"},
		{Group: Group{Name: "first"}, Run: true},
		{Group: Group{Name: "second"}, Run: true},
		{Group: Group{Name: "third"}, Run: true},
	}
	r := &fakeRunner{}

	Sequence(decisions, r)

	require.Len(t, r.runs, 3)
	// first executed group starts a fresh coverage context, later ones append
	assert.False(t, r.runs[0].covAppend)
	assert.True(t, r.runs[1].covAppend)
	assert.True(t, r.runs[2].covAppend)
}

func TestSequenceFailOpen(t *testing.T) {
	decisions := []Decision{
		{Group: Group{Name: "first"}, Run: true},
		{Group: Group{Name: "second"}, Run: true},
		{Group: Group{Name: "third"}, Run: true},
	}
	r := &fakeRunner{failing: map[string]bool{"first": true, "second": true}}

	out := Sequence(decisions, r)

	// failures never stop the remaining groups
	require.Len(t, r.runs, 3)
	assert.Equal(t, []string{"first", "second"}, out.Failed)
	assert.False(t, out.Success())

	require.Len(t, out.Executed, 3)
	assert.Contains(t, out.Executed[0].Error, "first blew up")
	assert.Empty(t, out.Executed[2].Error)
}

func TestSequenceAllSkipped(t *testing.T) {
	decisions := []Decision{
		{Group: Group{Name: "a"}, Run: false, Reason: "x"},
		{Group: Group{Name: "b"}, Run: false, Reason: "y"},
	}
	r := &fakeRunner{}

	out := Sequence(decisions, r)

	assert.Empty(t, r.runs)
	assert.Empty(t, out.Executed)
	assert.Equal(t, []string{"a", "b"}, out.Skipped)
	assert.True(t, out.Success())
}
