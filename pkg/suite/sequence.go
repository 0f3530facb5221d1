package suite

import (
	"time"

	"github.com/google/uuid"

	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
)

// Runner executes the tests selected by a group's filter and reports
// whether the invocation itself succeeded. Test-level results are the
// runner's business, not the sequencer's.
type Runner interface {
	Run(g Group, covAppend bool) error
}

// GroupResult records the outcome of one executed group.
type GroupResult struct {
	Group    string        `yaml:"group"`
	Error    string        `yaml:"error,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// Outcome aggregates one sequencer invocation.
type Outcome struct {
	RunID    string        `yaml:"runId"`
	Executed []GroupResult `yaml:"executed,omitempty"`
	Skipped  []string      `yaml:"skipped,omitempty"`
	Failed   []string      `yaml:"failed,omitempty"`
}

// Success reports whether every executed group succeeded.
func (o Outcome) Success() bool {
	return len(o.Failed) == 0
}

// Sequence processes decisions in order, strictly sequentially. Run
// decisions invoke the runner; the first executed group gets a fresh
// coverage context and later groups append to it. A runner failure is
// recorded and does not stop the remaining groups.
func Sequence(decisions []Decision, r Runner) Outcome {
	out := Outcome{RunID: uuid.New().String()}

	covAppend := false
	for _, d := range decisions {
		if !d.Run {
			log.InfoCLI("Skipping %s: %s", d.Group.Name, d.Reason)
			out.Skipped = append(out.Skipped, d.Group.Name)
			continue
		}

		log.InfoCLI("Running %s (%s)", d.Group.Name, d.Reason)
		start := time.Now()
		err := r.Run(d.Group, covAppend)
		res := GroupResult{Group: d.Group.Name, Duration: time.Since(start)}
		if err != nil {
			res.Error = err.Error()
			out.Failed = append(out.Failed, d.Group.Name)
			log.ErrorCLI("Suite group failed", "group", d.Group.Name, "error", err.Error())
		}
		out.Executed = append(out.Executed, res)
		covAppend = true
	}

	return out
}
