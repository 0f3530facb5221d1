package suite

import (
	"fmt"

	"github.com/kkr-labs/kkrtestctl/pkg/capability"
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
)

// Decision is the Run/Skip verdict for one group, with a human-readable
// reason. Decisions are produced fresh on every call to Decide.
type Decision struct {
	Group  Group
	Run    bool
	Reason string
}

// Decide evaluates the catalog against the capability set and returns
// one decision per group, in catalog order.
//
// RUN_ALL is an exclusive override: when set, the result is exactly two
// Run decisions (all workflow tests, then everything else) and the rest
// of the catalog is ignored. It deliberately does not honor the
// message-queue veto, matching the historical behavior.
func Decide(flags capability.Flags, catalog []Group) []Decision {
	if flags.IsSet(capability.RunAll) {
		return []Decision{
			{Group: allWorkflowsGroup(), Run: true, Reason: fmt.Sprintf("%s is set", capability.RunAll)},
			{Group: allNonWorkflowGroup(), Run: true, Reason: fmt.Sprintf("%s is set", capability.RunAll)},
		}
	}

	decisions := make([]Decision, 0, len(catalog))
	for _, g := range catalog {
		decisions = append(decisions, decideGroup(flags, g))
	}
	return decisions
}

// decideGroup evaluates one group's requirement predicate: every flag in
// Requires must be set, every flag in RequiresUnset must be unset, and
// workflow groups additionally require the message queue to be available.
// The reason names the first unmet flag.
func decideGroup(flags capability.Flags, g Group) Decision {
	for _, n := range g.Requires {
		if !flags.IsSet(n) {
			return Decision{Group: g, Reason: fmt.Sprintf("%s is not set", n)}
		}
	}

	unset := g.RequiresUnset
	if g.Workflow {
		unset = append(unset, capability.NoMessageQueue)
	}
	for _, n := range unset {
		if flags.IsSet(n) {
			return Decision{Group: g, Reason: fmt.Sprintf("%s is set", n)}
		}
	}

	d := Decision{Group: g, Run: true, Reason: "all requirements met"}
	if flags.IsSet(capability.NoMessageQueue) && g.Filter.NoRmqKeywords != "" {
		d.Group.Filter.Keywords = g.Filter.NoRmqKeywords
		d.Reason = fmt.Sprintf("%s is set, excluding broker-backed tests", capability.NoMessageQueue)
	}
	return d
}

func allWorkflowsGroup() Group {
	return Group{
		Name:     AllWorkflows,
		Filter:   Filter{Markers: cfg.WorkflowMarker},
		Workflow: true,
	}
}

func allNonWorkflowGroup() Group {
	return Group{
		Name:   AllNonWorkflow,
		Filter: Filter{Markers: cfg.NonWorkflowMarker},
	}
}
