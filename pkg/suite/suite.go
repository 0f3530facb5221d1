// Package suite implements selection and sequencing for the KKR test
// suite catalog. Each suite group declares the capability flags it
// requires; a single generic rule evaluates the catalog against the
// current capability set.
package suite

import (
	"github.com/kkr-labs/kkrtestctl/pkg/capability"
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
)

// Suite group names.
const (
	NonWorkflow        = "NonWorkflow"
	VorostartWorkflow  = "VorostartWorkflow"
	DosWorkflow        = "DosWorkflow"
	GfWriteoutWorkflow = "GfWriteoutWorkflow"
	ScfWorkflow        = "ScfWorkflow"
	EosWorkflow        = "EosWorkflow"
	KkrimpScfWorkflow  = "KkrimpScfWorkflow"
	KkrimpFullWorkflow = "KkrimpFullWorkflow"
	KkrimpDosWorkflow  = "KkrimpDosWorkflow"

	// Run-all mode groups.
	AllWorkflows   = "AllWorkflows"
	AllNonWorkflow = "AllNonWorkflow"
)

// Filter selects the tests belonging to a group. It is opaque to the
// selector and passed through to the runner untouched.
type Filter struct {
	// Markers is a pytest -m expression.
	Markers string
	// Keywords is a pytest -k expression.
	Keywords string
	// NoRmqKeywords replaces Keywords when the message queue is
	// unavailable. Empty means the group has no narrower variant.
	NoRmqKeywords string
	// Paths restricts collection to explicit files or directories.
	Paths []string
	// Ignores are subtrees excluded from collection, in addition to
	// the external codes subtree which the runner always excludes.
	Ignores []string
}

// Group is one named unit of test selection.
type Group struct {
	Name   string
	Filter Filter
	// Requires lists the capability flags that must all be set.
	Requires []capability.Name
	// RequiresUnset lists the capability flags that must all be unset.
	RequiresUnset []capability.Name
	// Workflow marks groups subject to the global message-queue veto:
	// AiiDA workflows cannot run without a broker.
	Workflow bool
}

// Catalog returns the fixed, ordered suite catalog. Order defines
// execution order; the selector never reorders it.
func Catalog() []Group {
	return []Group{
		{
			Name: NonWorkflow,
			Filter: Filter{
				Keywords:      cfg.NonWorkflowKeyword,
				NoRmqKeywords: cfg.NonWorkflowNoRmqKeyword,
				Ignores:       []string{cfg.WorkflowTestDir},
			},
			RequiresUnset: []capability.Name{capability.SkipNonWorkflow},
		},
		{
			Name:     VorostartWorkflow,
			Filter:   workflowFilter("test_vorostart_wc.py"),
			Requires: []capability.Name{capability.RunVoronoi},
			Workflow: true,
		},
		{
			Name:     DosWorkflow,
			Filter:   workflowFilter("test_dos_wc.py"),
			Requires: []capability.Name{capability.RunKKRHost},
			Workflow: true,
		},
		{
			Name:     GfWriteoutWorkflow,
			Filter:   workflowFilter("test_gf_writeout_wc.py"),
			Requires: []capability.Name{capability.RunKKRHost},
			Workflow: true,
		},
		{
			Name:     ScfWorkflow,
			Filter:   workflowFilter("test_scf_wc_simple.py"),
			Requires: []capability.Name{capability.RunVoronoi, capability.RunKKRHost},
			Workflow: true,
		},
		{
			Name:     EosWorkflow,
			Filter:   workflowFilter("test_eos_wc.py"),
			Requires: []capability.Name{capability.RunVoronoi, capability.RunKKRHost},
			Workflow: true,
		},
		{
			Name:     KkrimpScfWorkflow,
			Filter:   workflowFilter("test_kkrimp_scf_wc.py"),
			Requires: []capability.Name{capability.RunKKRImp},
			Workflow: true,
		},
		{
			Name:     KkrimpFullWorkflow,
			Filter:   workflowFilter("test_kkrimp_full_wc.py"),
			Requires: []capability.Name{capability.RunKKRImp, capability.RunKKRHost, capability.RunVoronoi},
			Workflow: true,
		},
		{
			Name:     KkrimpDosWorkflow,
			Filter:   workflowFilter("test_kkrimp_dos_wc.py"),
			Requires: []capability.Name{capability.RunKKRImp, capability.RunKKRHost},
			Workflow: true,
		},
	}
}

// workflowFilter selects a single workflow test file. Selecting by path
// keeps the non-workflow subtree out of workflow runs.
func workflowFilter(file string) Filter {
	return Filter{Paths: []string{cfg.WorkflowTestDir + "/" + file}}
}
