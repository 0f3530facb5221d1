// Package runner drives the external pytest runner for selected suite groups.
package runner

import (
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
	"github.com/kkr-labs/kkrtestctl/pkg/suite"
	exec_utils "github.com/kkr-labs/kkrtestctl/pkg/utils/exec"
)

// Pytest invokes pytest once per selected suite group. Coverage for all
// groups of one run accumulates in the run dir's coverage subdir.
type Pytest struct {
	// RunLoc is the run directory; coverage, reports, and the AiiDA
	// state dir live beneath it.
	RunLoc string
	// Verbose forwards -v to every invocation.
	Verbose bool
}

// NewPytest returns a Pytest runner rooted at runLoc.
func NewPytest(runLoc string, verbose bool) *Pytest {
	return &Pytest{RunLoc: runLoc, Verbose: verbose}
}

// Run implements suite.Runner.
func (p *Pytest) Run(g suite.Group, covAppend bool) error {
	bin := exec_utils.Pytest
	if bin == "" {
		bin = cfg.PytestBin
	}
	args := p.Args(g, covAppend)
	log.Debug("invoking %s %v", bin, args)

	cmd := osexec.Command(bin, args...) //#nosec G204
	cmd.Env = append(os.Environ(), fmt.Sprintf("%s=%s", cfg.AiidaPathEnv, p.RunLoc))

	_, stderr, err := exec_utils.Execute(p.Verbose, cmd)
	if err != nil {
		return errors.Wrapf(err, "pytest failed for %s: %s", g.Name, stderr)
	}
	return nil
}

// Args builds the pytest argument list for one group. The external
// codes subtree is always excluded; the group's filter contributes
// markers, keywords, paths, and extra exclusions.
func (p *Pytest) Args(g suite.Group, covAppend bool) []string {
	args := []string{
		"--cov-report=xml:" + filepath.Join(p.RunLoc, "coverage", "coverage.xml"),
		"--cov=" + cfg.CoverageTarget,
	}
	if covAppend {
		args = append(args, "--cov-append")
	}

	args = append(args, "--ignore="+cfg.ExternalCodesDir)
	for _, ig := range g.Filter.Ignores {
		args = append(args, "--ignore="+ig)
	}

	args = append(args, "--mpl", "-p", "no:warnings")

	if g.Filter.Markers != "" {
		args = append(args, "-m", g.Filter.Markers)
	}
	if g.Filter.Keywords != "" {
		args = append(args, "-k", g.Filter.Keywords)
	}
	if p.Verbose {
		args = append(args, "-v")
	}

	return append(args, g.Filter.Paths...)
}
