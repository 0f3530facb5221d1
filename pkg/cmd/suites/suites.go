// Package suites implements the kkrtestctl commands that select and
// execute the KKR test suites.
package suites

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v2"

	"github.com/kkr-labs/kkrtestctl/pkg/capability"
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
	"github.com/kkr-labs/kkrtestctl/pkg/runner"
	"github.com/kkr-labs/kkrtestctl/pkg/services"
	"github.com/kkr-labs/kkrtestctl/pkg/suite"
	exec_utils "github.com/kkr-labs/kkrtestctl/pkg/utils/exec"
)

// RunSuitesCommand decides which suite groups to run for the current
// environment and executes them in catalog order. It returns
// ErrSuitesFailed if any selected group's runner invocation failed.
func RunSuitesCommand(c *cfg.Config, tc *cfg.TaskConfig) error {
	flags := capability.FromEnv()
	decisions := suite.Decide(flags, suite.Catalog())

	log.Header("Running KKR test suites")
	outcome := suite.Sequence(decisions, runner.NewPytest(c.RunLoc, tc.Verbose))

	if err := writeReport(c, outcome); err != nil {
		log.Warn("failed to write run report: %v", err)
	}
	summarize(outcome)

	if !outcome.Success() {
		return ErrSuitesFailed{Groups: outcome.Failed}
	}
	return nil
}

// PlanCommand prints the decision table for the current environment
// without executing anything.
func PlanCommand(_ *cfg.Config, _ *cfg.TaskConfig) error {
	flags := capability.FromEnv()
	decisions := suite.Decide(flags, suite.Catalog())

	data := pterm.TableData{{"Suite Group", "Decision", "Reason"}}
	for _, d := range decisions {
		verdict := "Skip"
		if d.Run {
			verdict = "Run"
		}
		data = append(data, []string{d.Group.Name, verdict, d.Reason})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// DoctorCommand verifies the external collaborators the suites depend
// on: the pytest binary and the RabbitMQ broker. Broker unavailability
// is advice (set NO_RMQ), not an error.
func DoctorCommand(_ *cfg.Config, tc *cfg.TaskConfig) error {
	if err := exec_utils.CheckBinaries(exec_utils.AllBins); err != nil {
		return err
	}
	log.InfoCLI("pytest found")

	if err := services.CheckBroker(tc.BrokerURL); err != nil {
		log.InfoCLI("message broker unreachable: %v", err)
		log.InfoCLI("workflow suites need RabbitMQ; set %s=true to skip them", cfg.EnvNoMessageQueue)
	} else {
		log.InfoCLI("message broker reachable")
	}

	flags := capability.FromEnv()
	for _, n := range capability.Known() {
		state := "unset"
		if flags.IsSet(n) {
			state = "set"
		}
		log.InfoCLI("%-12s %s", n, state)
	}
	return nil
}

func writeReport(c *cfg.Config, outcome suite.Outcome) error {
	b, err := yaml.Marshal(outcome)
	if err != nil {
		return errors.Wrap(err, "failed to marshal run outcome")
	}
	path := filepath.Join(c.RunLoc, "reports", outcome.RunID+".yaml")
	if err := os.WriteFile(path, b, 0600); err != nil {
		return errors.Wrap(err, "failed to write run report")
	}
	log.InfoCLI("run report: %s", path)
	return nil
}

func summarize(outcome suite.Outcome) {
	log.InfoCLI("\n%d group(s) executed, %d skipped, %d failed",
		len(outcome.Executed), len(outcome.Skipped), len(outcome.Failed),
	)
	for _, g := range outcome.Failed {
		log.ErrorCLI("suite group failed", "group", g)
	}
}
