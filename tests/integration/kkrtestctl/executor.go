package kkrtestctl

import (
	"fmt"
	osexec "os/exec"
	"strings"

	"emperror.dev/errors"

	"github.com/kkr-labs/kkrtestctl/pkg/cmd/common"
	"github.com/kkr-labs/kkrtestctl/pkg/cmd/suites"
	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	exec_utils "github.com/kkr-labs/kkrtestctl/pkg/utils/exec"
	"github.com/kkr-labs/kkrtestctl/tests/utils/test"
)

// Execute drives suite selection end-to-end against a patched runner.
// The environment prepared by the suite sets RUN_VORONOI and RUN_KKRHOST,
// so six groups are expected to execute; the DosWorkflow invocation is
// made to fail to verify fail-open sequencing and the aggregate error.
func Execute(ctx *test.TestContext) error {
	origExecute := exec_utils.Execute
	defer func() { exec_utils.Execute = origExecute }()

	invocations := make([]string, 0)
	exec_utils.Execute = func(_ bool, stack ...*osexec.Cmd) (string, string, error) {
		args := strings.Join(stack[0].Args, " ")
		invocations = append(invocations, args)
		if strings.Contains(args, "test_dos_wc.py") {
			return "", "simulated pytest failure", errors.New("exit status 1")
		}
		return "", "", nil
	}

	c := cfg.NewConfig()
	c.WorkspaceLoc = ctx.GetStr("workspace")
	if err := common.InitWorkspace(c, cfg.KkrTest, cfg.KkrTestSubdirs, true); err != nil {
		return err
	}

	tc := &cfg.TaskConfig{CliVersion: ctx.GetStr("version")}
	err := suites.RunSuitesCommand(c, tc)
	if err == nil {
		return errors.New("expected the DosWorkflow failure to surface in the command error")
	}
	if !errors.Is(err, suites.ErrSuitesFailed{}) {
		return errors.Wrap(err, "unexpected error type")
	}

	return auditInvocations(invocations)
}

func auditInvocations(invocations []string) error {
	wantSelectors := []string{
		"-k not workflows",
		"test_vorostart_wc.py",
		"test_dos_wc.py",
		"test_gf_writeout_wc.py",
		"test_scf_wc_simple.py",
		"test_eos_wc.py",
	}
	if len(invocations) != len(wantSelectors) {
		return errors.Errorf("got %d runner invocations, want %d: %v", len(invocations), len(wantSelectors), invocations)
	}
	for i, want := range wantSelectors {
		if !strings.Contains(invocations[i], want) {
			return errors.Errorf("invocation %d missing %q: %s", i, want, invocations[i])
		}
		if !strings.Contains(invocations[i], "--ignore=jukkr") {
			return errors.Errorf("invocation %d does not exclude the external codes subtree: %s", i, invocations[i])
		}
		appended := strings.Contains(invocations[i], "--cov-append")
		if i == 0 && appended {
			return fmt.Errorf("first invocation must start a fresh coverage context: %s", invocations[i])
		}
		if i > 0 && !appended {
			return fmt.Errorf("invocation %d must append coverage: %s", i, invocations[i])
		}
	}
	return nil
}
