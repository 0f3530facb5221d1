package integration

import (
	"fmt"
	"testing"

	"github.com/kkr-labs/kkrtestctl/pkg/capability"
	"github.com/kkr-labs/kkrtestctl/tests/integration/common"
	"github.com/kkr-labs/kkrtestctl/tests/integration/kkrtestctl"
	"github.com/kkr-labs/kkrtestctl/tests/utils/test"
)

func TestIntegrationSuite(t *testing.T) {
	testCtx := test.NewTestContext()
	if err := setup(t, testCtx); err != nil {
		t.Errorf("failed to setup integration test suite: %v", err)
	}
	runSuite(testCtx, t)
}

func runSuite(testCtx *test.TestContext, t *testing.T) {
	fmt.Println("KKR Test CLI Integration Test Suite")

	err := test.Flow(testCtx).
		Test(common.NewSingleFuncTest("run-suites", kkrtestctl.Execute)).
		Summarize().TearDown().Audit()

	if err != nil {
		t.Error(err)
	}
}

func setup(t *testing.T, testCtx *test.TestContext) error {
	// Pin the capability environment: voronoi and KKRhost available,
	// everything else unset.
	for _, n := range capability.Known() {
		t.Setenv(string(n), "")
	}
	t.Setenv(string(capability.RunVoronoi), "true")
	t.Setenv(string(capability.RunKKRHost), "true")

	testCtx.Put("version", "integration-test")
	testCtx.Put("workspace", t.TempDir())

	return capability.BindEnv()
}
