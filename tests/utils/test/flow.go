package test

import (
	"strings"
	"time"

	"emperror.dev/errors"
	log "github.com/sirupsen/logrus"
)

type TestFlow struct {
	ctx        *TestContext
	skip       bool
	tests      []TestCase
	executions map[string]time.Duration
	Results    []*TestResult
}

func Flow(ctx *TestContext) *TestFlow {
	tf := TestFlow{
		ctx:        ctx,
		tests:      make([]TestCase, 0),
		executions: make(map[string]time.Duration),
	}
	return &tf
}

func (t *TestFlow) Test(testCase TestCase) *TestFlow {
	if t.skip {
		return t
	}
	log.Printf("-------------- %s -------------- ", testCase.GetName())
	start := time.Now()
	result := testCase.Execute(t.ctx)
	t.executions[testCase.GetName()] = time.Since(start)
	t.tests = append(t.tests, testCase)
	t.Results = append(t.Results, result)
	if result.IsFailed() {
		t.skip = true
	}
	return t
}

func (t *TestFlow) Summarize() *TestFlow {
	for k, v := range t.executions {
		log.Printf("Duration for test case %s: %v", k, v)
	}
	return t
}

func (t *TestFlow) TearDown() *TestFlow {
	for _, testCase := range t.tests {
		testCase.TearDown(t.ctx)
	}
	return t
}

func (t *TestFlow) Audit() error {
	failures := make([]string, 0)
	for _, r := range t.Results {
		if r.IsFailed() {
			failures = append(failures, strings.Join(r.Errors, "; "))
		}
	}
	if len(failures) > 0 {
		return errors.Errorf("test flow failed: %s", strings.Join(failures, " | "))
	}
	return nil
}
