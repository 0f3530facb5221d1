package common

import (
	"github.com/kkr-labs/kkrtestctl/tests/utils/test"
)

// SingleFuncTest adapts a plain function into a TestCase.
type SingleFuncTest struct {
	*test.BaseTest
	f func(ctx *test.TestContext) error
}

func NewSingleFuncTest(name string, f func(ctx *test.TestContext) error) *SingleFuncTest {
	return &SingleFuncTest{
		BaseTest: test.NewBaseTest(name),
		f:        f,
	}
}

func (s *SingleFuncTest) Execute(ctx *test.TestContext) *test.TestResult {
	if err := s.f(ctx); err != nil {
		return test.Failure(err.Error())
	}
	return test.Success()
}
