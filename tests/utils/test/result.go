package test

type TestResult struct {
	Errors []string
}

func (t *TestResult) IsSucceeded() bool {
	return t.Errors == nil
}

func (t *TestResult) IsFailed() bool {
	return t.Errors != nil
}

func Success() *TestResult {
	return &TestResult{}
}

func Failure(errors ...string) *TestResult {
	return &TestResult{
		Errors: errors,
	}
}
