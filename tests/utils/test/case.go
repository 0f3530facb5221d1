package test

type TestCase interface {
	GetName() string
	Execute(ctx *TestContext) *TestResult
	TearDown(ctx *TestContext)
}

type BaseTest struct {
	name string
}

func NewBaseTest(name string) *BaseTest {
	return &BaseTest{name: name}
}

func (b *BaseTest) GetName() string {
	return b.name
}

func (b *BaseTest) Execute(ctx *TestContext) *TestResult {
	return Failure("Test case not implemented")
}

func (b *BaseTest) TearDown(ctx *TestContext) {}
