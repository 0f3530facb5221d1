package test

// TestContext carries shared state between the test cases of a flow.
type TestContext struct {
	ctx map[string]interface{}
}

func NewTestContext() *TestContext {
	return &TestContext{ctx: make(map[string]interface{})}
}

func (t *TestContext) Put(key string, value interface{}) *TestContext {
	t.ctx[key] = value
	return t
}

func (t *TestContext) Get(key string) interface{} {
	return t.ctx[key]
}

func (t *TestContext) GetStr(key string) string {
	if s, ok := t.ctx[key].(string); ok {
		return s
	}
	return ""
}
