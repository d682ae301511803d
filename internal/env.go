package internal

// env holds the global variables of a running chunk.
type env struct {
	values *table
}

func newEnv() *env {
	return &env{values: newTable()}
}

func (e *env) get(name *luxString) (Value, error) {
	if value, ok := e.values.get(name); ok {
		return value, nil
	}
	return nilValue(), errUndefinedVar
}

func (e *env) define(name *luxString, value Value) error {
	if e.values.contains(name) {
		return errGlobalExists
	}
	e.values.insert(name, value)
	return nil
}

func (e *env) assign(name *luxString, value Value) error {
	if !e.values.contains(name) {
		return errUndefinedVar
	}
	e.values.insert(name, value)
	return nil
}

func (e *env) reset() {
	e.values.clear()
}
