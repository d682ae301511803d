package internal

type numberOperation func(x, y float64) Value

// numberBinaryOperations covers every binary opcode whose operands must
// both be numbers. opAdd is handled separately because it also accepts
// strings.
var numberBinaryOperations = map[opcode]numberOperation{
	opSubtract: func(x, y float64) Value {
		return numberValue(x - y)
	},
	opMultiply: func(x, y float64) Value {
		return numberValue(x * y)
	},
	opDivide: func(x, y float64) Value {
		return numberValue(x / y)
	},
	opLess: func(x, y float64) Value {
		return boolValue(x < y)
	},
	opLessEqual: func(x, y float64) Value {
		return boolValue(x <= y)
	},
	opGreater: func(x, y float64) Value {
		return boolValue(x > y)
	},
	opGreaterEqual: func(x, y float64) Value {
		return boolValue(x >= y)
	},
}

func addValues(a, b Value) (Value, error) {
	switch {
	case a.isString() && b.isString():
		a.asString().concat(b.asString())
		return a, nil
	case a.isNumber() && b.isNumber():
		return numberValue(a.number + b.number), nil
	}
	return nilValue(), errAddOperands
}
