package ain

// Operand is the closed set of right-hand sides accepted by the binary
// operations: a plain Scalar or another AIN. The unexported marker
// method keeps the set closed, so a type switch over an Operand is
// exhaustive.
type Operand interface {
	isOperand()
}

// Scalar is a crisp real number used as an operand.
type Scalar float64

func (Scalar) isOperand() {}

func (AIN) isOperand() {}
