package geometry

// Operand is the right-hand side of Point and Line arithmetic. It is
// implemented by Scalar, Point and Line only; which of them is accepted
// depends on the operation.
type Operand interface {
	operand()
}

// Scalar is a number broadcast to both coordinates: Scalar(s) acts as
// Point{s, s}.
type Scalar float64

func (Scalar) operand() {}
func (Point) operand()  {}
func (Line) operand()   {}

// vector resolves o to the point it stands for. Only points and scalars
// have one.
func vector(op string, o Operand) (Point, error) {
	switch v := o.(type) {
	case Point:
		return v, nil
	case Scalar:
		return Point{float64(v), float64(v)}, nil
	case Line:
		return Point{}, errorf(UndefinedOperation, op, "a line is not a point or scalar operand")
	case nil:
		return Point{}, errorf(UndefinedOperation, op, "missing operand")
	}
	return Point{}, errorf(UndefinedOperation, op, "unsupported operand %T", o)
}
