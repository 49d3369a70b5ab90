package terrain

import "fmt"

// An Operation is a cell-wise map algebra operation.
type Operation int

const (
	OperationMin Operation = iota
	OperationMax
	OperationSum
	OperationSubtract
	OperationProduct
	OperationDivide
)

func (op Operation) String() string {
	switch op {
	case OperationMin:
		return "min"
	case OperationMax:
		return "max"
	case OperationSum:
		return "sum"
	case OperationSubtract:
		return "subtract"
	case OperationProduct:
		return "product"
	case OperationDivide:
		return "divide"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

func (op Operation) apply(a, b float64) float64 {
	switch op {
	case OperationMin:
		return min(a, b)
	case OperationMax:
		return max(a, b)
	case OperationSum:
		return a + b
	case OperationSubtract:
		return a - b
	case OperationProduct:
		return a * b
	case OperationDivide:
		return a / b
	default:
		panic(fmt.Sprintf("terrain: unknown operation %d", int(op)))
	}
}

func (op Operation) validate() error {
	if op < OperationMin || op > OperationDivide {
		return fmt.Errorf("%s: unknown operation", op)
	}
	return nil
}

// MapAlgebra sets each cell of out to op applied to the cell of in and
// value. Cells of in without data leave out unchanged. in and out must have
// equal headers.
func MapAlgebra(in *RasterGrid, value float64, out *RasterGrid, op Operation) error {
	if err := op.validate(); err != nil {
		return err
	}
	if !in.Header.Equal(out.Header) {
		return ErrHeaderMismatch
	}
	if op == OperationDivide && value == 0 {
		return ErrDivideByZero
	}
	for i, inValue := range in.values {
		if inValue != in.Header.NoData {
			out.values[i] = op.apply(inValue, value)
		}
	}
	return nil
}

// MapAlgebraGrid sets each cell of out to op applied to the cells of in1 and
// in2. Cells without data in either input leave out unchanged. Division by a
// zero cell sets the output cell to out's no-data value. in1, in2 and out
// must have equal headers.
func MapAlgebraGrid(in1, in2, out *RasterGrid, op Operation) error {
	if err := op.validate(); err != nil {
		return err
	}
	if !in1.Header.Equal(in2.Header) || !in1.Header.Equal(out.Header) {
		return ErrHeaderMismatch
	}
	for i, value1 := range in1.values {
		value2 := in2.values[i]
		switch {
		case value1 == in1.Header.NoData || value2 == in2.Header.NoData:
		case op == OperationDivide && value2 == 0:
			out.values[i] = out.Header.NoData
		default:
			out.values[i] = op.apply(value1, value2)
		}
	}
	return nil
}
