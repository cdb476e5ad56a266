// Package cpu implements the builtin CPU kernels the Lattice runtime uses
// for nodes no delegate has claimed.
package cpu

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// CPUBackend evaluates builtin ops over host-owned tensors. Unlike a
// delegate, it writes results into the destination tensor the runtime
// resolved from the graph's tensor table; it never allocates outputs.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// checkElementwise validates operands for a same-shape elementwise op.
// Broadcasting is intentionally not supported.
func checkElementwise(op string, dst, a, b *tensor.RawTensor) error {
	if !a.Shape().Equal(b.Shape()) || !a.Shape().Equal(dst.Shape()) {
		return fmt.Errorf("%s: shape mismatch %v, %v -> %v", op, a.Shape(), b.Shape(), dst.Shape())
	}
	if a.DType() != b.DType() || a.DType() != dst.DType() {
		return fmt.Errorf("%s: dtype mismatch %s, %s -> %s", op, a.DType(), b.DType(), dst.DType())
	}
	return nil
}

// Add performs element-wise addition: dst = a + b.
func (cpu *CPUBackend) Add(dst, a, b *tensor.RawTensor) error {
	if err := checkElementwise("add", dst, a, b); err != nil {
		return err
	}
	return addVectorized(dst, a, b)
}

// Sub performs element-wise subtraction: dst = a - b.
func (cpu *CPUBackend) Sub(dst, a, b *tensor.RawTensor) error {
	if err := checkElementwise("sub", dst, a, b); err != nil {
		return err
	}
	return subVectorized(dst, a, b)
}

// Mul performs element-wise multiplication: dst = a * b.
func (cpu *CPUBackend) Mul(dst, a, b *tensor.RawTensor) error {
	if err := checkElementwise("mul", dst, a, b); err != nil {
		return err
	}
	return mulVectorized(dst, a, b)
}

// Div performs element-wise division: dst = a / b.
func (cpu *CPUBackend) Div(dst, a, b *tensor.RawTensor) error {
	if err := checkElementwise("div", dst, a, b); err != nil {
		return err
	}
	return divVectorized(dst, a, b)
}

// Relu applies max(x, 0) element-wise: dst = relu(x).
func (cpu *CPUBackend) Relu(dst, x *tensor.RawTensor) error {
	if !x.Shape().Equal(dst.Shape()) || x.DType() != dst.DType() {
		return fmt.Errorf("relu: operand mismatch %s%v -> %s%v", x.DType(), x.Shape(), dst.DType(), dst.Shape())
	}

	switch x.DType() {
	case tensor.Float32:
		src, out := x.AsFloat32(), dst.AsFloat32()
		for i := range src {
			if src[i] > 0 {
				out[i] = src[i]
			} else {
				out[i] = 0
			}
		}
	case tensor.Float64:
		src, out := x.AsFloat64(), dst.AsFloat64()
		for i := range src {
			if src[i] > 0 {
				out[i] = src[i]
			} else {
				out[i] = 0
			}
		}
	default:
		return fmt.Errorf("relu: unsupported dtype %s", x.DType())
	}
	return nil
}
