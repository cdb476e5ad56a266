package cpu

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// addVectorized performs vectorized addition: dst = a + b.
// Requires: shapes and dtypes already validated.
func addVectorized(dst, a, b *tensor.RawTensor) error {
	switch a.DType() {
	case tensor.Float32:
		addVectorizedFloat32(dst.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addVectorizedFloat64(dst.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		addVectorizedInt32(dst.AsInt32(), a.AsInt32(), b.AsInt32())
	default:
		return fmt.Errorf("add: unsupported dtype %s", a.DType())
	}
	return nil
}

// subVectorized performs vectorized subtraction: dst = a - b.
func subVectorized(dst, a, b *tensor.RawTensor) error {
	switch a.DType() {
	case tensor.Float32:
		subVectorizedFloat32(dst.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subVectorizedFloat64(dst.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		subVectorizedInt32(dst.AsInt32(), a.AsInt32(), b.AsInt32())
	default:
		return fmt.Errorf("sub: unsupported dtype %s", a.DType())
	}
	return nil
}

// mulVectorized performs vectorized multiplication: dst = a * b.
func mulVectorized(dst, a, b *tensor.RawTensor) error {
	switch a.DType() {
	case tensor.Float32:
		mulVectorizedFloat32(dst.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulVectorizedFloat64(dst.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		mulVectorizedInt32(dst.AsInt32(), a.AsInt32(), b.AsInt32())
	default:
		return fmt.Errorf("mul: unsupported dtype %s", a.DType())
	}
	return nil
}

// divVectorized performs vectorized division: dst = a / b.
func divVectorized(dst, a, b *tensor.RawTensor) error {
	switch a.DType() {
	case tensor.Float32:
		divVectorizedFloat32(dst.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		divVectorizedFloat64(dst.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		divVectorizedInt32(dst.AsInt32(), a.AsInt32(), b.AsInt32())
	default:
		return fmt.Errorf("div: unsupported dtype %s", a.DType())
	}
	return nil
}
