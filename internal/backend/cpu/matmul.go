package cpu

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// MatMul performs matrix multiplication into dst.
// For 2D tensors: (M, K) @ (K, N) -> (M, N).
// Naive O(n³) implementation; this backend is a reference, not a BLAS.
func (cpu *CPUBackend) MatMul(dst, a, b *tensor.RawTensor) error {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		return fmt.Errorf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		return fmt.Errorf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n)
	}
	if !dst.Shape().Equal(tensor.Shape{m, n}) {
		return fmt.Errorf("matmul: destination shape %v, want [%d,%d]", dst.Shape(), m, n)
	}
	if a.DType() != b.DType() || a.DType() != dst.DType() {
		return fmt.Errorf("matmul: dtype mismatch %s, %s -> %s", a.DType(), b.DType(), dst.DType())
	}

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(dst.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n)
	case tensor.Float64:
		matmulFloat64(dst.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n)
	default:
		return fmt.Errorf("matmul: unsupported dtype %s", a.DType())
	}
	return nil
}

// matmulFloat32 performs naive matrix multiplication for float32.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulFloat32(c, a, b []float32, m, k, n int) {
	for i := range c {
		c[i] = 0
	}
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] += av * b[l*n+j]
			}
		}
	}
}

// matmulFloat64 performs naive matrix multiplication for float64.
func matmulFloat64(c, a, b []float64, m, k, n int) {
	for i := range c {
		c[i] = 0
	}
	for i := 0; i < m; i++ {
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			if av == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				c[i*n+j] += av * b[l*n+j]
			}
		}
	}
}
