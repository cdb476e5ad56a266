package cpu

import (
	"testing"

	"github.com/lattice-ml/lattice/internal/tensor"
)

func TestCPUBackend_MatMul(t *testing.T) {
	backend := New()

	t.Run("2x3_3x2", func(t *testing.T) {
		a := newFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		b := newFloat32(t, []float32{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
		dst, _ := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32)

		if err := backend.MatMul(dst, a, b); err != nil {
			t.Fatalf("MatMul failed: %v", err)
		}

		// [1 2 3; 4 5 6] @ [7 8; 9 10; 11 12] = [58 64; 139 154]
		expected := []float32{58, 64, 139, 154}
		if !float32SliceEqual(dst.AsFloat32(), expected) {
			t.Errorf("MatMul failed: got %v, expected %v", dst.AsFloat32(), expected)
		}
	})

	t.Run("InnerDimMismatch", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
		b, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
		dst, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)

		if err := backend.MatMul(dst, a, b); err == nil {
			t.Error("MatMul with mismatched inner dimensions should fail")
		}
	})

	t.Run("Not2D", func(t *testing.T) {
		a, _ := tensor.NewRaw(tensor.Shape{6}, tensor.Float32)
		b, _ := tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32)
		dst, _ := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32)

		if err := backend.MatMul(dst, a, b); err == nil {
			t.Error("MatMul with a 1D operand should fail")
		}
	})
}

func TestCPUBackend_FullyConnected(t *testing.T) {
	backend := New()

	t.Run("WithBias", func(t *testing.T) {
		// batch=2, inFeatures=3, outFeatures=2
		x := newFloat32(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		w := newFloat32(t, []float32{1, 0, 1, 0, 1, 0}, tensor.Shape{2, 3})
		bias := newFloat32(t, []float32{0.5, -0.5}, tensor.Shape{2})
		dst, _ := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float32)

		if err := backend.FullyConnected(dst, x, w, bias); err != nil {
			t.Fatalf("FullyConnected failed: %v", err)
		}

		// Row 1: [1+3+0.5, 2-0.5] = [4.5, 1.5]
		// Row 2: [4+6+0.5, 5-0.5] = [10.5, 4.5]
		expected := []float32{4.5, 1.5, 10.5, 4.5}
		if !float32SliceEqual(dst.AsFloat32(), expected) {
			t.Errorf("FullyConnected failed: got %v, expected %v", dst.AsFloat32(), expected)
		}
	})

	t.Run("NoBias", func(t *testing.T) {
		x := newFloat32(t, []float32{1, 2}, tensor.Shape{1, 2})
		w := newFloat32(t, []float32{3, 4}, tensor.Shape{1, 2})
		dst, _ := tensor.NewRaw(tensor.Shape{1, 1}, tensor.Float32)

		if err := backend.FullyConnected(dst, x, w, nil); err != nil {
			t.Fatalf("FullyConnected failed: %v", err)
		}

		if got := dst.AsFloat32()[0]; got != 11 {
			t.Errorf("FullyConnected = %v, want 11", got)
		}
	})

	t.Run("NonFloatWeights", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{1, 2}, tensor.Float32)
		w, _ := tensor.NewRaw(tensor.Shape{1, 2}, tensor.Int32)
		dst, _ := tensor.NewRaw(tensor.Shape{1, 1}, tensor.Float32)

		if err := backend.FullyConnected(dst, x, w, nil); err == nil {
			t.Error("FullyConnected with int32 weights should fail")
		}
	})

	t.Run("FeatureMismatch", func(t *testing.T) {
		x, _ := tensor.NewRaw(tensor.Shape{1, 3}, tensor.Float32)
		w, _ := tensor.NewRaw(tensor.Shape{2, 4}, tensor.Float32)
		dst, _ := tensor.NewRaw(tensor.Shape{1, 2}, tensor.Float32)

		if err := backend.FullyConnected(dst, x, w, nil); err == nil {
			t.Error("FullyConnected with mismatched feature dims should fail")
		}
	})
}
