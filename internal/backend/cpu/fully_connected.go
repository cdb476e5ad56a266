package cpu

import (
	"fmt"

	"github.com/lattice-ml/lattice/internal/tensor"
)

// FullyConnected computes dst = x @ wᵀ + bias for float32 operands.
//
// x is (batch, inFeatures), weights is (outFeatures, inFeatures) in the usual
// row-per-output layout, bias is (outFeatures) or nil. No activation is fused.
// This is the host's reference semantics for OpFullyConnected; delegates may
// claim the op and substitute their own implementation.
func (cpu *CPUBackend) FullyConnected(dst, x, weights, bias *tensor.RawTensor) error {
	xShape := x.Shape()
	wShape := weights.Shape()

	if len(xShape) != 2 || len(wShape) != 2 {
		return fmt.Errorf("fully_connected: need 2D input and weights, got %dD and %dD", len(xShape), len(wShape))
	}

	batch, inFeatures := xShape[0], xShape[1]
	outFeatures, inAlt := wShape[0], wShape[1]

	if inFeatures != inAlt {
		return fmt.Errorf("fully_connected: input features %d != weight features %d", inFeatures, inAlt)
	}
	if !dst.Shape().Equal(tensor.Shape{batch, outFeatures}) {
		return fmt.Errorf("fully_connected: destination shape %v, want [%d,%d]", dst.Shape(), batch, outFeatures)
	}
	if bias != nil && bias.NumElements() != outFeatures {
		return fmt.Errorf("fully_connected: bias has %d elements, want %d", bias.NumElements(), outFeatures)
	}
	if x.DType() != tensor.Float32 || weights.DType() != tensor.Float32 || dst.DType() != tensor.Float32 {
		return fmt.Errorf("fully_connected: unsupported dtype %s (only float32)", weights.DType())
	}

	xs := x.AsFloat32()
	ws := weights.AsFloat32()
	out := dst.AsFloat32()

	var bs []float32
	if bias != nil {
		bs = bias.AsFloat32()
	}

	for i := 0; i < batch; i++ {
		for o := 0; o < outFeatures; o++ {
			var acc float32
			if bs != nil {
				acc = bs[o]
			}
			row := xs[i*inFeatures : (i+1)*inFeatures]
			wrow := ws[o*inFeatures : (o+1)*inFeatures]
			for k := range row {
				acc += row[k] * wrow[k]
			}
			out[i*outFeatures+o] = acc
		}
	}
	return nil
}
