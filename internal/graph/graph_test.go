package graph

import (
	"testing"

	"github.com/lattice-ml/lattice/internal/tensor"
)

func TestGraphAddTensor(t *testing.T) {
	g := New()

	a, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	b, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)

	if slot := g.AddTensor(a); slot != 0 {
		t.Errorf("first slot = %d, want 0", slot)
	}
	if slot := g.AddTensor(b); slot != 1 {
		t.Errorf("second slot = %d, want 1", slot)
	}

	got, err := g.Tensor(1)
	if err != nil {
		t.Fatalf("Tensor(1) failed: %v", err)
	}
	if got != b {
		t.Error("Tensor(1) did not resolve to the registered tensor")
	}
}

func TestGraphAddNode(t *testing.T) {
	g := New()
	a, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	b, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	out, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)

	ia, ib, iout := g.AddTensor(a), g.AddTensor(b), g.AddTensor(out)

	idx, err := g.AddNode(OpAdd, []int{ia, ib}, []int{iout})
	if err != nil {
		t.Fatalf("AddNode failed: %v", err)
	}
	if idx != 0 {
		t.Errorf("node index = %d, want 0", idx)
	}

	node, err := g.Node(idx)
	if err != nil {
		t.Fatalf("Node(%d) failed: %v", idx, err)
	}
	if node.Op != OpAdd {
		t.Errorf("node op = %s, want ADD", node.Op)
	}
	if len(node.Inputs) != 2 || node.Inputs[0] != ia || node.Inputs[1] != ib {
		t.Errorf("node inputs = %v, want [%d %d]", node.Inputs, ia, ib)
	}
	if len(node.Outputs) != 1 || node.Outputs[0] != iout {
		t.Errorf("node outputs = %v, want [%d]", node.Outputs, iout)
	}
}

func TestGraphAddNodeBadSlot(t *testing.T) {
	g := New()
	a, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32)
	ia := g.AddTensor(a)

	if _, err := g.AddNode(OpAdd, []int{ia, 7}, []int{ia}); err == nil {
		t.Error("AddNode with out-of-range input slot should fail")
	}
	if _, err := g.AddNode(OpAdd, []int{ia}, []int{-1}); err == nil {
		t.Error("AddNode with negative output slot should fail")
	}
}

func TestGraphNodeOutOfRange(t *testing.T) {
	g := New()

	if _, err := g.Node(0); err == nil {
		t.Error("Node(0) on empty graph should fail")
	}
	if _, err := g.Tensor(3); err == nil {
		t.Error("Tensor(3) on empty graph should fail")
	}
}

func TestOpCodeString(t *testing.T) {
	tests := []struct {
		op   OpCode
		want string
	}{
		{OpAdd, "ADD"},
		{OpSub, "SUB"},
		{OpFullyConnected, "FULLY_CONNECTED"},
		{OpNone, "NONE"},
		{OpCode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OpCode(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
