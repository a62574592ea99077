package symgraph_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/njchilds90/symgraph"
)

func TestMul_Partial(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	w := symgraph.NewVariable("w", 4)

	z := symgraph.MulOf(x, y)

	if z1 := z.Partial(x); !symgraph.Equal(z1, y) {
		t.Errorf("dz/dx: want y, got %s", z1)
	}
	if z2 := z.Partial(y); !symgraph.Equal(z2, x) {
		t.Errorf("dz/dy: want x, got %s", z2)
	}
	if z3 := z.Partial(w); !symgraph.IsConstantWithValue(z3, 0) {
		t.Errorf("dz/dw: want constant 0, got %s", spew.Sdump(z3))
	}
}

func TestMul_PartialReturnsSharedHandle(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	z := symgraph.MulOf(x, y)
	if z.Partial(x) != symgraph.Node(y) {
		t.Error("dz/dx should be the y handle itself, not a copy")
	}
}

func TestMul_PartialDistinctSameName(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	other := symgraph.NewVariable("x", 2)
	z := symgraph.MulOf(x, symgraph.NewConstant(3))
	if d := z.Partial(other); !symgraph.IsConstantWithValue(d, 0) {
		t.Errorf("a different variable named x is not a factor, got %s", d)
	}
}

func TestMul_PartialCompositeArgument(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	w := symgraph.NewVariable("w", 4)
	z := symgraph.MulOf(symgraph.AddOf(x, y), w)

	// structurally equal but separately built
	d := z.Partial(symgraph.AddOf(x, y))
	if !symgraph.Equal(d, w) {
		t.Errorf("want w, got %s", d)
	}
	// one level only: x sits below the first factor
	if d := z.Partial(x); !symgraph.IsConstantWithValue(d, 0) {
		t.Errorf("want 0, got %s", d)
	}
}

func TestMul_PartialSquare(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	d := x2(x).Partial(x)
	// both factors match, so both local derivatives are summed
	if d.String() != "x + x" {
		t.Errorf("want 'x + x', got %s", d)
	}
	if d.Value() != 4 {
		t.Errorf("want 4, got %v", d.Value())
	}
}

func TestMul_PartialSelf(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	if d := symgraph.MulOf(x, y).Partial(symgraph.MulOf(x, y)); !symgraph.IsConstantWithValue(d, 1) {
		t.Errorf("want 1, got %s", d)
	}
}

func TestMul_Value(t *testing.T) {
	c := symgraph.NewConstant(5)
	x := symgraph.NewVariable("x", 2)
	if v := symgraph.MulOf(c, x).Value(); v != 10 {
		t.Errorf("want 10, got %v", v)
	}
}

func TestMul_ValueTracksVariable(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	z := symgraph.MulOf(x, x)
	if v := z.Value(); v != 4 {
		t.Errorf("want 4, got %v", v)
	}
	x.SetValue(3)
	if v := z.Value(); v != 9 {
		t.Errorf("want 9 after SetValue, got %v", v)
	}
}

func TestMul_ValueIEEE(t *testing.T) {
	inf := symgraph.NewConstant(math.Inf(1))
	zero := symgraph.NewConstant(0)
	if v := symgraph.MulOf(inf, zero).Value(); !math.IsNaN(v) {
		t.Errorf("Inf*0 should be NaN, got %v", v)
	}
	if v := symgraph.MulOf(inf, symgraph.NewConstant(-2)).Value(); !math.IsInf(v, -1) {
		t.Errorf("Inf*-2 should be -Inf, got %v", v)
	}
}

func TestMul_Arguments(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	args := symgraph.MulOf(x, y).Arguments()
	if len(args) != 2 || args[0] != symgraph.Node(x) || args[1] != symgraph.Node(y) {
		t.Errorf("want [x y], got %s", spew.Sdump(args))
	}
}

func TestMul_String(t *testing.T) {
	x := symgraph.NewVariable("x", 2)
	y := symgraph.NewVariable("y", 3)
	w := symgraph.NewVariable("w", 4)
	if s := symgraph.MulOf(symgraph.AddOf(x, y), w).String(); s != "(x + y)*w" {
		t.Errorf("want '(x + y)*w', got %s", s)
	}
	if s := symgraph.MulOf(w, symgraph.AddOf(x, y)).String(); s != "w*(x + y)" {
		t.Errorf("want 'w*(x + y)', got %s", s)
	}
}

func x2(x symgraph.Node) *symgraph.Mul { return symgraph.MulOf(x, x) }
