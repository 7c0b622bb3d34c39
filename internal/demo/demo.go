// Package demo holds the walkthrough scenarios printed by the CLI.
package demo

import (
	"fmt"
	"io"

	"github.com/born-ml/tensor3/internal/tensor"
)

// Scenario is one numbered walkthrough step.
type Scenario struct {
	Number int
	Title  string
	Run    func(w io.Writer) error
}

// Scenarios returns every walkthrough step in order.
func Scenarios() []Scenario {
	return []Scenario{
		{1, "random 2x3x4 in [1, 10)", randomCube},
		{2, "literal 2x3", literal},
		{3, "zeros 2x3", zeros},
		{4, "ones 2x3x3", ones},
		{5, "arange -5.1..5.1", arange},
		{6, "add two random 2x3", addRandom},
		{7, "row broadcast add", broadcast([]float64{-1, -2}, (*tensor.Tensor).Add)},
		{8, "row broadcast sub", broadcast([]float64{10, 5}, (*tensor.Tensor).Sub)},
		{9, "row broadcast mul", broadcast([]float64{1, 3}, (*tensor.Tensor).Mul)},
		{10, "view 12 as 3x4", view},
		{11, "unsqueeze", unsqueeze},
		{12, "concat along axis 1", concat},
		{13, "dot product", dot},
		{14, "matrix multiply", matmul},
		{15, "relu then sigmoid", activations},
	}
}

// Lookup returns the scenario with the given number.
func Lookup(n int) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.Number == n {
			return s, true
		}
	}
	return Scenario{}, false
}

// printer writes tensors separated by blank lines and keeps the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(ts ...*tensor.Tensor) {
	for _, t := range ts {
		if p.err != nil {
			return
		}
		_, p.err = fmt.Fprintf(p.w, "%s\n\n", t)
	}
}

func randomCube(w io.Writer) error {
	t, err := tensor.Random(tensor.Shape{2, 3, 4}, 1, 10)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(t)
	return p.err
}

func literal(w io.Writer) error {
	t, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 34, 56.2, 3, 0})
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(t)
	return p.err
}

func zeros(w io.Writer) error {
	t, err := tensor.Zeros(tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(t)
	return p.err
}

func ones(w io.Writer) error {
	t, err := tensor.Ones(tensor.Shape{2, 3, 3})
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(t)
	return p.err
}

func arange(w io.Writer) error {
	t, err := tensor.Arange(-5.1, 5.1)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(t)
	return p.err
}

func addRandom(w io.Writer) error {
	a, err := tensor.Random(tensor.Shape{2, 3}, 0, 1)
	if err != nil {
		return err
	}
	b, err := tensor.Random(tensor.Shape{2, 3}, 0, 1)
	if err != nil {
		return err
	}
	c, err := a.Add(b)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}

var broadcastBase = []float64{1, 2, 3, 4, 5, 6, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 12, 12, 3, -1}

func broadcast(row []float64, op func(*tensor.Tensor, *tensor.Tensor) (*tensor.Tensor, error)) func(io.Writer) error {
	return func(w io.Writer) error {
		a, err := tensor.New(tensor.Shape{10, 2}, broadcastBase)
		if err != nil {
			return err
		}
		b, err := tensor.New(tensor.Shape{1, 2}, row)
		if err != nil {
			return err
		}
		c, err := op(a, b)
		if err != nil {
			return err
		}
		p := &printer{w: w}
		p.print(a, b, c)
		return p.err
	}
}

func view(w io.Writer) error {
	a, err := tensor.Arange(0, 12)
	if err != nil {
		return err
	}
	b, err := a.View(tensor.Shape{3, 4})
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b)
	return p.err
}

func unsqueeze(w io.Writer) error {
	a, err := tensor.Arange(0, 3)
	if err != nil {
		return err
	}
	b, err := a.Unsqueeze(0)
	if err != nil {
		return err
	}
	c, err := a.Unsqueeze(1)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}

func concat(w io.Writer) error {
	a, err := tensor.Ones(tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	b, err := tensor.Zeros(tensor.Shape{2, 3})
	if err != nil {
		return err
	}
	c, err := tensor.Concat([]*tensor.Tensor{a, b}, 1)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}

func dot(w io.Writer) error {
	a, err := tensor.Arange(1, 5)
	if err != nil {
		return err
	}
	b, err := tensor.Arange(2, 6)
	if err != nil {
		return err
	}
	c, err := tensor.Dot(a, b)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}

func matmul(w io.Writer) error {
	a, err := tensor.New(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		return err
	}
	b, err := tensor.New(tensor.Shape{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		return err
	}
	c, err := tensor.MatMul(a, b)
	if err != nil {
		return err
	}
	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}

func activations(w io.Writer) error {
	aux, err := tensor.Arange(-5, 5)
	if err != nil {
		return err
	}
	a, err := aux.View(tensor.Shape{2, 5})
	if err != nil {
		return err
	}
	b := a.Apply(tensor.ReLU{})
	c := b.Apply(tensor.Sigmoid{})

	p := &printer{w: w}
	p.print(a, b, c)
	return p.err
}
