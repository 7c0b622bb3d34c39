// Package render draws tensors as aligned text tables for the CLI.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/tensor3/internal/tensor"
)

// Table writes t as one table per rank-2 slice.
// Rank 1 renders as a single row, rank 3 as one titled table per outer index.
func Table(w io.Writer, t *tensor.Tensor) error {
	shape := t.Shape()
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	data := t.Data()

	switch len(shape) {
	case 1:
		renderMatrix(w, data, 1, shape[0])
	case 2:
		renderMatrix(w, data, shape[0], shape[1])
	case 3:
		rows, cols := shape[1], shape[2]
		size := rows * cols
		for i := 0; i < shape[0]; i++ {
			fmt.Fprintf(w, "Slice %d:\n", i)
			renderMatrix(w, data[i*size:(i+1)*size], rows, cols)
			fmt.Fprintln(w)
		}
	}
	return nil
}

func renderMatrix(w io.Writer, data []float64, rows, cols int) {
	header := make([]string, cols+1)
	for j := 0; j < cols; j++ {
		header[j+1] = strconv.Itoa(j)
	}

	body := make([][]string, rows)
	for i := 0; i < rows; i++ {
		row := make([]string, cols+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < cols; j++ {
			row[j+1] = tensor.FormatValue(data[i*cols+j])
		}
		body[i] = row
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.AppendBulk(body)
	table.Render()
}
