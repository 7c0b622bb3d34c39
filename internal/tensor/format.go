package tensor

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// String renders the tensor for diagnostics.
//
// Rank 1 is a single bracketed line, rank 2 one bracketed line per row, and
// rank 3 one "Slice i:" block per outer index, each followed by a blank line.
// Values use six significant digits. The format is not meant to be parsed.
func (t *Tensor) String() string {
	if t == nil || t.buf == nil {
		return ""
	}

	var sb strings.Builder
	data := t.data()
	switch len(t.shape) {
	case 1:
		writeRow(&sb, data)
	case 2:
		writeMatrix(&sb, data, t.shape[0], t.shape[1])
	case 3:
		rows, cols := t.shape[1], t.shape[2]
		size := rows * cols
		for i := 0; i < t.shape[0]; i++ {
			sb.WriteString("Slice ")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(":\n")
			writeMatrix(&sb, data[i*size:(i+1)*size], rows, cols)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writeMatrix(sb *strings.Builder, data []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		writeRow(sb, data[i*cols:(i+1)*cols])
		sb.WriteByte('\n')
	}
}

func writeRow(sb *strings.Builder, row []float64) {
	sb.WriteString("[ ")
	for _, v := range row {
		sb.WriteString(FormatValue(v))
		sb.WriteByte(' ')
	}
	sb.WriteString("]")
}

// FormatValue renders one element the way String does.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.AllClose(other, 0)
}

// AllClose reports whether both tensors have the same shape and every pair of
// elements differs by at most tol.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !t.shape.Equal(other.shape) {
		return false
	}
	return floats.EqualApprox(t.data(), other.data(), tol)
}
