package simplex

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
	"q.log/tableau/tableau"
)

// PrintSnapshot writes s to stdout.
func PrintSnapshot(s Snapshot) {
	FprintSnapshot(os.Stdout, s)
}

// FprintSnapshot writes the tableau of s as a table with the basis in the
// first column and, for primal iterations, the ratio test in the last.
func FprintSnapshot(w io.Writer, s Snapshot) {
	fmt.Fprintf(w, "-------------------- ITERATION %v (%v) ----------------------\n", s.Iteration, s.Method)
	fmt.Fprintf(w, "%v enters, %v leaves\n", s.Entering, s.Leaving)
	fprintTable(w, s.Tableau, s.Labels, s.Basis, s.RowRatios)
	if s.ColumnRatios != nil {
		fmt.Fprintf(w, "dual ratios: %s\n", formatRatios(s.ColumnRatios))
	}
}

// FprintResult writes the final tableau and the solution carried by r.
func FprintResult(w io.Writer, r *Result) {
	fmt.Fprintf(w, "-------------------- FINAL (%v, %d iterations) ----------------------\n", r.Method, r.Iterations)
	if r.Tableau != nil {
		fprintTable(w, r.Tableau, r.Labels, r.Basis, nil)
	}
	fmt.Fprintf(w, "status: %v\n", r.Status)
	if !r.IsOptimal() {
		return
	}
	fmt.Fprintf(w, "Z = %.4f\n", r.Objective)
	for i, v := range r.Values {
		fmt.Fprintf(w, "x%d = %.4f\n", i+1, v)
	}
}

func fprintTable(w io.Writer, t *mat.Dense, labels, basis []tableau.Label, ratios []float64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows, cols := t.Dims()

	header := append([]string{"basis"}, tableau.Labels(labels)...)
	if ratios != nil {
		header = append(header, "ratio")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for i := range rows {
		cells := make([]string, 0, cols+2)
		if i == 0 {
			cells = append(cells, "Z")
		} else {
			cells = append(cells, basis[i-1].String())
		}
		for j := range cols {
			cells = append(cells, strconv.FormatFloat(t.At(i, j), 'g', 6, 64))
		}
		if ratios != nil {
			if i == 0 {
				cells = append(cells, "")
			} else {
				cells = append(cells, formatRatio(ratios[i-1]))
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	tw.Flush()
}

func formatRatio(r float64) string {
	if math.IsInf(r, 0) {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}

func formatRatios(rs []float64) string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = formatRatio(r)
	}
	return "[" + strings.Join(out, " ") + "]"
}
