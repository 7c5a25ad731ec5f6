package eval

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write renders the report as text. names maps category ids to
// readable names and may be nil.
func (r *Report) Write(out io.Writer, names map[int]string) error {
	w := bufio.NewWriter(out)

	fmt.Fprintf(w, "Overall Accuracy = %.4f\n", r.Accuracy())
	fmt.Fprintln(w, "Class Accuracy:")
	for _, c := range r.Classes {
		acc := "n/a"
		if v, ok := c.Accuracy(); ok {
			acc = strconv.FormatFloat(v, 'f', 4, 64)
		}
		if name, ok := names[c.Category]; ok {
			fmt.Fprintf(w, "\tGroup %d: %s (%s)\n", c.Category, acc, name)
		} else {
			fmt.Fprintf(w, "\tGroup %d: %s\n", c.Category, acc)
		}
	}

	fmt.Fprintln(w, "Confusion Matrix:")
	cats := r.Confusion.Categories
	for col := 0; col < cats.Len(); col += 1 {
		fmt.Fprintf(w, "\t%d", cats.ID(col))
	}
	fmt.Fprintln(w)
	for row := 0; row < len(r.Classes); row += 1 {
		fmt.Fprintf(w, "%d", cats.ID(row))
		for _, n := range r.Confusion.Row(row) {
			fmt.Fprintf(w, "\t%d", n)
		}
		fmt.Fprintln(w)
	}

	return w.Flush()
}
