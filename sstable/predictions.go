package sstable

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/bobonovski/gonb/corpus"
)

// WritePredictions writes one predicted category per line,
// categories[i] being the prediction of document i+1
func WritePredictions(categories []int, fn string) (err error) {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return corpus.NewIOError(fn, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = corpus.NewIOError(fn, cerr)
		}
	}()

	w := bufio.NewWriter(out)
	for _, c := range categories {
		if _, err := w.WriteString(strconv.Itoa(c) + "\n"); err != nil {
			return corpus.NewIOError(fn, err)
		}
	}
	if err := w.Flush(); err != nil {
		return corpus.NewIOError(fn, err)
	}
	return nil
}

// ReadPredictions reads a file written by WritePredictions
func ReadPredictions(fn string) ([]int, error) {
	var categories []int
	err := corpus.ScanLines(fn, func(lineNo int, txt string) error {
		c, err := strconv.Atoi(strings.TrimSpace(txt))
		if err != nil {
			return corpus.NewFormatError(fn, lineNo, txt, err)
		}
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}
