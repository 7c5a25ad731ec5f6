package sstable

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/bobonovski/gonb/corpus"
	"github.com/bobonovski/gonb/table"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownWord     = errors.New("word id outside the vocabulary")
)

// WriteTable serializes t to fn, one [category\tword\tprobability]
// line per entry in category major, word minor order. Probabilities
// are written with the fewest digits that parse back to the same
// float64, so the output is stable across runs.
func WriteTable(t *table.ProbabilityTable, fn string) (err error) {
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
	buf := make([]byte, 0, 64)
	rows := 0
	for c := 0; c < t.Categories.Len(); c += 1 {
		category := int64(t.Categories.ID(c))
		for word := uint32(1); word <= t.VocabSize; word += 1 {
			p, ok := t.Get(c, word)
			if !ok {
				continue
			}
			buf = buf[:0]
			buf = strconv.AppendInt(buf, category, 10)
			buf = append(buf, '\t')
			buf = strconv.AppendUint(buf, uint64(word), 10)
			buf = append(buf, '\t')
			buf = strconv.AppendFloat(buf, p, 'g', -1, 64)
			buf = append(buf, '\n')
			if _, err := w.Write(buf); err != nil {
				return corpus.NewIOError(fn, err)
			}
			rows += 1
		}
	}
	if err := w.Flush(); err != nil {
		return corpus.NewIOError(fn, err)
	}

	log.Infof("wrote %d rows to %s", rows, fn)
	return nil
}

// ReadTable deserializes a table written by WriteTable. Pairs that
// are not in the file stay absent in the returned table.
func ReadTable(fn string, cats *corpus.Categories, vocabSize uint32) (*table.ProbabilityTable, error) {
	t := table.NewProbabilityTable(cats, vocabSize)

	err := corpus.ScanLines(fn, func(lineNo int, txt string) error {
		value := strings.Split(txt, "\t")
		if len(value) != 3 {
			return corpus.NewFormatError(fn, lineNo, txt,
				errors.Wrapf(corpus.ErrMissingField, "want 3 tab separated fields, got %d", len(value)))
		}
		category, err := strconv.Atoi(strings.TrimSpace(value[0]))
		if err != nil {
			return corpus.NewFormatError(fn, lineNo, txt, err)
		}
		c, ok := cats.Index(category)
		if !ok {
			return corpus.NewFormatError(fn, lineNo, txt,
				errors.Wrapf(ErrUnknownCategory, "category %d", category))
		}
		word, err := strconv.ParseUint(strings.TrimSpace(value[1]), 10, 32)
		if err != nil {
			return corpus.NewFormatError(fn, lineNo, txt, err)
		}
		if word == 0 || word > uint64(vocabSize) {
			return corpus.NewFormatError(fn, lineNo, txt,
				errors.Wrapf(ErrUnknownWord, "word %d", word))
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(value[2]), 64)
		if err != nil {
			return corpus.NewFormatError(fn, lineNo, txt, err)
		}
		t.Set(c, uint32(word), p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
