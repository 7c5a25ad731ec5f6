package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVocabulary(t *testing.T) {
	path := writeFile(t, "vocabulary.txt", "archive\n  name \natheism\n")

	v, err := LoadVocabulary(path)
	require.NoError(t, err)

	assert.Equal(t, 3, v.Size())
	w, ok := v.Word(2)
	assert.True(t, ok)
	assert.Equal(t, "name", w)

	assert.True(t, v.Contains(3))
	assert.False(t, v.Contains(0))
	assert.False(t, v.Contains(4))
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "nope.txt"))

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.True(t, os.IsNotExist(ioErr.Err))
}

func TestLoadVocabularyEmpty(t *testing.T) {
	_, err := LoadVocabulary(writeFile(t, "vocabulary.txt", ""))

	var fmtErr *FormatError
	require.True(t, errors.As(err, &fmtErr))
	assert.Equal(t, ErrEmptyVocabulary, fmtErr.Err)
}

func TestLoadLabels(t *testing.T) {
	path := writeFile(t, "train.label", "3\n1\n3 \n2\n")

	l, err := LoadLabels(path)
	require.NoError(t, err)

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, []int{3, 1, 2}, l.Categories().IDs())
	assert.Equal(t, []int{2, 1, 1}, l.Counts())

	c, ok := l.Category(3)
	assert.True(t, ok)
	assert.Equal(t, 3, c)
	_, ok = l.Category(5)
	assert.False(t, ok)

	m := l.Membership()
	assert.Equal(t, 4, m.Total())
	assert.Equal(t, []int{1, 3}, m.Docs(0))
	assert.Equal(t, []int{2}, m.Docs(1))
	assert.Equal(t, []int{4}, m.Docs(2))
}

func TestLoadLabelsBadLine(t *testing.T) {
	_, err := LoadLabels(writeFile(t, "train.label", "1\nx\n"))

	var fmtErr *FormatError
	require.True(t, errors.As(err, &fmtErr))
	assert.Equal(t, 2, fmtErr.Line)
	assert.Equal(t, "x", fmtErr.Text)
}

func TestLoadCorpus(t *testing.T) {
	path := writeFile(t, "train.data", "1,1,4\n1,3,2\n2,2,1\n1,1,7\n4,3,1\n")

	c, err := LoadCorpus(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(4), c.DocNum)
	assert.Equal(t, uint32(3), c.MaxWordId)
	// the repeated (1, 1) pair overwrites in place
	assert.Equal(t, []WordCount{{1, 7}, {3, 2}}, c.Doc(1))
	assert.Equal(t, []WordCount{{2, 1}}, c.Doc(2))
	assert.Empty(t, c.Doc(3))
	assert.Equal(t, []WordCount{{3, 1}}, c.Doc(4))
	assert.Nil(t, c.Doc(5))
}

func TestLoadCorpusFormatErrors(t *testing.T) {
	cases := map[string]string{
		"missing column": "1,2,3\n1,2\n",
		"not a number":   "1,2,3\n1,b,3\n",
		"negative count": "1,2,3\n1,2,-1\n",
		"zero id":        "1,2,3\n0,2,1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCorpus(writeFile(t, "bad.data", content))

			var fmtErr *FormatError
			require.True(t, errors.As(err, &fmtErr), "got %v", err)
			assert.Equal(t, 2, fmtErr.Line)
		})
	}
}

func TestCorpusSet(t *testing.T) {
	c := NewCorpus(1)
	c.Set(3, 5, 2)
	c.Set(3, 6, 1)
	c.Set(3, 5, 4)

	assert.Equal(t, uint32(3), c.DocNum)
	assert.Equal(t, uint32(6), c.MaxWordId)
	assert.Equal(t, []WordCount{{5, 4}, {6, 1}}, c.Doc(3))

	c.Grow(5)
	assert.Equal(t, uint32(5), c.DocNum)
}

func TestLoadCategoryNames(t *testing.T) {
	path := writeFile(t, "map.csv", "1,alt.atheism\n2,comp.graphics\n")

	names, err := LoadCategoryNames(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "alt.atheism", 2: "comp.graphics"}, names)

	_, err = LoadCategoryNames(writeFile(t, "map.csv", "1\n"))
	var fmtErr *FormatError
	assert.True(t, errors.As(err, &fmtErr))
}

func TestCategories(t *testing.T) {
	c := NewCategories(20, 3, 20, 7)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{20, 3, 7}, c.IDs())
	idx, ok := c.Index(7)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 3, c.ID(1))
	_, ok = c.Index(1)
	assert.False(t, ok)
}
