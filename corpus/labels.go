package corpus

import (
	"strconv"
	"strings"

	log "github.com/golang/glog"
)

// Categories assigns dense indices to category ids in the
// order they are first seen
type Categories struct {
	ids   []int
	index map[int]int
}

func NewCategories(ids ...int) *Categories {
	c := &Categories{index: make(map[int]int)}
	for _, id := range ids {
		c.Add(id)
	}
	return c
}

// Add registers id if it is new and returns its index
func (c *Categories) Add(id int) int {
	if idx, ok := c.index[id]; ok {
		return idx
	}
	c.index[id] = len(c.ids)
	c.ids = append(c.ids, id)
	return len(c.ids) - 1
}

// Index returns the dense index of category id
func (c *Categories) Index(id int) (int, bool) {
	idx, ok := c.index[id]
	return idx, ok
}

// ID returns the category id stored at index idx
func (c *Categories) ID(idx int) int {
	return c.ids[idx]
}

func (c *Categories) Len() int {
	return len(c.ids)
}

// IDs returns the category ids in discovery order
func (c *Categories) IDs() []int {
	ids := make([]int, len(c.ids))
	copy(ids, c.ids)
	return ids
}

// Labels holds the true category of every document, the
// document id being the 1-based line of the label file
type Labels struct {
	cats *Categories
	docs []int // document index -> category index
}

// NewLabels builds labels where categories[i] is the category of document i+1
func NewLabels(categories ...int) *Labels {
	l := &Labels{cats: NewCategories()}
	for _, c := range categories {
		l.docs = append(l.docs, l.cats.Add(c))
	}
	return l
}

// load the label file, one integer category per line
func LoadLabels(path string) (*Labels, error) {
	l := &Labels{cats: NewCategories()}
	err := ScanLines(path, func(lineNo int, line string) error {
		c, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return NewFormatError(path, lineNo, line, err)
		}
		l.docs = append(l.docs, l.cats.Add(c))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(l.docs) == 0 {
		return nil, NewFormatError(path, 0, "", ErrNoLabels)
	}

	log.Infof("%s: %d documents in %d categories", path, len(l.docs), l.cats.Len())
	return l, nil
}

// Len returns the number of labeled documents
func (l *Labels) Len() int {
	return len(l.docs)
}

func (l *Labels) Categories() *Categories {
	return l.cats
}

// Category returns the category id of the 1-based document id
func (l *Labels) Category(docId int) (int, bool) {
	if docId < 1 || docId > len(l.docs) {
		return 0, false
	}
	return l.cats.ID(l.docs[docId-1]), true
}

// Counts returns the number of documents per category index
func (l *Labels) Counts() []int {
	counts := make([]int, l.cats.Len())
	for _, c := range l.docs {
		counts[c] += 1
	}
	return counts
}

// Membership groups document ids by category
func (l *Labels) Membership() *Membership {
	m := &Membership{
		cats: l.cats,
		docs: make([][]int, l.cats.Len()),
	}
	for i, c := range l.docs {
		m.docs[c] = append(m.docs[c], i+1)
	}
	return m
}

// Membership is the inverse of Labels: for every category index
// the ascending list of 1-based document ids belonging to it
type Membership struct {
	cats *Categories
	docs [][]int
}

func (m *Membership) Categories() *Categories {
	return m.cats
}

// Docs returns the document ids of the category at index idx
func (m *Membership) Docs(idx int) []int {
	return m.docs[idx]
}

// Total returns the number of documents over all categories
func (m *Membership) Total() int {
	n := 0
	for _, d := range m.docs {
		n += len(d)
	}
	return n
}
