package corpus

import (
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"
)

// Corpus holds the sparse word counts of every document.
// Docs[i] are the word counts of document i+1 in the order
// the words first appeared in the data file.
type Corpus struct {
	DocNum    uint32
	MaxWordId uint32
	Docs      [][]WordCount
}

type WordCount struct {
	WordId uint32
	Count  uint32
}

// key of a (document, word) pair
type DocWord struct {
	DocId  uint32
	WordId uint32
}

// NewCorpus creates an empty corpus of n documents
func NewCorpus(n int) *Corpus {
	return &Corpus{
		DocNum: uint32(n),
		Docs:   make([][]WordCount, n),
	}
}

// Set records count for wordId in document docId. Setting a word
// twice overwrites the first count but keeps its position.
func (this *Corpus) Set(docId, wordId, count uint32) {
	this.Grow(int(docId))
	doc := this.Docs[docId-1]
	for i := range doc {
		if doc[i].WordId == wordId {
			doc[i].Count = count
			return
		}
	}
	this.Docs[docId-1] = append(doc, WordCount{WordId: wordId, Count: count})
	if wordId > this.MaxWordId {
		this.MaxWordId = wordId
	}
}

// Grow extends the corpus to at least n documents, new documents
// have no words
func (this *Corpus) Grow(n int) {
	for len(this.Docs) < n {
		this.Docs = append(this.Docs, nil)
	}
	if uint32(len(this.Docs)) > this.DocNum {
		this.DocNum = uint32(len(this.Docs))
	}
}

// Doc returns the word counts of the 1-based document id
func (this *Corpus) Doc(docId int) []WordCount {
	if docId < 1 || docId > len(this.Docs) {
		return nil
	}
	return this.Docs[docId-1]
}

// load the data file, the file format should be like:
// [docId,wordId,count]
// a document may span many lines. A repeated (docId, wordId)
// pair replaces the earlier count instead of adding to it.
func LoadCorpus(path string) (*Corpus, error) {
	c := NewCorpus(0)
	// position of every (doc, word) pair inside Docs[doc-1]
	seen := make(map[DocWord]int)
	pairs := 0

	err := ScanLines(path, func(lineNo int, line string) error {
		vals := strings.Split(line, ",")
		if len(vals) < 3 {
			return NewFormatError(path, lineNo, line,
				errors.Wrapf(ErrMissingField, "want 3 fields, got %d", len(vals)))
		}

		var ids [3]uint32
		for i := 0; i < 3; i += 1 {
			v, err := strconv.ParseUint(strings.TrimSpace(vals[i]), 10, 32)
			if err != nil {
				return NewFormatError(path, lineNo, line, err)
			}
			ids[i] = uint32(v)
		}
		docId, wordId, count := ids[0], ids[1], ids[2]
		if docId == 0 || wordId == 0 {
			return NewFormatError(path, lineNo, line, ErrNonPositiveId)
		}

		c.Grow(int(docId))
		key := DocWord{DocId: docId, WordId: wordId}
		if pos, ok := seen[key]; ok {
			log.V(1).Infof("%s:%d: duplicate word %d in document %d, keeping last count",
				path, lineNo, wordId, docId)
			c.Docs[docId-1][pos].Count = count
			return nil
		}
		seen[key] = len(c.Docs[docId-1])
		c.Docs[docId-1] = append(c.Docs[docId-1], WordCount{WordId: wordId, Count: count})
		if wordId > c.MaxWordId {
			c.MaxWordId = wordId
		}
		pairs += 1
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("%s: number of documents %d, distinct (document, word) pairs %d",
		path, c.DocNum, pairs)
	return c, nil
}
