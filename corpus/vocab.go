package corpus

import (
	"strings"

	log "github.com/golang/glog"
)

// Vocabulary maps 1-based word ids to tokens. The id of a token
// is the line it was read from.
type Vocabulary struct {
	words []string
}

// NewVocabulary creates a vocabulary where words[i] gets id i+1
func NewVocabulary(words ...string) *Vocabulary {
	w := make([]string, len(words))
	copy(w, words)
	return &Vocabulary{words: w}
}

// load the vocabulary file, one token per line
func LoadVocabulary(path string) (*Vocabulary, error) {
	var words []string
	err := ScanLines(path, func(_ int, line string) error {
		words = append(words, strings.TrimSpace(line))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, NewFormatError(path, 0, "", ErrEmptyVocabulary)
	}

	log.Infof("vocabulary size %d", len(words))
	return &Vocabulary{words: words}, nil
}

// Size returns the number of words V
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Contains reports whether wordId is a valid id of the vocabulary
func (v *Vocabulary) Contains(wordId uint32) bool {
	return wordId >= 1 && int(wordId) <= len(v.words)
}

// Word returns the token of wordId
func (v *Vocabulary) Word(wordId uint32) (string, bool) {
	if !v.Contains(wordId) {
		return "", false
	}
	return v.words[wordId-1], true
}
