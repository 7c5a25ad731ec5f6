package corpus

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCategoryNames reads the category map file made of
// [categoryId,name] lines
func LoadCategoryNames(path string) (map[int]string, error) {
	names := make(map[int]string)
	err := ScanLines(path, func(lineNo int, line string) error {
		vals := strings.SplitN(line, ",", 2)
		if len(vals) != 2 {
			return NewFormatError(path, lineNo, line,
				errors.Wrap(ErrMissingField, "want categoryId,name"))
		}
		id, err := strconv.Atoi(strings.TrimSpace(vals[0]))
		if err != nil {
			return NewFormatError(path, lineNo, line, err)
		}
		names[id] = strings.TrimSpace(vals[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
