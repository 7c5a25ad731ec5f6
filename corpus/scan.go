package corpus

import (
	"bufio"
	"os"
)

// lines longer than this are rejected by the scanner
const maxLineSize = 1 << 20

// ScanLines calls fn for every line of the file at path with its
// 1-based line number. Scanning stops at the first error returned
// by fn, which is passed through unchanged.
func ScanLines(path string, fn func(lineNo int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return NewIOError(path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		if err := fn(lineNo, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return NewIOError(path, err)
	}
	return nil
}
