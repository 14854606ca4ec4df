package textio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const filePerm = 0o644

// Slurp reads the whole file at path into a string.
func Slurp(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", ioError(err)
	}
	return string(b), nil
}

// SlurpLines reads the file at path and returns its lines without line
// terminators ("\n" or "\r\n").
func SlurpLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	lines := make([]string, 0)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, ioError(err)
	}
	return lines, nil
}

// Spit writes content to the file at path, creating it if necessary and
// truncating it otherwise.
func Spit(path, content string) error {
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return ioError(err)
	}
	return nil
}

// SpitAppend appends content to the file at path, creating it if necessary.
func SpitAppend(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return ioError(err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return ioError(err)
	}
	if err := f.Close(); err != nil {
		return ioError(err)
	}
	return nil
}

// SpitLines writes lines to path, each terminated by "\n".
func SpitLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return Spit(path, sb.String())
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
