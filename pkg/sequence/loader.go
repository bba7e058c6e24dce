// Package sequence loads sequences from FASTA or plain text files, gzip compressed or not.
package sequence

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoRecords is returned when a file holds no sequence data.
var ErrNoRecords = errors.New("no sequence records found")

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// Options tune how sequence text is normalized while loading.
type Options struct {
	// Uppercase folds ASCII letters to upper case. No other byte is altered or filtered.
	Uppercase bool
}

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads every record from path. The format is detected from the
// extension or content, and gzip input is decompressed transparently.
func Load(path string, opts Options) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	content := bufio.NewReader(file)
	if magic, _ := content.Peek(2); bytes.Equal(magic, gzipMagic) {
		gz, err := gzip.NewReader(content)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer gz.Close()
		content = bufio.NewReader(gz)
	}

	head, _ := content.Peek(512)
	format := DetectFormat(path, head)
	log.Debugf("Loading %s as %s", path, format)

	records, err := Parse(content, format, defaultID(path), opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Parse reads records in the given format. id names the single record of a
// plain text input.
func Parse(r io.Reader, format Format, id string, opts Options) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case FormatFASTA:
		records, err = parseFASTA(r, opts)
	case FormatText:
		records, err = parseText(r, id, opts)
	default:
		return nil, fmt.Errorf("unsupported format %d", format)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func parseFASTA(r io.Reader, opts Options) ([]Record, error) {
	var (
		records []Record
		id      string
		seq     strings.Builder
		started bool
	)

	flush := func() {
		if started {
			records = append(records, Record{ID: id, Seq: seq.String()})
		}
		seq.Reset()
	}

	err := eachLine(r, func(line string) {
		if strings.HasPrefix(line, ">") {
			flush()
			started = true
			id = ""
			if fields := strings.Fields(line[1:]); len(fields) > 0 {
				id = fields[0]
			}
			return
		}
		if !started {
			// sequence data before the first header gets an anonymous record
			started = true
		}
		seq.WriteString(Normalize(line, opts.Uppercase))
	})
	if err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

func parseText(r io.Reader, id string, opts Options) ([]Record, error) {
	var seq strings.Builder
	err := eachLine(r, func(line string) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.ToLower(line), "sequence") {
			return
		}
		// tabular exports keep the sequence in the first column
		field, _, _ := strings.Cut(line, "\t")
		seq.WriteString(Normalize(field, opts.Uppercase))
	})
	if err != nil {
		return nil, err
	}
	if seq.Len() == 0 {
		return nil, nil
	}
	return []Record{{ID: id, Seq: seq.String()}}, nil
}

// eachLine calls fn for every line of r without its line terminator.
// Lines of any length are accepted.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			fn(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Normalize strips ASCII whitespace from s and, when upper is set, folds ASCII
// letters to upper case. It works on bytes, so non UTF-8 input survives intact.
func Normalize(s string, upper bool) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			continue
		case upper && 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func defaultID(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
