package sequence

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format is the layout of a sequence file.
type Format int

const (
	FormatUnknown Format = iota
	FormatFASTA          // '>' header lines followed by sequence lines
	FormatText           // raw sequence, optionally tab separated with a "sequence" header
)

// FormatInfo describes a supported file format.
type FormatInfo struct {
	Format      Format
	Description string
	Extensions  []string
}

var supportedFormats = map[Format]FormatInfo{
	FormatFASTA: {
		Format:      FormatFASTA,
		Description: "FASTA",
		Extensions:  []string{".fa", ".fasta", ".fna", ".ffn", ".faa"},
	},
	FormatText: {
		Format:      FormatText,
		Description: "Plain text sequence",
		Extensions:  []string{".txt", ".dna", ".seq"},
	},
}

func (f Format) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFormat picks a format from the file extension (".gz" is looked through),
// falling back to the first non-blank byte of head: '>' means FASTA.
func DetectFormat(path string, head []byte) Format {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	ext := filepath.Ext(name)
	for _, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return info.Format
			}
		}
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '>' {
		return FormatFASTA
	}
	return FormatText
}
