// Package cli provides an interactive loop for running analyses by hand while debugging.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/seqserve/internal/report"
	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/bastiangx/seqserve/pkg/sequence"
	"github.com/bastiangx/seqserve/pkg/suffix"
	"github.com/charmbracelet/log"
)

const usage = `commands:
  freq [K] [SEQ]          count k-mers (K defaults to engine.default_k)
  kmers K PREFIX [SEQ]    list k-mers starting with PREFIX
  motif PATTERN [SEQ]     find every occurrence of PATTERN
  repeat [SEQ]            longest substring occurring at least twice
  mut A B                 edit distance between A and B
  load PATH               load the first record of a FASTA or text file
  help                    show this help
  quit                    exit
SEQ defaults to the loaded sequence.
`

var errNoSequence = errors.New("no sequence given and none loaded (use load PATH)")

// InputHandler reads commands line by line and prints their results.
type InputHandler struct {
	analyzer     *analysis.Analyzer
	renderer     *report.Renderer
	config       *config.Config
	resolver     *utils.PathResolver
	out          io.Writer
	loaded       string
	loadedID     string
	requestCount int
}

// NewInputHandler creates a handler writing results to out.
// A nil resolver makes load use paths as given.
func NewInputHandler(cfg *config.Config, renderer *report.Renderer, resolver *utils.PathResolver, out io.Writer) *InputHandler {
	return &InputHandler{
		analyzer: analysis.New(cfg),
		renderer: renderer,
		config:   cfg,
		resolver: resolver,
		out:      out,
	}
}

// Start runs the loop until in is exhausted or the user quits.
func (h *InputHandler) Start(in io.Reader) error {
	fmt.Fprintln(h.out, "SeqServe CLI [BETA]")
	fmt.Fprint(h.out, "type a command and press Enter (help for a list, Ctrl+C to exit)\n")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if quit := h.handleInput(line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(h.out)
				return nil
			}
			return err
		}
	}
}

// handleInput runs one command line. It returns true when the user quits.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	start := time.Now()
	var (
		out string
		err error
	)
	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		out = usage
	case "freq", "f":
		out, err = h.frequency(args)
	case "kmers", "k":
		out, err = h.kmers(args)
	case "motif", "m":
		out, err = h.motif(args)
	case "repeat", "r":
		out, err = h.repeat(args)
	case "mut", "mutation":
		out, err = h.mutation(args)
	case "load", "l":
		out, err = h.load(args)
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), cmd)

	if err != nil {
		fmt.Fprint(h.out, h.renderer.Error(err))
		return false
	}
	fmt.Fprint(h.out, out)
	return false
}

// sequenceArg returns the sequence given at args[i], or the loaded one.
func (h *InputHandler) sequenceArg(args []string, i int) (string, error) {
	if len(args) > i {
		return sequence.Normalize(strings.Join(args[i:], ""), h.config.CLI.Uppercase), nil
	}
	if h.loaded == "" {
		return "", errNoSequence
	}
	return h.loaded, nil
}

func (h *InputHandler) frequency(args []string) (string, error) {
	k := h.config.Engine.DefaultK
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			k = n
			args = args[1:]
		}
	}
	seq, err := h.sequenceArg(args, 0)
	if err != nil {
		return "", err
	}
	res, err := h.analyzer.Frequency(seq, k, h.config.CLI.DefaultTop, "")
	if err != nil {
		return "", err
	}
	return h.renderer.Frequency(res), nil
}

func (h *InputHandler) kmers(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("usage: kmers K PREFIX [SEQ]")
	}
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("invalid k %q: %w", args[0], err)
	}
	prefix := sequence.Normalize(args[1], h.config.CLI.Uppercase)
	seq, err := h.sequenceArg(args, 2)
	if err != nil {
		return "", err
	}
	res, err := h.analyzer.Frequency(seq, k, h.config.CLI.DefaultTop, prefix)
	if err != nil {
		return "", err
	}
	return h.renderer.Frequency(res), nil
}

func (h *InputHandler) motif(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("usage: motif PATTERN [SEQ]")
	}
	pattern := sequence.Normalize(args[0], h.config.CLI.Uppercase)
	seq, err := h.sequenceArg(args, 1)
	if err != nil {
		return "", err
	}
	res, err := h.analyzer.Motif(seq, pattern)
	if err != nil {
		return "", err
	}
	return h.renderer.Motif(seq, res), nil
}

func (h *InputHandler) repeat(args []string) (string, error) {
	seq, err := h.sequenceArg(args, 0)
	if err != nil {
		return "", err
	}
	offset, length := suffix.Build(seq).LongestRepeat()
	if length == 0 {
		return "no repeated substring\n", nil
	}
	return fmt.Sprintf("longest repeat: %s (length %d, first at %d)\n",
		utils.Preview(seq[offset:offset+length], 60), length, offset), nil
}

func (h *InputHandler) mutation(args []string) (string, error) {
	if len(args) != 2 {
		return "", errors.New("usage: mut A B")
	}
	upper := h.config.CLI.Uppercase
	res, err := h.analyzer.Mutation(sequence.Normalize(args[0], upper), sequence.Normalize(args[1], upper))
	if err != nil {
		return "", err
	}
	return h.renderer.Mutation(res), nil
}

func (h *InputHandler) load(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("usage: load PATH")
	}
	path := args[0]
	if h.resolver != nil {
		resolved, err := h.resolver.ResolveInputPath(path)
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		path = resolved
	}
	records, err := sequence.Load(path, sequence.Options{Uppercase: h.config.CLI.Uppercase})
	if err != nil {
		return "", err
	}
	h.loaded, h.loadedID = records[0].Seq, records[0].ID
	return fmt.Sprintf("loaded %s: %s bytes (%d records in file)\n",
		h.loadedID, utils.FormatWithCommas(len(h.loaded)), len(records)), nil
}
