// Package tools exposes the sequence analyses as MCP tools over stdio.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/bastiangx/seqserve/pkg/sequence"
	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tool handlers.
type Server struct {
	mcp      *mcp.Server
	analyzer *analysis.Analyzer
	config   *config.Config
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(cfg *config.Config, version string) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	srv := &Server{
		analyzer: analysis.New(cfg),
		config:   cfg,
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    "seqserve",
				Version: version,
			},
			nil,
		),
	}
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Run serves MCP over stdin/stdout until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "kmer_frequency",
		Description: "Count every substring of length k (k-mer) in a sequence using a sliding window. Returns the frequency map, the number of distinct k-mers, the number of windows and optionally the most frequent k-mers. Invalid k (<= 0 or longer than the sequence) yields an empty map.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"sequence": {
					"type": "string",
					"description": "Sequence to analyze. Any characters are accepted."
				},
				"sequence_file": {
					"type": "string",
					"description": "Path to a FASTA or plain text file (optionally gzipped), used when sequence is omitted. The first record is analyzed."
				},
				"k": {
					"type": "integer",
					"description": "k-mer length (default from config, usually 3)"
				},
				"top": {
					"type": "integer",
					"description": "Also list the N most frequent k-mers (0 for none)"
				},
				"prefix": {
					"type": "string",
					"description": "Only keep k-mers starting with this prefix"
				}
			}
		}`),
	}, s.handleKmerFrequency)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "motif_search",
		Description: "Find every exact occurrence of a motif in a sequence using a suffix array. Returns the 0-based start offsets in ascending order, overlapping matches included.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"sequence": {
					"type": "string",
					"description": "Sequence to search"
				},
				"sequence_file": {
					"type": "string",
					"description": "Path to a FASTA or plain text file, used when sequence is omitted"
				},
				"pattern": {
					"type": "string",
					"description": "Motif to find (e.g. 'TATA')"
				}
			},
			"required": ["pattern"]
		}`),
	}, s.handleMotifSearch)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "mutation_distance",
		Description: "Compute the Levenshtein edit distance between two sequences and classify it: Identical (0), Low (1-5), Medium (6-8) or High (9+).",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"sequence_a": {
					"type": "string",
					"description": "First sequence"
				},
				"sequence_b": {
					"type": "string",
					"description": "Second sequence"
				}
			},
			"required": ["sequence_a", "sequence_b"]
		}`),
	}, s.handleMutationDistance)
}

// jsonResult marshals data to JSON and returns as tool result.
func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errResult("json marshal err=" + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a tool result indicating an error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

// parseArgs unmarshals the raw JSON arguments into a map.
func parseArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &m); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return m, nil
}

// getStringArg extracts a string argument from parsed args.
func getStringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// getIntArg extracts an integer argument with a default value.
func getIntArg(args map[string]any, key string, defaultVal int) int {
	f, ok := args[key].(float64) // JSON numbers decode as float64
	if !ok {
		return defaultVal
	}
	return int(f)
}

// normalize applies the same folding to tool inputs as sequence files get on load.
func (s *Server) normalize(in string) string {
	return sequence.Normalize(in, s.config.CLI.Uppercase)
}

// resolveSequence returns the inline sequence, or the first record of sequence_file.
func (s *Server) resolveSequence(args map[string]any) (string, error) {
	if seq := getStringArg(args, "sequence"); seq != "" {
		return s.normalize(seq), nil
	}
	path := getStringArg(args, "sequence_file")
	if path == "" {
		return "", nil
	}
	records, err := sequence.Load(path, sequence.Options{Uppercase: s.config.CLI.Uppercase})
	if err != nil {
		return "", err
	}
	if len(records) > 1 {
		log.Warn("Only the first record is analyzed", "file", path, "records", len(records))
	}
	return records[0].Seq, nil
}
