package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleKmerFrequency(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	seq, err := s.resolveSequence(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	k := getIntArg(args, "k", s.config.Engine.DefaultK)
	top := getIntArg(args, "top", 0)
	res, err := s.analyzer.Frequency(seq, k, top, s.normalize(getStringArg(args, "prefix")))
	if err != nil {
		return errResult(err.Error()), nil
	}
	return jsonResult(res), nil
}

func (s *Server) handleMotifSearch(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}
	pattern := s.normalize(getStringArg(args, "pattern"))
	if pattern == "" {
		return errResult("pattern is required"), nil
	}
	seq, err := s.resolveSequence(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	res, err := s.analyzer.Motif(seq, pattern)
	if err != nil {
		return errResult(err.Error()), nil
	}
	return jsonResult(res), nil
}

func (s *Server) handleMutationDistance(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	seqA := s.normalize(getStringArg(args, "sequence_a"))
	seqB := s.normalize(getStringArg(args, "sequence_b"))
	res, err := s.analyzer.Mutation(seqA, seqB)
	if err != nil {
		return errResult(err.Error()), nil
	}
	return jsonResult(res), nil
}
