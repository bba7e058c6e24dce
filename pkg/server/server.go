package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/seqserve/internal/utils"
	"github.com/bastiangx/seqserve/pkg/analysis"
	"github.com/bastiangx/seqserve/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for sequence analysis.
type Server struct {
	analyzer     *analysis.Analyzer
	config       *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a server over stdin/stdout.
// configPath may be empty, which disables periodic reloads.
func NewServer(cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		analyzer:   analysis.New(cfg),
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
	}
}

// Start sends the ready signal and serves requests until the input ends.
// A clean EOF returns nil.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed, stopping server", "requests", s.requestCount)
				return nil
			}
			// the stream is no longer aligned on a message boundary
			return fmt.Errorf("reading request: %w", err)
		}

		if err := s.handleRequest(raw); err != nil {
			return err
		}

		s.requestCount++
		s.maybeReloadConfig()
	}
}

// handleRequest decodes one message and dispatches it by action.
// Only write failures are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", CodeBadRequest)
	}

	start := time.Now()
	switch req.Action {
	case ActionFrequency:
		return s.handleFrequency(req, start)
	case ActionMotif:
		return s.handleMotif(req, start)
	case ActionMutation:
		return s.handleMutation(req, start)
	case ActionHealth:
		return s.send(StatusResponse{ID: req.ID, Status: "ok", Requests: s.requestCount})
	case "":
		return s.sendError(req.ID, "missing 'action'", CodeBadRequest)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
	}
}

func (s *Server) handleFrequency(req Request, start time.Time) error {
	k := req.K
	if k == 0 {
		k = s.config.Engine.DefaultK
	}
	res, err := s.analyzer.Frequency(req.Sequence, k, req.Top, req.Prefix)
	if err != nil {
		return s.sendAnalysisError(req.ID, err)
	}
	return s.send(FrequencyResponse{ID: req.ID, FrequencyResult: *res, TimeTaken: elapsed(start)})
}

func (s *Server) handleMotif(req Request, start time.Time) error {
	if req.Pattern == "" {
		log.Debug("Pattern is empty in request", "id", req.ID)
		return s.sendError(req.ID, "missing 'p' parameter", CodeBadRequest)
	}
	res, err := s.analyzer.Motif(req.Sequence, req.Pattern)
	if err != nil {
		return s.sendAnalysisError(req.ID, err)
	}
	return s.send(MotifResponse{ID: req.ID, MotifResult: *res, TimeTaken: elapsed(start)})
}

func (s *Server) handleMutation(req Request, start time.Time) error {
	res, err := s.analyzer.Mutation(req.A, req.B)
	if err != nil {
		return s.sendAnalysisError(req.ID, err)
	}
	return s.send(MutationResponse{ID: req.ID, MutationResult: *res, TimeTaken: elapsed(start)})
}

func elapsed(start time.Time) int64 {
	return time.Since(start).Microseconds()
}

// sendAnalysisError maps analyzer errors to response codes.
func (s *Server) sendAnalysisError(id string, err error) error {
	code := CodeInternalError
	switch {
	case errors.Is(err, analysis.ErrSequenceTooLong), errors.Is(err, analysis.ErrPatternTooLong):
		code = CodeTooLarge
	case errors.Is(err, analysis.ErrTopLimitExceeded), errors.Is(err, analysis.ErrUnknownKind):
		code = CodeBadRequest
	}
	log.Debug("Request failed", "id", id, "code", code, "err", err)
	return s.sendError(id, err.Error(), code)
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// maybeReloadConfig re-reads the config file every ReloadEvery requests so
// limit changes apply without a restart.
func (s *Server) maybeReloadConfig() {
	every := s.config.Server.ReloadEvery
	if s.configPath == "" || every <= 0 || s.requestCount%every != 0 {
		return
	}

	if !utils.FileExists(s.configPath) {
		log.Warnf("Config file %s is gone, keeping current settings", s.configPath)
		return
	}
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Config reload failed, keeping current settings: %v", err)
		return
	}
	s.config = cfg
	s.analyzer = analysis.New(cfg)
	log.Debug("Reloaded config", "path", s.configPath, "requests", s.requestCount)
}

// RequestCount returns the number of requests handled so far.
func (s *Server) RequestCount() int {
	return s.requestCount
}
