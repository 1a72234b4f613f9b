package agent

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/timrogers/wld/internal/infra/buildinfo"
	"github.com/timrogers/wld/internal/registry"
	"github.com/timrogers/wld/internal/wled"
)

// maxLineBytes bounds a single protocol frame.
const maxLineBytes = 1 << 20

// Server is the MCP stdio tool server.
type Server struct {
	store   *registry.Store
	logger  *slog.Logger
	timeout time.Duration
	in      io.Reader
	out     io.Writer

	mu    sync.Mutex
	cache *registry.Registry
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithIO overrides stdin/stdout, for tests.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.in = in
		s.out = out
	}
}

// WithTimeout sets the per-device request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.timeout = timeout
	}
}

// New creates an MCP server over the given registry store.
func New(store *registry.Store, opts ...Option) *Server {
	s := &Server{
		store:   store,
		logger:  slog.Default(),
		timeout: wled.DefaultTimeout,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves requests until stdin is closed or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	// Invalidate the cached registry when the file is hand-edited while
	// the server is running. Best effort: the home directory may not
	// contain a registry yet.
	if watcher, err := registry.NewWatcher(s.store.Path(), s.logger); err == nil {
		watcher.OnChange(func() {
			s.invalidate()
			s.logger.Info("registry file changed on disk, reloading on next call")
		})
		watcher.StartAsync()
		defer watcher.Stop()
	} else {
		s.logger.Debug("registry watcher unavailable", "error", err)
	}

	lines := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := bytes.Clone(scanner.Bytes())
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.logger.Info("MCP server started", "registry", s.store.Path())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("MCP server stopping")
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			s.logger.Info("input closed, MCP server stopping")
			return nil
		case line := <-lines:
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			s.handleLine(ctx, line)
		}
	}
}

func (s *Server) handleLine(ctx context.Context, line []byte) {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn("malformed request", "error", err)
		s.write(response{
			JSONRPC: "2.0",
			ID:      json.RawMessage("null"),
			Error:   &rpcError{Code: codeParseError, Message: "parse error: " + err.Error()},
		})
		return
	}

	s.logger.Debug("request received", "method", req.Method)

	if req.isNotification() {
		// notifications/initialized and friends need no reply.
		return
	}

	resp := response{JSONRPC: "2.0", ID: req.ID}
	result, rpcErr := s.dispatch(ctx, &req)
	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		resp.Result = result
	}
	s.write(resp)
}

func (s *Server) dispatch(ctx context.Context, req *request) (any, *rpcError) {
	switch req.Method {
	case "initialize":
		return initializeResult{
			ProtocolVersion: protocolVersion,
			ServerInfo: serverInfo{
				Name:    "wld",
				Version: buildinfo.Get().Version,
			},
		}, nil
	case "ping":
		return struct{}{}, nil
	case "tools/list":
		return toolsListResult{Tools: s.tools()}, nil
	case "tools/call":
		var params callParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, &rpcError{Code: codeInvalidParams, Message: "invalid params: " + err.Error()}
		}
		return s.callTool(ctx, params)
	default:
		return nil, &rpcError{Code: codeMethodNotFound, Message: "method not found: " + req.Method}
	}
}

func (s *Server) write(resp response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("marshal response", "error", err)
		return
	}
	if _, err := fmt.Fprintf(s.out, "%s\n", data); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

// loadRegistry returns the cached registry, reloading from disk after an
// invalidation.
func (s *Server) loadRegistry() (*registry.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache != nil {
		return s.cache, nil
	}
	reg, err := s.store.LoadWithOverrides()
	if err != nil {
		return nil, err
	}
	s.cache = reg
	return reg, nil
}

func (s *Server) invalidate() {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
}
