package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/pantry/pkg/app"
)

// Transport selects how the MCP server is reached.
type Transport string

const (
	// TransportHTTP serves the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio speaks MCP over stdin and stdout.
	TransportStdio Transport = "stdio"
)

const (
	DefaultAddr = "127.0.0.1:8080"
	DefaultPath = "/mcp"
)

const shutdownGrace = 5 * time.Second

// ParseTransport accepts "http" or "stdio" in any case. Empty means http.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TransportHTTP, nil
	case TransportHTTP, TransportStdio:
		return t, nil
	}
	return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", s)
}

// Runner serves the pantry tools and resources until ctx is done.
type Runner struct {
	App     *app.Service
	Name    string
	Version string
	Log     *slog.Logger

	Transport Transport
	Addr      string
	Path      string
	TLSCert   string
	TLSKey    string

	// OnListening is called with the endpoint URL once the HTTP listener is up.
	OnListening func(url string)
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires an app service")
	}
	if r.Log == nil {
		r.Log = slog.New(slog.DiscardHandler)
	}
	name := r.Name
	if name == "" {
		name = "pantry"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		name+" MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and reorder sectioned shopping lists. Every list has a home and a shop mode with independent sections and ordering; item ids come from show_list."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.App)
	registerResources(srv, svc)
	registerTools(srv, svc)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		r.Log.Debug("serving mcp over stdio")
		return server.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) path() string {
	p := strings.TrimSpace(r.Path)
	if p == "" {
		return DefaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r Runner) tls() bool {
	return r.TLSCert != "" && r.TLSKey != ""
}

// endpoint formats the URL clients connect to. Wildcard hosts are shown as
// loopback.
func (r Runner) endpoint(a net.Addr) string {
	scheme := "http"
	if r.tls() {
		scheme = "https"
	}
	host, port, err := net.SplitHostPort(a.String())
	if err != nil {
		return scheme + "://" + a.String() + r.path()
	}
	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		host = "127.0.0.1"
	}
	return scheme + "://" + net.JoinHostPort(host, port) + r.path()
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.TLSCert == "") != (r.TLSKey == "") {
		return errors.New("both a tls cert and key must be provided")
	}
	addr := r.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	mux := http.NewServeMux()
	mux.Handle(r.path(), server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	url := r.endpoint(ln.Addr())
	r.Log.Debug("mcp listening", "url", url)
	if r.OnListening != nil {
		r.OnListening(url)
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = httpSrv.Shutdown(sctx)
	}()

	if r.tls() {
		err = httpSrv.ServeTLS(ln, r.TLSCert, r.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
