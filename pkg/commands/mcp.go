package commands

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/pantry/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes lists, sections, and items, and the
commands that edit and reorder them, through the Model Context Protocol.`,
		Example: `
pantry mcp --http-port 0
pantry mcp --transport stdio
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			t, err := mcp.ParseTransport(transport)
			if err != nil {
				return err
			}
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid http-port %d", port)
			}
			svc, _, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}

			r := mcp.Runner{
				App:       svc,
				Name:      "pantry",
				Version:   version,
				Log:       vo.Logger(),
				Transport: t,
				Addr:      net.JoinHostPort(host, strconv.Itoa(port)),
				Path:      path,
				TLSCert:   tlsCert,
				TLSKey:    tlsKey,
				OnListening: func(url string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&path, "http-path", mcp.DefaultPath, "HTTP endpoint path")
	cmd.Flags().StringVar(&tlsCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&tlsKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}
