package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve records generated from the embedded configurations",
	Long: `Start the HTTP front-end.

Endpoints:
  GET /standards/{standard}/{config}  generated XML record
  GET /metrics                        Prometheus metrics
  GET /healthz                        liveness

The listen address comes from server.addr in mdlib.yaml unless --addr is given.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveFlags struct {
	addr             string
	resolveCitations bool
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "Listen address (default: server.addr setting)")
	serveCmd.Flags().BoolVar(&serveFlags.resolveCitations, "resolve-citations", false, "Resolve DOI citations before generating")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}
	opts, err := recordOptions(settings, logger, serveFlags.resolveCitations)
	if err != nil {
		return err
	}

	addr := settings.Server.Addr
	if serveFlags.addr != "" {
		addr = serveFlags.addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.New(server.WithLogger(logger), server.WithRecordOptions(opts...))
	srv := server.NewHTTPServer(addr, handler.Router())
	logger.Info("Listening on %s", addr)
	return server.ListenAndServe(ctx, srv)
}
