package cmd

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seeksim/seeksim/server"
	"github.com/seeksim/seeksim/sim"
)

var (
	// CLI flags for the serve command
	listenAddr    string // HTTP listen address
	dbPath        string // Path to the request database
	serveDiskSize int    // Addressable track count for request validation
)

// serveCmd runs the HTTP API over a persistent request store
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := server.OpenStore(dbPath)
		if err != nil {
			logrus.Fatalf("unable to open request store: %v", err)
		}
		defer store.Close()

		srv := server.New(store, serveDiskSize)
		logrus.Infof("listening on %s (store: %s)", listenAddr, dbPath)
		if err := http.ListenAndServe(listenAddr, srv.Handler()); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&dbPath, "db", "disk_requests.db", "Path to the request database (\":memory:\" for ephemeral)")
	serveCmd.Flags().IntVar(&serveDiskSize, "disk-size", sim.DefaultDiskSize, "Number of addressable tracks")

	rootCmd.AddCommand(serveCmd)
}
