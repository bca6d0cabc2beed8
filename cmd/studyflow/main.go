// Command studyflow is the terminal frontend for a StudyFlow server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/studyflow/pkg/api"
	"github.com/mmynk/studyflow/pkg/logging"
)

const defaultServer = "http://localhost:8080"

var (
	serverURL  string
	rpcTimeout time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "studyflow",
	Short: "StudyFlow - exam planner, focus timer and AI tutor",
	Long: `studyflow talks to a StudyFlow server to manage your exam plan,
log focus sessions, compare study hours with friends and ask the AI tutor.

Start the server first, then:
  studyflow login --username asha --phone 9876543210 --goal NEET
  studyflow exam add "NEET" 2025-05-04
  studyflow today`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logging.SetupWithLevel(level)
	},
}

func init() {
	server := os.Getenv("STUDYFLOW_SERVER")
	if server == "" {
		server = defaultServer
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", server, "StudyFlow server URL (env STUDYFLOW_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&rpcTimeout, "timeout", 0, "per-request timeout, 0 for none")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// newClient returns a client for the configured server.
func newClient() *api.Client {
	return api.NewClient(newHTTPClient(), serverURL)
}

// newHTTPClient applies --timeout. Zero leaves requests unbounded.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: rpcTimeout}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
