// Command vtaserver runs the task-oriented HTTP service: clients POST a
// VTA program plus stdin tokens and a token, then poll /info/<task_id>
// for the outcome once the translate-compile-run pipeline finishes or
// times out.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/vta-lang/vta/internal/config"
	"github.com/vta-lang/vta/internal/executor"
	"github.com/vta-lang/vta/internal/httpserver"
	"github.com/vta-lang/vta/internal/logging"
	"github.com/vta-lang/vta/internal/task"
	"github.com/vta-lang/vta/internal/tokenstore"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [config.yaml]\n", os.Args[0])
}

func main() {
	var cfg *config.ServerConfig
	var err error

	switch len(os.Args) {
	case 1:
		cfg = config.DefaultServerConfig()
	case 2:
		cfg, err = config.LoadServerConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "vtaserver: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}

	log := logging.New(os.Stderr, slog.LevelInfo)

	tokens, err := tokenstore.Open(cfg.TokenStorePath)
	if err != nil {
		log.Error("failed to open token store", slog.Any("error", err))
		os.Exit(1)
	}
	defer tokens.Close()

	tasks := task.NewStore()
	pool := executor.New(cfg, tasks, log)
	server := httpserver.New(pool, tasks, tokens, log)

	log.Info("vtaserver listening",
		slog.String("addr", cfg.ListenAddr),
		slog.Int64("worker_capacity", cfg.WorkerCapacity),
		slog.String("version", config.Version),
	)
	if err := http.ListenAndServe(cfg.ListenAddr, server); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}
