package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/armon/go-metrics"

	"github.com/udisondev/muconnect/internal/config"
	"github.com/udisondev/muconnect/internal/server"
)

const ConfigPath = "config/connectserver.yaml"

// pollInterval is how often the main loop checks server liveness.
const pollInterval = 100 * time.Millisecond

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the YAML config")
	host := flag.String("host", "", "override the client bind address")
	port := flag.Int("port", -1, "override the client listener port")
	rpcPort := flag.Int("rpc-port", -1, "override the realm control port (0 = ephemeral)")
	flag.Parse()

	if err := run(*configPath, *host, *port, *rpcPort); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	if p := os.Getenv("MUCONNECT_CONFIG"); p != "" {
		return p
	}
	return ConfigPath
}

func run(configPath, host string, port, rpcPort int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if host != "" {
		cfg.Host = host
	}
	if port >= 0 {
		cfg.Port = port
	}
	if rpcPort >= 0 {
		cfg.RPCPort = rpcPort
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	})))
	slog.Info("muconnect starting", "bind", cfg.ClientAddr(), "rpc", cfg.RPCAddr())

	// In-memory metrics, dumped to stderr on SIGUSR1.
	inm := metrics.NewInmemSink(10*time.Second, time.Minute)
	metrics.DefaultInmemSignal(inm)
	if _, err := metrics.NewGlobal(metrics.DefaultConfig("muconnect"), inm); err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}

	srv, err := server.Spawn(cfg)
	if err != nil {
		return fmt.Errorf("spawning server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	stopped := make(chan error, 1)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		stopped <- srv.Stop()
	}()

	for srv.IsActive() {
		time.Sleep(pollInterval)
	}

	select {
	case err := <-stopped:
		return err
	default:
		return srv.Wait()
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
