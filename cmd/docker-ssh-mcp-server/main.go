package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/remoteops/docker-ssh-mcp-server/configs"
	"github.com/remoteops/docker-ssh-mcp-server/internal/app"
	"github.com/remoteops/docker-ssh-mcp-server/internal/audit"
	"github.com/remoteops/docker-ssh-mcp-server/internal/config"
	"github.com/remoteops/docker-ssh-mcp-server/internal/dispatch"
	"github.com/remoteops/docker-ssh-mcp-server/internal/guard"
	"github.com/remoteops/docker-ssh-mcp-server/internal/hostcfg"
	"github.com/remoteops/docker-ssh-mcp-server/internal/log"
	"github.com/remoteops/docker-ssh-mcp-server/internal/render"
	"github.com/remoteops/docker-ssh-mcp-server/internal/runtime"
	"github.com/remoteops/docker-ssh-mcp-server/internal/sshexec"
	"github.com/remoteops/docker-ssh-mcp-server/internal/startup"
)

func main() {
	embeddedHosts := flag.String("embedded-hosts", "", "Use embedded hosts config from configs/ (filename)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel)

	hosts, err := loadHosts(cfg, *embeddedHosts)
	if err != nil {
		logger.Error("load hosts config failed", "error", err)
		os.Exit(1)
	}

	client := sshexec.New(cfg.SSHBin, cfg.ConnectTimeout, logger)

	opts := dispatch.Options{
		DefaultHost: cfg.DefaultHost,
		Logger:      logger,
		Audit:       audit.New(logger),
	}
	if hosts != nil {
		opts.AllowedHosts = hosts.Hosts
		opts.Timeouts = hosts.ToolTimeouts()
		if hosts.Limits.Enabled() {
			opts.Guard = guard.New(hosts.Limits.MaxTotal, hosts.Limits.RatePerMinute)
		}
	}

	server := runtime.Builder{
		Dispatcher: dispatch.New(client, opts),
	}.Build()

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	startup.Probe(baseCtx, client, cfg.DefaultHost, logger)

	switch cfg.Transport {
	case "stdio":
		if err := server.Run(baseCtx, &mcp.StdioTransport{}); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	default:
		if err := runHTTP(baseCtx, cfg, server, logger); err != nil {
			logger.Error("runtime error", "error", err)
			os.Exit(1)
		}
	}
}

func loadHosts(cfg config.Config, embedded string) (*hostcfg.Config, error) {
	var (
		rendered []byte
		err      error
	)
	switch {
	case embedded != "":
		raw, loadErr := configs.Load(embedded)
		if loadErr != nil {
			return nil, loadErr
		}
		rendered, err = render.RenderBytes(embedded, raw)
	case cfg.HostsConfig != "":
		rendered, err = render.RenderFile(cfg.HostsConfig)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return hostcfg.Load(rendered)
}

func runHTTP(ctx context.Context, cfg config.Config, server *mcp.Server, logger *slog.Logger) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	application, err := app.New(ctx, cfg.Listen, cfg.Path, handler, logger, cfg.ShutdownTimeout)
	if err != nil {
		return err
	}

	return application.Run(ctx)
}
