package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("ok")
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := folio.LoadConfig()
	if err != nil {
		return err
	}
	app := folio.New(cfg)
	defer app.Close()

	if err := app.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("shutdown", zap.Error(err))
		return err
	}
	return <-errc
}

// runCheck validates the environment and the embedded content without serving.
func runCheck() error {
	if _, err := folio.LoadConfig(); err != nil {
		return err
	}
	site, err := content.Load()
	if err != nil {
		return err
	}
	fmt.Printf("%d projects, %d alternate projects\n", len(site.Projects), len(site.Alternate))
	return nil
}

func printUsage() {
	fmt.Println(`folio - A personal portfolio site built with Go, Echo, and templ

Usage:
  folio [command]

Commands:
  serve     Start the HTTP server (default)
  check     Validate configuration and embedded content
  version   Print the folio version
  help      Show this help message

Configuration is read from the environment and an optional .env file:
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR, ADDR,
  CONTACT_SUBMIT_DELAY, CONTACT_INBOX_PATH, ADMIN_PASSWORD,
  ADMIN_SESSION_SECRET, COOKIE_SECURE, LOG_LEVEL, METRICS_ENABLED`)
}
