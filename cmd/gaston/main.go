package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/app"
	"github.com/adrianAraqueG/gaston/internal/cli"
	"github.com/adrianAraqueG/gaston/internal/export"
	"github.com/adrianAraqueG/gaston/internal/log"
	"github.com/adrianAraqueG/gaston/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if !app.Shown(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gaston", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "archivo de variables de entorno")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cli.LoadEnvFile(*envFile)
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return err
	}
	logger := cli.SetupLogger(cfg, stderr)

	ctx, cancel := cli.SignalContext(context.Background(), logger)
	defer cancel()

	cookies, err := cli.InitCookieStore(logger, cfg.SessionDBPath)
	if err != nil {
		return err
	}
	defer cookies.Close()

	jar, err := storage.NewPersistentJar(ctx, cookies, cfg.APIURL, logger)
	if err != nil {
		return fmt.Errorf("cookie jar: %w", err)
	}

	sink, err := export.New(ctx, export.Config{
		Type:          export.SinkType(cfg.ExportSink),
		Dir:           cfg.ExportDir,
		SpreadsheetID: cfg.GoogleSpreadsheetID,
		SheetName:     cfg.GoogleSheetName,
	}, logger)
	if err != nil {
		return err
	}

	publisher, closePublisher := cli.InitPublisher(ctx, cfg, logger)
	defer closePublisher()

	client := apiclient.New(cfg.APIURL,
		apiclient.WithHTTPClient(&http.Client{Jar: jar, Timeout: cfg.APITimeout}),
		apiclient.WithLogger(logger))

	a := app.New(app.Options{
		Client:    client,
		Sink:      sink,
		Publisher: publisher,
		Jar:       jar,
		Prompter:  newPrompter(stdin, stdout),
		Logger:    logger,
		Out:       stdout,
	})

	logger.Debug("Starting", log.FieldOperation, log.OpStartup, "api_url", cfg.APIURL)
	return a.Run(ctx, fs.Args())
}
