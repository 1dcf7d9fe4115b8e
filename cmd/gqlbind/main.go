package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	bind "github.com/gqlbind/gqlbind/internal/bind"
	eventbus "github.com/gqlbind/gqlbind/internal/eventbus"
	language "github.com/gqlbind/gqlbind/internal/language"
	otelsetup "github.com/gqlbind/gqlbind/internal/otel"
	schema "github.com/gqlbind/gqlbind/internal/schema"
	server "github.com/gqlbind/gqlbind/internal/server"
)

const rootUsage = `gqlbind — GraphQL document checker

USAGE:
  gqlbind <command> [flags]

COMMANDS:
  check            Bind documents against an SDL schema and print diagnostics
  serve            Run the HTTP document checker
  help             Show help for any command
`

const checkUsage = `check FLAGS:
  -schema <file>   SDL schema file (required)
  [documents...]   One or more GraphQL document files
  (Exits non-zero when any document fails to bind)
`

const serveUsage = `serve FLAGS:
  -schema <file>          SDL schema file (required)
  -addr <addr>            HTTP listen address (default: :8080)
  -pretty                 Pretty-print JSON responses
  -timeout <duration>     Per-request timeout, e.g. 10s (default: 10s)
  -otel.endpoint <addr>   OTLP collector endpoint
  -otel.service <name>    OpenTelemetry service name (default: gqlbind)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("gqlbind", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return errors.New("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "check":
		return cmdCheck(cmdArgs)
	case "serve":
		return cmdServe(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return errors.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "check":
		fmt.Print(checkUsage)
	case "serve":
		fmt.Print(serveUsage)
	default:
		return errors.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	schemaPath := fs.String("schema", "", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}
	if *schemaPath == "" {
		fmt.Fprint(os.Stderr, checkUsage)
		return errors.New("-schema is required")
	}
	docs := fs.Args()
	if len(docs) == 0 {
		fmt.Fprint(os.Stderr, checkUsage)
		return errors.New("no documents given")
	}

	sch, err := loadSchema(*schemaPath)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range docs {
		if err := checkFile(sch, path); err != nil {
			failed++
			var be *bind.Error
			if errors.As(err, &be) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", language.FormatPos(be.Pos), be.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			}
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d documents failed", failed, len(docs))
	}
	return nil
}

func checkFile(sch *schema.Schema, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading document")
	}
	doc, err := language.ParseQuery(path, string(src))
	if err != nil {
		return err
	}
	_, err = bind.Bind(sch, doc)
	return err
}

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	schemaPath := fs.String("schema", "", "")
	addr := fs.String("addr", ":8080", "")
	pretty := fs.Bool("pretty", false, "")
	timeout := fs.Duration("timeout", 10*time.Second, "")
	otelEndpoint := fs.String("otel.endpoint", "", "")
	otelService := fs.String("otel.service", "gqlbind", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}
	if *schemaPath == "" {
		fmt.Fprint(os.Stderr, serveUsage)
		return errors.New("-schema is required")
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	sch, err := loadSchema(*schemaPath)
	if err != nil {
		return err
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otelsetup.Setup(*otelEndpoint, *otelService)
	if err != nil {
		return errors.Wrap(err, "configuring telemetry")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("telemetry shutdown")
		}
	}()

	opts := []server.Option{server.WithTimeout(*timeout)}
	if *pretty {
		opts = append(opts, server.WithPretty())
	}
	h := server.New(sch, log, opts...)

	log.Info().Str("addr", *addr).Str("schema", *schemaPath).Msg("listening")
	return http.ListenAndServe(*addr, h)
}

func loadSchema(path string) (*schema.Schema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema")
	}
	sch, err := schema.BuildFromSDL(path, string(src))
	if err != nil {
		return nil, errors.Wrap(err, "building schema")
	}
	return sch, nil
}
