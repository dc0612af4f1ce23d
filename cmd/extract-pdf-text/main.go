// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-pdf-text CLI, which
// writes the plain text of a PDF file to a UTF-8 text file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-extract/internal/pdftext"
	"github.com/pdiddy/pdf-extract/internal/textout"
	"github.com/pdiddy/pdf-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	appName = "extract-pdf-text"
	usage   = "Usage: extract-pdf-text input.pdf output.txt"

	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// errUsage marks argument and flag errors, which exit with status 2.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation of the CLI and returns its exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	_, isFile := stderr.(*os.File)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339, NoColor: !isFile}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(viper.New(), stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		if msg := strings.TrimPrefix(err.Error(), errUsage.Error()); strings.TrimSpace(msg) != "" {
			fmt.Fprintln(stderr, strings.TrimPrefix(msg, ": "))
		}
		fmt.Fprintln(stdout, usage)
		return exitUsage
	default:
		log.Error().Str("stage", stage(err)).Err(err).Msg("extraction aborted")
		return exitFailure
	}
}

// stage names the step that produced err for the diagnostic line.
func stage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, pdftext.ErrMissingDependency):
		return "dependency"
	case errors.Is(err, pdftext.ErrInput):
		return "input"
	case errors.Is(err, pdftext.ErrExtraction):
		return "extraction"
	case errors.Is(err, textout.ErrOutput):
		return "output"
	default:
		return "config"
	}
}

func newRootCmd(v *viper.Viper, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName + " <input.pdf> <output.txt>",
		Short: "Extract plain text from a PDF file",
		Long: `extract-pdf-text reads a PDF file, extracts its plain text and writes it to
an output file as UTF-8. Text extraction is delegated to a backend:

  native      built-in pure-Go PDF reader (default)
  pdftotext   poppler's pdftotext binary
  markitdown  the markitdown container image, run with docker or podman
  auto        pdftotext when installed, otherwise native

A backend that is not available fails the run; nothing is installed.

Paths that begin with "-" must follow "--", e.g.
  extract-pdf-text -- -report.pdf out.txt`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			applyLogLevel(v)
			if err := initConfig(v); err != nil {
				return err
			}
			// The config file or environment may also enable verbose.
			applyLogLevel(v)
			if len(args) > 2 {
				log.Warn().Strs("ignored", args[2:]).Msg("extra arguments ignored")
			}
			return extractCommand(cmd.Context(), loadConfig(v), args[0], args[1], stdout)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	flags := cmd.Flags()
	flags.String("config", "", "config file (default: ./pdf-extract.yaml or ~/.config/pdf-extract/config.yaml)")
	flags.String("backend", string(types.BackendNative), "extraction backend: native, pdftotext, markitdown, or auto")
	flags.String("pdftotext", "pdftotext", "pdftotext binary name or path")
	flags.Bool("layout", false, "preserve physical page layout (pdftotext backend)")
	flags.String("image", "markitdown:latest", "container image for the markitdown backend")
	flags.String("report", "", "write a YAML run report to this file")
	flags.Duration("timeout", 0, "bound on the extraction step, e.g. 2m (0 disables)")
	flags.BoolP("verbose", "v", false, "debug logging")

	for key, flag := range map[string]string{
		"config":           "config",
		"backend":          "backend",
		"pdftotext.path":   "pdftotext",
		"pdftotext.layout": "layout",
		"markitdown.image": "image",
		"report":           "report",
		"timeout":          "timeout",
		"verbose":          "verbose",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	return cmd
}

func applyLogLevel(v *viper.Viper) {
	if v.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// initConfig layers environment variables and an optional config file
// under the command-line flags.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix("PDF_EXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("using config file")
		return nil
	}

	v.SetConfigName("pdf-extract")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pdf-extract"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	log.Debug().Str("file", v.ConfigFileUsed()).Msg("using config file")
	return nil
}

func loadConfig(v *viper.Viper) types.Config {
	return types.Config{
		Backend: types.Backend(strings.ToLower(v.GetString("backend"))),
		Pdftotext: types.PdftotextConfig{
			Path:   v.GetString("pdftotext.path"),
			Layout: v.GetBool("pdftotext.layout"),
		},
		Markitdown: types.MarkitdownConfig{
			Image: v.GetString("markitdown.image"),
		},
		ReportPath: v.GetString("report"),
		Timeout:    v.GetDuration("timeout"),
	}
}
