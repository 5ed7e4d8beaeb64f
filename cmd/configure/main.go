// FILE: lixenwraith/configure/cmd/configure/main.go

// Command configure builds a configuration document from the built-in
// defaults, CONFIGURE_OVERRIDE_* environment variables and --set flags,
// checks its docRoot and prints it.
//
//	configure --set docRoot=/var/www --set listen=:8080 --format yaml
//
// The exit status is 1 when the document is rejected; the diagnostic is
// written to standard error.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/configure"
)

// errBuildFailed marks a rejected document. The builder has already logged
// the reason, so it is not reported again.
var errBuildFailed = errors.New("build failed")

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args, environ []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(environ, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errBuildFailed) {
			log := configure.NewDiagnosticLogger(stderr)
			log.Error().Err(err).Msg("configure failed")
		}
		return 1
	}
	return 0
}

func newRootCommand(environ []string, stdout, stderr io.Writer) *cobra.Command {
	var (
		flagSettings Settings
		assignments  []string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Build and validate a configuration document",
		Long: `configure overlays overrides onto the default configuration, checks that
docRoot names an existing directory and prints the resulting document.

Overrides are read from CONFIGURE_OVERRIDE_* environment variables
(CONFIGURE_OVERRIDE_DOC_ROOT becomes docRoot) and from --set key=value
flags, which take precedence.

Tool settings come from CONFIGURE_FORMAT, CONFIGURE_LOG_LEVEL and
CONFIGURE_DEFAULT_DOC_ROOT, overridden by the matching flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			envSettings, err := settingsFromEnv(environ)
			if err != nil {
				return err
			}
			settings, err := mergeSettings(envSettings, flagSettings)
			if err != nil {
				return err
			}

			overrides := configure.OverridesFromEnv(overrideEnvPrefix, environ)
			for _, a := range assignments {
				key, value, err := configure.ParseAssignment(a)
				if err != nil {
					return err
				}
				overrides[key] = value
			}

			logger := configure.NewDiagnosticLogger(stderr).Level(settings.level())
			logger.Debug().
				Str("default_doc_root", settings.DefaultDocRoot).
				Int("overrides", len(overrides)).
				Msg("building configuration")

			return build(cmd.OutOrStdout(), settings, overrides, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringArrayVar(&assignments, "set", nil, "override a key (key=value), repeatable")
	flags.StringVarP(&flagSettings.Format, "format", "f", "", "output format: toml, json or yaml (default toml)")
	flags.StringVar(&flagSettings.LogLevel, "log-level", "", "diagnostic log level (default info)")
	flags.StringVar(&flagSettings.DefaultDocRoot, "default-doc-root", "", "docRoot used when no override sets one (default "+configure.DefaultDocRoot+")")

	return cmd
}

func build(w io.Writer, settings Settings, overrides map[string]any, logger zerolog.Logger) error {
	builder := configure.NewBuilder().
		WithDocRoot(settings.DefaultDocRoot).
		WithLogger(logger)

	doc, err := builder.Build(overrides).Unwrap()
	if err != nil {
		return errBuildFailed
	}

	return configure.Encode(w, doc, settings.Format)
}
