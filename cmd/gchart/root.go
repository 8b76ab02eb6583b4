package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/bjaus/gchart"
	"github.com/bjaus/gchart/internal/render"
)

type flags struct {
	output   string
	endpoint string
	verbose  bool
}

func newRootCmd(lookuper envconfig.Lookuper) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "gchart [definition.yaml]",
		Short: "Build a Google Chart API URL from a chart definition",
		Long: `gchart reads a YAML chart definition (from a file, or stdin when the
argument is "-" or missing) and prints the chart URL.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, lookuper)
		},
	}

	names := make([]string, 0, len(render.Formats()))
	for _, fm := range render.Formats() {
		names = append(names, fm.String())
	}
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format: "+strings.Join(names, ", ")+", go-template=<tmpl> (default plain)")
	cmd.Flags().StringVar(&f.endpoint, "endpoint", "", "Chart service base URL (overrides the definition)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, args []string, f flags, lookuper envconfig.Lookuper) error {
	cfg, err := loadConfig(cmd.Context(), lookuper)
	if err != nil {
		return err
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if f.endpoint != "" {
		cfg.Endpoint = f.endpoint
	}
	if f.verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}

	lvl, err := cfg.level()
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(lvl).With().Timestamp().Logger()

	if err := build(cmd, args, cfg, log); err != nil {
		log.Error().Err(err).Msg("gchart failed")
		return err
	}
	return nil
}

func build(cmd *cobra.Command, args []string, cfg *config, log zerolog.Logger) error {
	format, err := render.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	src := "-"
	if len(args) == 1 {
		src = args[0]
	}
	log.Debug().Str("source", src).Str("output", format.String()).Msg("reading definition")

	def, err := readDefinition(cmd.InOrStdin(), src)
	if err != nil {
		return err
	}
	if cfg.Endpoint != "" {
		def.Endpoint = cfg.Endpoint
	}

	chart, err := def.Chart()
	if err != nil {
		return fmt.Errorf("build chart from %s: %w", src, err)
	}

	r := newReport(chart)
	log.Debug().Object("chart", r).Msg("chart built")

	out := cmd.OutOrStdout()
	if format.Tabular() {
		return render.Write(out, format, r.rows()...)
	}
	return render.Write(out, format, r)
}

func readDefinition(stdin io.Reader, src string) (*gchart.Definition, error) {
	if src == "-" {
		return gchart.LoadDefinition(stdin)
	}
	fh, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer fh.Close()
	return gchart.LoadDefinition(fh)
}
