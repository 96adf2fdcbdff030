package main

import (
	"context"

	"github.com/kuleuven/pathcases"
	"github.com/kuleuven/pathcases/config"
	"github.com/kuleuven/pathcases/fixture"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(afero.NewOsFs()).ExecuteContext(context.Background()); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	var configFile string

	d := config.Default()

	cmd := &cobra.Command{
		Use:   "pathcases",
		Short: "Generate a fixture table of edge case paths and their expected properties",
		Long: `Generate a fixture table of edge case paths and their expected properties.

Every path is listed with isAbsolute, basename, dirname, extname, parent and
cleanpath, for use as test oracle by path handling libraries.

Settings are read from --config, PATHCASES_* environment variables and flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fs, configFile)
		},
	}

	flags := cmd.Flags()

	flags.StringVarP(&configFile, "config", "c", "", "Configuration file (yaml, json or toml)")
	flags.StringP("format", "f", d.Format, "Output format: literal, json or yaml")
	flags.StringP("output", "o", "", "Output file, standard output if empty or -")
	flags.String("separator", d.Separator, "Path separator used to evaluate paths")
	flags.Int("max-depth", d.Grammar.MaxDepth, "Levels of nested segment combinations")
	flags.Int("max-leading", d.Grammar.MaxLeading, "Longest leading separator run of boundary cases")
	flags.Bool("digest", false, "Write a BLAKE2b-256 digest file next to the output file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, fs afero.Fs, configFile string) error {
	cfg, err := config.Load(fs, configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx := context.WithValue(cmd.Context(), pathcases.Log, logger)

	paths, err := pathcases.Enumerate(ctx, cfg.Grammar)
	if err != nil {
		return err
	}

	records := cfg.Convention().EvaluateAll(paths)

	pathcases.Logger(ctx).Infof("Count Pathname-Check-Entries: %d", len(records))

	w := &fixture.Writer{
		Fs:     fs,
		Format: cfg.FixtureFormat(),
		Digest: cfg.Digest,
	}

	if cfg.Stdout() {
		if cfg.Digest {
			pathcases.Logger(ctx).Warn("digest requires an output file, skipping")
		}

		return w.Stream(ctx, cmd.OutOrStdout(), records)
	}

	return w.Write(ctx, cfg.Output, records)
}
