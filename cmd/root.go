// Package cmd provides the root command and CLI setup for covall.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/covall/internal/adapter"
	"github.com/mouse-blink/covall/internal/config"
	"github.com/mouse-blink/covall/internal/controller"
	"github.com/mouse-blink/covall/internal/domain"
	m "github.com/mouse-blink/covall/internal/model"
	"github.com/mouse-blink/covall/pkg/logger/slogpretty"
)

// workflow is built from the loaded config unless a test has set it.
var workflow domain.Workflow

var cfg config.Config

var configPathFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covall",
		Short: "Merge LCOV coverage with the full source inventory",
		Long: `Covall lists every file under the source root, joins it with the counters
from an LCOV tracefile and writes the result as a JavaScript array literal
next to a static HTML report viewer.

Files the tests never loaded are reported with zero coverage instead of
being left out.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configPathFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cfg = loaded

			if workflow == nil {
				workflow, err = newWorkflow(cmd, cfg)
				if err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Build(buildArgs(cfg))
		},
	}
	cmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", config.DefaultPath, "path to the YAML config file (optional)")

	return cmd
}

func newWorkflow(cmd *cobra.Command, cfg config.Config) (domain.Workflow, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := slogpretty.SetupLogger(cfg.Env, level, cmd.ErrOrStderr())
	log.Debug("config loaded", slog.String("path", configPathFlag), slog.String("source_root", cfg.SourceRoot))

	writer := adapter.NewAtomicWriter(adapter.DefaultAtomicConfig())

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(writer),
		adapter.NewAssetStager(writer),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		log,
	), nil
}

func buildArgs(cfg config.Config) domain.BuildArgs {
	return domain.BuildArgs{
		SourceRoot:   m.Path(cfg.SourceRoot),
		Exclude:      cfg.Exclude,
		CoverageFile: m.Path(cfg.CoverageFile),
		OutputFile:   m.Path(cfg.OutputFile),
		OutputDir:    m.Path(cfg.OutputDir),
		Identifier:   cfg.Identifier,
		Templates:    os.DirFS(cfg.TemplateDir),
		Assets:       adapter.DefaultAssets,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
