package command

import (
	"errors"

	"github.com/shini4i/fixture-gen/internal/app"
	"github.com/shini4i/fixture-gen/internal/helpers"
	"github.com/spf13/cobra"
)

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	RunApp      func(app.Config) error
	InitLogging func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command. The tool is single-purpose,
// so the root command runs the capture workflow directly.
func newRootCommand(opts Options) *cobra.Command {
	flags := loadRootDefaults()

	var debug bool

	root := &cobra.Command{
		Use:          "fixture-gen",
		Short:        "Generate golden-output fixtures by exercising an external CLI",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}

			cfg, err := app.NewConfig(flags.configOptions(opts, debug)...)
			if err != nil {
				return err
			}

			if opts.RunApp == nil {
				return errors.New("no run handler provided")
			}

			return opts.RunApp(cfg)
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	root.Flags().StringVarP(&flags.workspace, "workspace", "w", flags.workspace, "Directory receiving the fixture files")
	root.Flags().StringVarP(&flags.executable, "executable", "e", flags.executable, "CLI binary to exercise")
	root.Flags().StringVarP(&flags.manifest, "manifest", "m", "", "YAML file declaring the invocation list")
	root.Flags().BoolVar(&flags.appendOutput, "append", false, "Append to existing fixture files instead of truncating")

	return root
}

type rootFlags struct {
	workspace    string
	executable   string
	manifest     string
	appendOutput bool
}

func loadRootDefaults() rootFlags {
	return rootFlags{
		workspace:  helpers.GetEnv("FIXTURE_GEN_WORKSPACE", app.DefaultWorkspaceDir),
		executable: helpers.GetEnv("FIXTURE_GEN_EXECUTABLE", app.DefaultExecutable),
	}
}

func (f rootFlags) configOptions(opts Options, debugEnabled bool) []app.ConfigOption {
	return []app.ConfigOption{
		app.WithExecutable(f.executable),
		app.WithWorkspaceDir(f.workspace),
		app.WithManifestFile(f.manifest),
		app.WithAppend(f.appendOutput),
		app.WithDebug(debugEnabled),
		app.WithVersion(opts.Version),
	}
}
