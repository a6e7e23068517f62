package osabootstrap

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/osa-tools/osa-bootstrap/internal/version"
	"github.com/osa-tools/osa-bootstrap/pkg/bootstrap"
	"github.com/osa-tools/osa-bootstrap/pkg/command"
	"github.com/osa-tools/osa-bootstrap/pkg/config"
	"github.com/osa-tools/osa-bootstrap/pkg/filesystem"
	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/wrapper"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "osa-bootstrap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newRunCmd(&dryRun))
	rootCmd.AddCommand(newWrapperCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newRunCmd(dryRun *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: MsgRunShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.run")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			logger.Info().
				Bool("dryRun", *dryRun).
				Str("workingDir", cfg.WorkingDir).
				Str("ansible", cfg.AnsiblePackage).
				Msg("Starting bootstrap")

			b := bootstrap.New(bootstrap.Options{
				Config:   cfg,
				Runner:   command.NewOS(),
				DryRun:   *dryRun,
				Reporter: stepReporter{},
			})

			if err := b.Run(cmd.Context()); err != nil {
				return fmt.Errorf(MsgErrBootstrap, err)
			}

			if *dryRun {
				fmt.Println(MsgDryRunNotice)
				return nil
			}

			fmt.Println(MsgBootstrapDone)
			fmt.Println(MsgWrapperAvailable)
			return nil
		},
	}
}

func newWrapperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wrapper",
		Short: MsgWrapperShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wrapper.Write(filesystem.NewOS(), wrapper.Path); err != nil {
				return err
			}
			fmt.Printf(MsgWrapperWritten, wrapper.Path)
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := filesystem.NewOS()
			if _, err := fs.Stat(config.ConfigFileName); err == nil {
				fmt.Printf(MsgConfigExists, config.ConfigFileName)
				return nil
			}

			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			if err := fs.WriteFile(config.ConfigFileName, []byte(content), 0644); err != nil {
				return err
			}
			fmt.Printf(MsgConfigWritten, config.ConfigFileName)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("osa-bootstrap version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			}
			return nil
		},
	}
}
