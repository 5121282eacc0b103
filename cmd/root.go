package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kucukaslan/hello/buildinfo"
	"kucukaslan/hello/config"
	"kucukaslan/hello/logger"
	"kucukaslan/hello/server"
)

// Execute runs the root command and exits non-zero when it fails.
// This is called by main.main().
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "hello",
		Short:         "Answer every HTTP request with Hello, World!",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildinfo.SetStartTime(time.Now())

			cfg := config.Load(v)
			log := logger.New(stderr, cfg.LogLevel)

			info := buildinfo.GetInfo()
			log.Info().
				Str("version", info.Version).
				Str("commit", info.Commit).
				Str("build_date", info.BuildDate).
				Str("go_version", info.GoVersion).
				Str("hostname", info.Hostname).
				Str("port", cfg.Port).
				Msg("starting application")

			srv := server.New(server.Config{
				Port:   cfg.Port,
				Stdout: stdout,
				Logger: &log,
			})
			if err := srv.Listen(); err != nil {
				log.Error().Err(err).Msg("could not start HTTP server")
				return err
			}

			// Execute runs with a context that is never done; ExecuteContext
			// callers may stop the server by cancelling theirs.
			if done := cmd.Context().Done(); done != nil {
				go func() {
					<-done
					if err := srv.Close(); err != nil {
						log.Error().Err(err).Msg("failed to close HTTP server")
					}
				}()
			}

			return srv.Serve()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringP("port", "p", config.DefaultPort, "HTTP listen port (overrides $PORT)")
	_ = v.BindPFlag("port", cmd.Flags().Lookup("port"))

	cmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "diagnostic log level written to stderr (overrides $LOG_LEVEL)")
	_ = v.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newVersionCmd())

	return cmd
}
