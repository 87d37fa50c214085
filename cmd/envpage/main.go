package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbeaudouin05/envpage/api/bootstrap"
	"github.com/tbeaudouin05/envpage/api/config"
	pageapp "github.com/tbeaudouin05/envpage/api/services/page/app"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "envpage",
		Short:         "Serve a page that renders TEST_ENV_VALUE",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newServeCmd(), newRenderCmd(), newEnvCmd())
	return root
}

// setup loads config, installs the default logger and wires services.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg))
	if err := bootstrap.Wire(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// component resolves the env and builds the page. A missing value is an error.
func component(cfg *config.Config) (*pageapp.Component, error) {
	env, err := bootstrap.GetEnvService().Env()
	if err != nil {
		return nil, err
	}
	return pageapp.New(env, pageapp.WithTitle(cfg.PageTitle)), nil
}

func newRenderCmd() *cobra.Command {
	var fragment bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered page to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			c, err := component(cfg)
			if err != nil {
				return err
			}
			if fragment {
				return c.Render(cmd.OutOrStdout())
			}
			return c.RenderDocument(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&fragment, "fragment", false, "print only the heading and card markup")
	return cmd
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the window.__ENV__ injection script to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			c, err := component(cfg)
			if err != nil {
				return err
			}
			script, err := c.Script()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), script)
			return err
		},
	}
}
