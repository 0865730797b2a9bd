package cmd

import (
	"github.com/spf13/cobra"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchGUI(opts)
		},
	}
}

func launchGUI(opts *options) error {
	cfg, err := opts.config()
	if err != nil {
		return err
	}
	runGUI(cfg, opts.path())
	return nil
}
