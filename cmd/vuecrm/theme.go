package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/vuecrm/internal/app"
	"github.com/five82/vuecrm/internal/appearance"
)

func newThemeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the light/dark preference",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the resolved mode and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withServices(cmd, func(out io.Writer, svc app.Services) error {
				return printMode(out, svc.Resolver)
			})
		},
	}

	set := &cobra.Command{
		Use:       "set light|dark",
		Short:     "Persist a theme preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(appearance.Light), string(appearance.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := appearance.ParseMode(args[0])
			if err != nil {
				return err
			}
			return c.withServices(cmd, func(out io.Writer, svc app.Services) error {
				if err := svc.Resolver.Set(mode); err != nil {
					return err
				}
				return printMode(out, svc.Resolver)
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored preference and follow the system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withServices(cmd, func(out io.Writer, svc app.Services) error {
				if err := svc.Resolver.Clear(); err != nil {
					return err
				}
				return printMode(out, svc.Resolver)
			})
		},
	}

	cmd.AddCommand(get, set, clearCmd)
	return cmd
}

func printMode(out io.Writer, r *appearance.Resolver) error {
	_, err := fmt.Fprintf(out, "%s (%s)\n", r.Mode(), r.Origin())
	return err
}
