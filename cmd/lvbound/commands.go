package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbound/structures"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvbound",
		Short:         "Bounded-exhaustive generation of structurally valid test inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newListCmd(), newSpaceCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in structures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range structures.All() {
				fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
			}

			return tw.Flush()
		},
	}
}

func newSpaceCmd() *cobra.Command {
	var (
		name string
		size int
	)
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Print the state-space layout of a structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := structures.Lookup(name)
			if err != nil {
				return err
			}
			space, err := s.Space(size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s, size %d: %d slots, %d objects\n",
				s.Name, size, space.Len(), space.NumObjects())

			return space.Describe(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&name, "structure", "s", "binarytree", "structure name (see list)")
	cmd.Flags().IntVarP(&size, "size", "n", 3, "finitization bound")

	return cmd
}
