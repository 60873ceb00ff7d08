package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	episode "github.com/mklemm/jaxb2-episode-ext"
)

func newCmdInspect(fsys afero.Fs) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <episode-file>",
		Short: "Print the bindings of an episode file as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fsys.Open(args[0])
			if err != nil {
				return fmt.Errorf("open episode: %w", err)
			}
			defer f.Close()

			d, err := episode.Read(f)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}
			return writef(cmd.OutOrStdout(), "%s", describe(args[0], d).String())
		},
	}
}

func describe(name string, d *episode.Descriptor) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (version %s, %d bindings)", name, d.Version, d.Len()))
	for _, g := range d.Groups {
		label := g.SCD
		if g.Namespace != "" {
			label += " {" + g.Namespace + "}"
		}
		branch := tree.AddBranch(label)
		if g.Package != "" {
			branch.AddMetaNode("package", g.Package)
		}
		for _, b := range g.Bindings {
			branch.AddMetaNode(string(b.Kind), b.SCD+" -> "+b.Ref)
		}
	}
	return tree
}
