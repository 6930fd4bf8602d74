package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbhab",
		Short: "Habitat layout engine for the Orb of Night editor",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sceneCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a habitat project: schema, metrics, and zone placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [project-path]",
		Short: "Compute and display habitat volume and habitability metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func sceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene [project-path]",
		Short: "Build the layout and emit the scene graph as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScene(args[0])
		},
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [project-path]",
		Short: "Build the layout and write it as a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var storePath string

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server behind the interactive 3D editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := ""
			if len(args) == 1 {
				projectPath = args[0]
			}
			return runServe(projectPath, port, storePath, cmd.Flags().Changed("port"))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&storePath, "store", "", "sqlite layout library path (enables /api/layouts)")
	return cmd
}
