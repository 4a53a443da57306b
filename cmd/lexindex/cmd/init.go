package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ordinalab/lexindex/configs"
	"github.com/ordinalab/lexindex/internal/config"
	"github.com/ordinalab/lexindex/internal/ui"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project configuration file",
		Long: `Create .lexindex.yaml in the project root.

The file pins project-wide settings, most importantly the key
alphabet: collaborators and CI jobs then mint keys from the same
symbol set, which keeps shared key files comparable. All settings
ship commented out; defaults work as is.

The project root is the nearest ancestor directory holding .git or an
existing lexindex config; otherwise the current directory.`,
		Example: `  # Create .lexindex.yaml in the project root
  lexindex init

  # Overwrite an existing file with a fresh template
  lexindex init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	out := ui.New(cmd.OutOrStdout(), quiet)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := config.FindProjectRoot(cwd)
	if err != nil {
		root = cwd
	}

	yamlPath := filepath.Join(root, ".lexindex.yaml")
	ymlPath := filepath.Join(root, ".lexindex.yml")

	// Both extensions count as existing config (user preference)
	existing := ""
	if fileExists(yamlPath) {
		existing = yamlPath
	} else if fileExists(ymlPath) {
		existing = ymlPath
	}

	if existing != "" && !force {
		out.Warning("Project configuration already exists")
		out.Statusf("📁", "Location: %s", existing)
		out.Status("💡", "Use --force to overwrite it with a fresh template")
		return nil
	}

	if err := os.WriteFile(yamlPath, []byte(configs.ProjectConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", yamlPath, err)
	}

	out.Success("Created project configuration")
	out.Statusf("📁", "Location: %s", yamlPath)
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Uncomment the settings you want to pin (commit the file)")
	out.Status("", "  2. Run 'lexindex config show' to see the effective config")

	return nil
}
