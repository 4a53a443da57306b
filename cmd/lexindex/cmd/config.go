package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ordinalab/lexindex/configs"
	"github.com/ordinalab/lexindex/internal/config"
	"github.com/ordinalab/lexindex/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long: `Manage the user/global configuration file.

User configuration contains machine-specific settings that apply to
ALL projects on this machine. Project settings belong in .lexindex.yaml
(see 'lexindex init').

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/lexindex/config.yaml)
  3. Project config (.lexindex.yaml)
  4. Environment variables (LEXINDEX_*)`,
		Example: `  # Create user config from template
  lexindex config init

  # Show effective configuration (merged from all sources)
  lexindex config show

  # Print user config file path
  lexindex config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Create the user/global configuration file from a template.

The configuration file is created at ~/.config/lexindex/config.yaml
(or $XDG_CONFIG_HOME/lexindex/config.yaml if XDG_CONFIG_HOME is set).
All settings ship commented out; defaults work as is.`,
		Example: `  # Create user config
  lexindex config init

  # Replace existing config with a fresh template (backs it up first)
  lexindex config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration (keeps a backup)")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		source     string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging all sources.

By default, shows the merged configuration from:
  1. Hardcoded defaults
  2. User config (~/.config/lexindex/config.yaml)
  3. Project config (.lexindex.yaml)
  4. Environment variables`,
		Example: `  # Show merged configuration
  lexindex config show

  # Show as JSON
  lexindex config show --json

  # Show only user config
  lexindex config show --source user`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, jsonOutput, source)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&source, "source", "merged", "Config source: merged, user, project, defaults")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		Long:  `Print the path to the user configuration file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return nil
		},
	}
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	out := ui.New(cmd.OutOrStdout(), quiet)
	configPath := config.GetUserConfigPath()

	if config.UserConfigExists() {
		if !force {
			out.Warning("User configuration already exists")
			out.Statusf("📁", "Location: %s", configPath)
			out.Newline()
			out.Status("💡", "Use --force to replace it with a fresh template (keeps a backup)")
			return nil
		}
		return replaceUserConfig(out, configPath)
	}

	if err := os.MkdirAll(config.GetUserConfigDir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := writeUserTemplate(configPath); err != nil {
		return err
	}

	out.Success("Created user configuration")
	out.Statusf("📁", "Location: %s", configPath)
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Uncomment the settings you want to change")
	out.Status("", "  2. Run 'lexindex config show' to verify")

	return nil
}

// replaceUserConfig backs the current file up, then starts over from the
// template.
func replaceUserConfig(out *ui.Writer, configPath string) error {
	backupPath, err := config.BackupUserConfig()
	if err != nil {
		return fmt.Errorf("failed to backup config: %w", err)
	}
	if err := writeUserTemplate(configPath); err != nil {
		return err
	}

	out.Success("Replaced user configuration with a fresh template")
	out.Statusf("📁", "Location: %s", configPath)
	out.Statusf("💾", "Backup: %s", backupPath)
	return nil
}

func writeUserTemplate(configPath string) error {
	if err := os.WriteFile(configPath, []byte(configs.UserConfigTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, jsonOutput bool, source string) error {
	out := ui.New(cmd.OutOrStdout(), quiet)

	cfg, sourceDesc, err := resolveShownConfig(out, source)
	if err != nil || cfg == nil {
		// A nil config with nil error means the source has no file and
		// the writer already said so
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out.Statusf("📋", "Configuration source: %s", sourceDesc)
	out.Newline()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func resolveShownConfig(out *ui.Writer, source string) (*config.Config, string, error) {
	switch source {
	case "merged":
		cfg, err := loadProjectConfig()
		if err != nil {
			return nil, "", err
		}
		return cfg, "merged (defaults + user + project + env)", nil

	case "user":
		configPath := config.GetUserConfigPath()
		cfg, err := config.LoadUserConfig()
		if err != nil {
			return nil, "", err
		}
		if cfg == nil {
			out.Warning("No user configuration file found")
			out.Statusf("📁", "Expected at: %s", configPath)
			out.Status("💡", "Run 'lexindex config init' to create one")
			return nil, "", nil
		}
		return cfg, fmt.Sprintf("user (%s)", configPath), nil

	case "project":
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root, err := config.FindProjectRoot(cwd)
		if err != nil {
			root = cwd
		}

		var configPath string
		for _, name := range []string{".lexindex.yaml", ".lexindex.yml"} {
			if p := filepath.Join(root, name); fileExists(p) {
				configPath = p
				break
			}
		}
		if configPath == "" {
			out.Warning("No project configuration file found")
			out.Statusf("📁", "Expected at: %s", filepath.Join(root, ".lexindex.yaml"))
			out.Status("💡", "Run 'lexindex init' to create one")
			return nil, "", nil
		}

		cfg := config.NewConfig()
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read project config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse project config: %w", err)
		}
		return cfg, fmt.Sprintf("project (%s)", configPath), nil

	case "defaults":
		return config.NewConfig(), "defaults (hardcoded)", nil

	default:
		return nil, "", fmt.Errorf("invalid source: %s (use: merged, user, project, defaults)", source)
	}
}
