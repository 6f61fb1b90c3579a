package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/localizehq/poeditor-go/internal/constants"
)

// Config represents the CLI configuration persisted to disk.
type Config struct {
	Token    string `json:"token,omitempty"    yaml:"token,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Output   string `json:"output"             yaml:"output"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage poeditor CLI configuration including the API token and defaults",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetTokenCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the token redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.Token != "" {
				display.Token = "[REDACTED]"
			}

			return renderOutput(display, []string{"Property", "Value"}, func() [][]string {
				rows := [][]string{
					{"Token", display.Token},
					{"Output", display.Output},
				}
				if display.Endpoint != "" {
					rows = append(rows, []string{"Endpoint", display.Endpoint})
				}

				return rows
			})
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [TOKEN]",
		Short: "Store the API token",
		Long:  "Store the POEditor API token in the config file. Prompts when no token argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string

			if len(args) == 1 {
				token = args[0]
			} else {
				_, _ = os.Stdout.WriteString("API Token: ")

				tokenBytes, err := term.ReadPassword(syscall.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(tokenBytes)

				_, _ = os.Stdout.WriteString("\n")
			}

			config := loadConfig()
			config.Token = token

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Token saved\n")

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (output, endpoint)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			config := loadConfig()

			switch key {
			case "output":
				config.Output = value
			case "endpoint":
				config.Endpoint = value
			case "token":
				return ErrUseSetToken
			default:
				return fmt.Errorf("unknown config key %q", key)
			}

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the config file, including the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm("Really remove all configuration?", force) {
				_, _ = os.Stdout.WriteString("Cancelled\n")

				return nil
			}

			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = os.Stdout.WriteString("Configuration cleared\n")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func loadConfig() *Config {
	output := viper.GetString("output")
	if output == "" {
		output = "table"
	}

	return &Config{
		Token:    viper.GetString("token"),
		Endpoint: viper.GetString("endpoint"),
		Output:   output,
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".poeditor", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
