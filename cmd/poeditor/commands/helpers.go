// Package commands implements the poeditor CLI commands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/localizehq/poeditor-go/pkg/poclient"
	"github.com/localizehq/poeditor-go/pkg/poeditor"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenNotConfigured = errors.New("no API token configured (use 'poeditor config set-token', the --token flag, or POEDITOR_TOKEN)")
	ErrDataFileRequired   = errors.New("a data file is required (--file)")
	ErrUseSetToken        = errors.New("use 'poeditor config set-token' to store the token")
)

// createClient builds an API client from the effective configuration.
func createClient() (poeditor.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrTokenNotConfigured
	}

	client, err := poclient.New(&poeditor.Config{
		APIToken:    token,
		APIEndpoint: viper.GetString("endpoint"),
		Debug:       viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// renderTable builds a table with the given header and rows on stdout.
func renderTable(header []string, rows [][]string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderOutput dispatches on the configured output format; renderRows is
// only invoked for the default table format.
func renderOutput(data interface{}, header []string, renderRows func() [][]string) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(data)
	case OutputFormatYAML:
		return renderYAML(data)
	default:
		return renderTable(header, renderRows())
	}
}

// outputCounters renders the counters returned by bulk mutations.
func outputCounters(counters *poeditor.UploadCounters) error {
	return renderOutput(counters, []string{"Parsed", "Added", "Updated", "Deleted"}, func() [][]string {
		return [][]string{{
			strconv.Itoa(int(counters.Parsed)),
			strconv.Itoa(int(counters.Added)),
			strconv.Itoa(int(counters.Updated)),
			strconv.Itoa(int(counters.Deleted)),
		}}
	})
}

// parseProjectID parses a positional project ID argument.
func parseProjectID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid project ID %q: %w", arg, err)
	}

	return id, nil
}

// decodeDataFile reads a JSON payload file into v.
func decodeDataFile(path string, v interface{}) error {
	if path == "" {
		return ErrDataFileRequired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading data file: %w", err)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("parsing data file %s: %w", path, err)
	}

	return nil
}

// formatFlag renders a Flag for table output.
func formatFlag(f poeditor.Flag) string {
	if f {
		return "yes"
	}

	return "no"
}

// formatTimestamp renders a Timestamp for table output.
func formatTimestamp(t poeditor.Timestamp) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format("2006-01-02 15:04")
}

// confirm prompts before a destructive operation unless force is set.
func confirm(prompt string, force bool) bool {
	if force {
		return true
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s (y/N): ", prompt)

	var response string

	_, _ = fmt.Scanln(&response)

	return response == "y" || response == "Y"
}
