package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/decisionkit-labs/decisionkit/internal/components"
	"github.com/spf13/cobra"
)

var (
	componentsCategory string
	componentsJSON     bool
)

func init() {
	componentsCmd.Flags().StringVar(&componentsCategory, "category", "", "Filter by category (data-transport, model, sender, trace-logger)")
	componentsCmd.Flags().BoolVar(&componentsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(componentsCmd)
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List registered component implementations",
	Long:  `List the keys registered in each component category, including any added by the platform hook.`,
	RunE:  runComponents,
}

// componentEntry represents one registered key for display.
type componentEntry struct {
	Category string `json:"category"`
	Key      string `json:"key"`
}

func runComponents(cmd *cobra.Command, args []string) error {
	lt := components.Acquire()
	defer lt.Close()

	entries := componentEntries(lt.Registries())

	if componentsCategory != "" {
		var filtered []componentEntry
		for _, e := range entries {
			if e.Category == componentsCategory {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if componentsJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling component list: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components registered.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tKEY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Category, e.Key)
	}
	return w.Flush()
}

// componentEntries flattens the registry set into display rows, one
// category at a time, keys in registry (lexicographic) order.
func componentEntries(s *components.Set) []componentEntry {
	var entries []componentEntry
	for _, key := range s.DataTransport.Keys() {
		entries = append(entries, componentEntry{Category: "data-transport", Key: key})
	}
	for _, key := range s.Model.Keys() {
		entries = append(entries, componentEntry{Category: "model", Key: key})
	}
	for _, key := range s.Sender.Keys() {
		entries = append(entries, componentEntry{Category: "sender", Key: key})
	}
	for _, key := range s.TraceLogger.Keys() {
		entries = append(entries, componentEntry{Category: "trace-logger", Key: key})
	}
	return entries
}
