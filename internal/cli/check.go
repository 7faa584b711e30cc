package cli

import (
	"fmt"

	"github.com/decisionkit-labs/decisionkit/internal/components"
	"github.com/decisionkit-labs/decisionkit/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <manifest>",
	Short: "Validate a component manifest",
	Long: `Validate a component manifest file: JSON Schema conformance, component
API version compatibility, and whether every referenced key is registered.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(out, "    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
	}
	fmt.Fprintln(out, "  [ OK ] Schema valid")

	m, err := manifest.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}

	// API version compatibility.
	if err := manifest.CheckRequires(m.Requires, components.APIVersion); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	if m.Requires != "" {
		fmt.Fprintf(out, "  [ OK ] API version %s satisfies %q\n", components.APIVersion, m.Requires)
	}

	// Every referenced key must be registered.
	lt := components.Acquire()
	defer lt.Close()

	missing := missingKeys(m, lt.Registries())
	if len(missing) > 0 {
		for _, ref := range missing {
			fmt.Fprintf(out, "  [FAIL] %s\n", ref)
		}
		return fmt.Errorf("manifest %s references %d unregistered key(s)", path, len(missing))
	}

	fmt.Fprintf(out, "  [ OK ] All referenced keys registered: %s\n", m.Name)
	return nil
}

// missingKeys returns a description of every manifest reference whose key
// has no registered creator in its category.
func missingKeys(m *manifest.Manifest, s *components.Set) []string {
	var missing []string

	if m.Model != nil && !s.Model.IsRegistered(m.Model.Key) {
		missing = append(missing, fmt.Sprintf("model key %q is not registered", m.Model.Key))
	}
	if m.TraceLogger != nil && !s.TraceLogger.IsRegistered(m.TraceLogger.Key) {
		missing = append(missing, fmt.Sprintf("trace-logger key %q is not registered", m.TraceLogger.Key))
	}
	for _, ref := range m.Senders {
		if !s.Sender.IsRegistered(ref.Key) {
			missing = append(missing, fmt.Sprintf("sender key %q is not registered", ref.Key))
		}
	}
	if m.Transport != nil && !s.DataTransport.IsRegistered(m.Transport.Key) {
		missing = append(missing, fmt.Sprintf("data-transport key %q is not registered", m.Transport.Key))
	}
	return missing
}
