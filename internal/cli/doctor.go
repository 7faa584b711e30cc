package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decisionkit-labs/decisionkit/internal/components"
	"github.com/decisionkit-labs/decisionkit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the DecisionKit setup",
	Long:  `Run diagnostic checks on configuration, registry seeding, and sender output paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		checkConfig(out)
		checkRegistry(out)
		checkSenderPaths(out)
		return nil
	},
}

func checkConfig(w io.Writer) {
	fmt.Fprintln(w, "Config check:")

	dir := config.Dir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s does not exist (defaults apply)\n", dir)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", dir)

	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s does not exist (defaults apply)\n", path)
		return
	}
	config.Load()
	fmt.Fprintf(w, "  [ OK ] %s loaded\n", path)
}

func checkRegistry(w io.Writer) {
	fmt.Fprintln(w, "Registry check:")

	lt := components.Acquire()
	defer lt.Close()
	s := lt.Registries()

	builtins := []struct {
		category string
		key      string
		ok       bool
	}{
		{"model", components.KeyModelVW, s.Model.IsRegistered(components.KeyModelVW)},
		{"trace-logger", components.KeyNullTraceLogger, s.TraceLogger.IsRegistered(components.KeyNullTraceLogger)},
		{"trace-logger", components.KeyConsoleTraceLogger, s.TraceLogger.IsRegistered(components.KeyConsoleTraceLogger)},
		{"sender", components.KeyObservationFileSender, s.Sender.IsRegistered(components.KeyObservationFileSender)},
		{"sender", components.KeyInteractionFileSender, s.Sender.IsRegistered(components.KeyInteractionFileSender)},
	}
	for _, b := range builtins {
		if b.ok {
			fmt.Fprintf(w, "  [ OK ] %s/%s registered\n", b.category, b.key)
		} else {
			fmt.Fprintf(w, "  [FAIL] %s/%s missing\n", b.category, b.key)
		}
	}

	if keys := s.DataTransport.Keys(); len(keys) == 0 {
		fmt.Fprintln(w, "  [INFO] no data-transport registered (platform hook not installed)")
	} else {
		fmt.Fprintf(w, "  [ OK ] data-transport: %v\n", keys)
	}
}

func checkSenderPaths(w io.Writer) {
	fmt.Fprintln(w, "Sender path check:")

	config.Load()
	view := config.Default()

	paths := []string{
		view.String(components.OptObservationFileName, components.DefaultObservationFile),
		view.String(components.OptInteractionFileName, components.DefaultInteractionFile),
	}
	for _, p := range paths {
		checkWritablePath(w, p)
	}
}

// checkWritablePath reports whether the directory holding p exists. The
// sender itself only opens the file at first use, so doctor checks the
// parent directory rather than touching the file.
func checkWritablePath(w io.Writer, path string) {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [WARN] %s: directory %s does not exist\n", path, dir)
		return
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [FAIL] %s: %s is not a directory\n", path, dir)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}
