package cli

import (
	"fmt"
	"os"

	"github.com/decisionkit-labs/decisionkit/internal/components"
	"github.com/decisionkit-labs/decisionkit/internal/config"
	"github.com/decisionkit-labs/decisionkit/internal/factory"
	"github.com/decisionkit-labs/decisionkit/internal/trace"
	"github.com/spf13/cobra"
)

var (
	sendKey    string
	sendTracer string
	sendCount  int
)

func init() {
	sendCmd.Flags().StringVar(&sendKey, "sender", components.KeyObservationFileSender, "Sender key to create")
	sendCmd.Flags().StringVar(&sendTracer, "tracer", components.KeyNullTraceLogger, "Trace-logger key to create")
	sendCmd.Flags().IntVar(&sendCount, "count", 1, "Number of copies to send")
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send <payload>",
	Short: "Send a test event through a registered sender",
	Long: `Construct a sender through the component registry and deliver the given
payload. Useful for verifying that a configured sender key and its options
(file paths, etc.) work end to end.`,
	Args: cobra.ExactArgs(1),
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	if sendCount < 1 {
		return fmt.Errorf("count must be at least 1, got %d", sendCount)
	}

	config.Load()

	lt := components.Acquire()
	defer lt.Close()
	s := lt.Registries()

	var st factory.Status
	tr, err := s.TraceLogger.Create(sendTracer, config.Default(), factory.NoArgs{}, trace.Noop{}, &st)
	if err != nil {
		return fmt.Errorf("creating trace logger %q: %w", sendTracer, err)
	}

	onError := func(err error) {
		fmt.Fprintf(os.Stderr, "send error: %v\n", err)
	}
	snd, err := s.Sender.Create(sendKey, config.Default(), components.SenderArgs{OnError: onError}, tr, &st)
	if err != nil {
		if detail := st.Detail(); detail != "" {
			return fmt.Errorf("creating sender %q: %w (%s)", sendKey, err, detail)
		}
		return fmt.Errorf("creating sender %q: %w", sendKey, err)
	}
	defer snd.Close()

	payload := []byte(args[0])
	for i := 0; i < sendCount; i++ {
		if err := snd.Send(payload); err != nil {
			return fmt.Errorf("sending event %d of %d: %w", i+1, sendCount, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sent %d event(s) via %s\n", sendCount, sendKey)
	return nil
}
