package components

import (
	"github.com/decisionkit-labs/decisionkit/internal/config"
	"github.com/decisionkit-labs/decisionkit/internal/factory"
	"github.com/decisionkit-labs/decisionkit/internal/model"
	"github.com/decisionkit-labs/decisionkit/internal/sender"
	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

// Keys of the built-in implementations.
const (
	KeyModelVW               = "VW"
	KeyNullTraceLogger       = "NULL_TRACE_LOGGER"
	KeyConsoleTraceLogger    = "CONSOLE_TRACE_LOGGER"
	KeyObservationFileSender = "OBSERVATION_FILE_SENDER"
	KeyInteractionFileSender = "INTERACTION_FILE_SENDER"
)

// Configuration options consumed by the built-in sender creators.
const (
	OptObservationFileName = "observation.file.name"
	OptInteractionFileName = "interaction.file.name"

	DefaultObservationFile = "observation.fb.data"
	DefaultInteractionFile = "interaction.fb.data"
)

// registerDefaults seeds a freshly constructed set. It runs exactly once
// per 0→1 lifecycle transition, before any concurrent access is possible.
func registerDefaults(s *Set) {
	if platformHook != nil {
		platformHook(s)
	}

	s.Model.Register(KeyModelVW, vwModelCreate)
	s.TraceLogger.Register(KeyNullTraceLogger, nullTracerCreate)
	s.TraceLogger.Register(KeyConsoleTraceLogger, consoleTracerCreate)

	s.Sender.Register(KeyObservationFileSender,
		func(cfg *config.View, args SenderArgs, tr trace.Tracer, st *factory.Status) (sender.Sender, error) {
			return fileSenderCreate(cfg.String(OptObservationFileName, DefaultObservationFile), args, tr)
		})
	s.Sender.Register(KeyInteractionFileSender,
		func(cfg *config.View, args SenderArgs, tr trace.Tracer, st *factory.Status) (sender.Sender, error) {
			return fileSenderCreate(cfg.String(OptInteractionFileName, DefaultInteractionFile), args, tr)
		})
}

func vwModelCreate(_ *config.View, _ factory.NoArgs, tr trace.Tracer, _ *factory.Status) (model.Model, error) {
	return model.NewVW(tr), nil
}

func nullTracerCreate(*config.View, factory.NoArgs, trace.Tracer, *factory.Status) (trace.Tracer, error) {
	return trace.Noop{}, nil
}

func consoleTracerCreate(*config.View, factory.NoArgs, trace.Tracer, *factory.Status) (trace.Tracer, error) {
	return trace.NewConsole(nil), nil
}

// fileSenderCreate is the shared constructor behind both file sender keys.
// The file is not opened here; writability surfaces at first Send.
func fileSenderCreate(path string, args SenderArgs, tr trace.Tracer) (sender.Sender, error) {
	return sender.NewFile(path, args.OnError, tr), nil
}
