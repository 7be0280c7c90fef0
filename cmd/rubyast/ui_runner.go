package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Neswisoft/ruby/internal/pipeline"
	"github.com/Neswisoft/ruby/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

type batchOutcome struct {
	result pipeline.RunResult
	err    error
}

// runBatchWithUI прогоняет пакетное декодирование под прогресс-интерфейсом.
// События пайплайна уходят в модель через канал, итог возвращается после
// завершения обеих горутин.
func runBatchWithUI(ctx context.Context, title string, files []string, req *pipeline.RunRequest) (pipeline.RunResult, error) {
	if req == nil {
		return pipeline.RunResult{}, fmt.Errorf("missing run request")
	}
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, err := pipeline.Run(ctx, &reqCopy)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
