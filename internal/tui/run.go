package tui

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/randomizedcoder/go-spinrun/internal/runner"
	"github.com/randomizedcoder/go-spinrun/internal/sink"
)

// Run executes the invocation under a live terminal view.
//
// The runner is forced into streaming mode so the view can show output as
// it arrives, and its sink is discarded because the TUI owns the terminal.
// Detaching from the view (q, ctrl+c) does not stop the child; Run still
// waits for it and returns the captured output.
func Run(ctx context.Context, cfg runner.Config, inv runner.Invocation) (string, error) {
	p := tea.NewProgram(New(inv.Args))

	base := cfg.Callbacks
	cfg.Mode = runner.ModeStream
	cfg.Sink = sink.New(io.Discard)
	cfg.Callbacks.OnLine = func(line string) {
		if base.OnLine != nil {
			base.OnLine(line)
		}
		p.Send(LineMsg(line))
	}
	cfg.Callbacks.OnExit = func(exitCode int, uptime time.Duration) {
		if base.OnExit != nil {
			base.OnExit(exitCode, uptime)
		}
	}
	r := runner.New(cfg)

	type result struct {
		out string
		err error
	}
	resCh := make(chan result, 1)

	go func() {
		out, err := r.Run(ctx, inv)

		exitCode := 0
		if err != nil {
			exitCode = 1
			var execErr *runner.ExecError
			if errors.As(err, &execErr) && execErr.ExitCode != 0 {
				exitCode = execErr.ExitCode
			}
		}

		resCh <- result{out: out, err: err}
		p.Send(DoneMsg{ExitCode: exitCode, Err: err})
	}()

	if _, err := p.Run(); err != nil {
		// View failed; the run itself is still authoritative.
		res := <-resCh
		return res.out, res.err
	}

	res := <-resCh
	return res.out, res.err
}
