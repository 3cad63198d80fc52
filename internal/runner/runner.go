// Package runner launches a single child process, supervises it to
// completion, and yields either its captured output or a typed error.
//
// Two observation modes are supported while the child runs:
//
//   - ModeIndicator: repeatedly invoke a progress pattern against an output
//     sink while polling for exit. The poll never blocks; pacing comes
//     entirely from the pattern's own sleep.
//   - ModeStream: consume the child's stdout line by line as it arrives,
//     logging each line at debug level and accumulating it as the result.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/randomizedcoder/go-spinrun/internal/pattern"
	"github.com/randomizedcoder/go-spinrun/internal/sink"
)

// Mode selects how the runner observes the child while it runs.
type Mode int

const (
	// ModeIndicator shows a visual heartbeat while polling for completion,
	// without reading child output in-process until after exit.
	ModeIndicator Mode = iota

	// ModeStream reads and logs each line of child stdout as it arrives.
	ModeStream
)

// readBufferSize is the initial stdout read buffer; lines longer than this
// are still consumed in full.
const readBufferSize = 64 * 1024

// Invocation holds the launch parameters for one child process.
type Invocation struct {
	// Args is the command and argument vector. Must be non-empty; Args[0]
	// is resolved via PATH.
	Args []string

	// Dir is the working directory. Empty means the parent's directory.
	Dir string

	// Env is the child environment. Nil means inherit the parent's.
	Env []string

	// Stdin is the child's standard input. Nil means no input.
	Stdin io.Reader

	// Stdout overrides the child's standard output destination. Nil (the
	// default) routes stdout into a capturable pipe so progress markers are
	// never interleaved with child output. Setting it disables in-process
	// capture: the caller owns where that output goes and Run returns "".
	Stdout io.Writer

	// Stderr overrides the child's standard error destination. Nil (the
	// default) captures stderr for error messages.
	Stderr io.Writer
}

// Callbacks contains optional hooks for run events. Used to wire metrics
// and live views without coupling them to the runner.
type Callbacks struct {
	// OnStart is called once the child has launched.
	OnStart func(pid int)

	// OnExit is called after the child has fully terminated.
	OnExit func(exitCode int, uptime time.Duration)

	// OnLine is called per decoded stdout line in ModeStream.
	OnLine func(line string)

	// OnTick is called per pattern invocation in ModeIndicator.
	OnTick func()
}

// Config holds configuration for creating a Runner.
type Config struct {
	Mode      Mode
	Pattern   pattern.Pattern // nil = pattern.Dots(pattern.DefaultInterval)
	Sink      *sink.Sink      // nil = sink.Stderr()
	Logger    *slog.Logger    // nil = slog.Default()
	Callbacks Callbacks
}

// Runner supervises one child process per Run call.
type Runner struct {
	mode      Mode
	pattern   pattern.Pattern
	sink      *sink.Sink
	logger    *slog.Logger
	callbacks Callbacks
}

// New creates a Runner with the given configuration, applying defaults for
// the pattern, sink, and logger.
func New(cfg Config) *Runner {
	p := cfg.Pattern
	if p == nil {
		p = pattern.Dots(pattern.DefaultInterval)
	}
	s := cfg.Sink
	if s == nil {
		s = sink.Stderr()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		mode:      cfg.Mode,
		pattern:   p,
		sink:      s,
		logger:    logger,
		callbacks: cfg.Callbacks,
	}
}

// Run launches the invocation, supervises it to completion, and returns the
// captured stdout (decoded, trailing whitespace trimmed).
//
// Failures are always a *ExecError: launch/wait failures wrap the
// underlying error, and a non-zero exit carries the exit code and captured
// stderr. The child is waited on exactly once on every path, so its OS
// resources are released before Run returns.
func (r *Runner) Run(ctx context.Context, inv Invocation) (string, error) {
	if len(inv.Args) == 0 {
		return "", &ExecError{Args: inv.Args, Err: errors.New("empty argument vector")}
	}

	cmd := exec.CommandContext(ctx, inv.Args[0], inv.Args[1:]...)
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin

	// Default stdout to a capturable pipe unless the caller redirected it,
	// so indicator output isn't interleaved with child output.
	captureStdout := inv.Stdout == nil
	var stdoutBuf bytes.Buffer
	var stdoutPipe io.ReadCloser
	switch {
	case !captureStdout:
		cmd.Stdout = inv.Stdout
	case r.mode == ModeStream:
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return "", &ExecError{Args: inv.Args, Err: err}
		}
		stdoutPipe = pipe
	default:
		cmd.Stdout = &stdoutBuf
	}

	captureStderr := inv.Stderr == nil
	var stderrBuf bytes.Buffer
	if captureStderr {
		cmd.Stderr = &stderrBuf
	} else {
		cmd.Stderr = inv.Stderr
	}

	if err := cmd.Start(); err != nil {
		return "", &ExecError{Args: inv.Args, Err: err}
	}

	startTime := time.Now()
	pid := cmd.Process.Pid
	r.logger.Debug("process_started", "pid", pid, "args", inv.Args)
	if r.callbacks.OnStart != nil {
		r.callbacks.OnStart(pid)
	}

	var output strings.Builder
	var waitErr error

	switch {
	case r.mode == ModeStream && stdoutPipe != nil:
		r.streamLines(stdoutPipe, &output)
		waitErr = cmd.Wait()

	case r.mode == ModeStream:
		// Stdout was redirected by the caller; nothing to stream.
		waitErr = cmd.Wait()

	default:
		waitErr = r.runIndicator(cmd)
	}

	exitCode := extractExitCode(waitErr)
	uptime := time.Since(startTime)

	r.logger.Debug("process_exited",
		"pid", pid,
		"exit_code", exitCode,
		"uptime", uptime.String(),
	)
	if r.callbacks.OnExit != nil {
		r.callbacks.OnExit(exitCode, uptime)
	}

	// Visually terminate the indicator output in both modes.
	r.sink.WriteString("\n")
	r.sink.Flush()

	out := output.String()
	if out == "" && captureStdout {
		out = decodeBytes(stdoutBuf.Bytes())
	}

	var procStderr string
	if captureStderr {
		procStderr = decodeBytes(stderrBuf.Bytes())
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return "", &ExecError{
				Args:     inv.Args,
				ExitCode: exitCode,
				Stderr:   procStderr,
				Err:      waitErr,
			}
		}
		return "", &ExecError{Args: inv.Args, Err: waitErr}
	}

	return out, nil
}

// runIndicator loops the progress pattern until the child exits. The exit
// check is a non-blocking channel poll; the loop only pauses inside the
// pattern's own sleep, so a pauseless pattern busy-polls by contract.
func (r *Runner) runIndicator(cmd *exec.Cmd) error {
	waitCh := make(chan error, 1)
	go func() {
		waitCh <- cmd.Wait()
	}()

	for {
		select {
		case err := <-waitCh:
			return err
		default:
			r.pattern(r.sink)
			if r.callbacks.OnTick != nil {
				r.callbacks.OnTick()
			}
		}
	}
}

// streamLines consumes the pipe line by line until the child closes its
// stdout, logging each decoded line at debug level and accumulating it.
// Lines of any length are read in full; a reader that stopped early would
// leave the child blocked writing into a full pipe.
func (r *Runner) streamLines(pipe io.Reader, output *strings.Builder) {
	reader := bufio.NewReaderSize(pipe, readBufferSize)

	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			line := decodeString(raw)
			r.logger.Debug("process_stdout", "line", line)
			if r.callbacks.OnLine != nil {
				r.callbacks.OnLine(line)
			}
			output.WriteString(line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Warn("stdout_read_failed", "error", err)
				// Keep draining so the child is never stuck on a full pipe.
				io.Copy(io.Discard, pipe)
			}
			return
		}
	}
}

// extractExitCode extracts the exit code from a Wait() error.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if status.Signaled() {
				// Signal exit: 128 + signal number
				return 128 + int(status.Signal())
			}
			return status.ExitStatus()
		}
	}

	// Unknown error, assume exit code 1
	return 1
}
