package gogcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"

	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/logging"
)

// installHint matches the message shown when the binary is missing.
const installHint = "gogcli not found. Install it from https://github.com/steipete/gogcli/releases"

// Result is the uniform outcome of a gogcli invocation. Successful runs
// carry the raw stdout; failures carry gogcli's own error text and, when a
// process actually ran, its exit code.
type Result struct {
	Success    bool   `json:"success"`
	Output     string `json:"output,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
	Error      string `json:"error,omitempty"`
	ReturnCode int    `json:"returncode,omitempty"`
}

// Runner executes gogcli commands. The zero value is not usable; construct
// with NewRunner.
type Runner struct {
	bin            string
	defaultAccount string
	timeout        time.Duration
	usePTY         bool
	logger         *slog.Logger
}

// NewRunner returns a runner for the given binary path. When usePTY is true
// commands run under a pseudo-terminal with passphrase automation; otherwise
// they run with plain pipes, matching a non-interactive keyring setup.
func NewRunner(bin, defaultAccount string, timeout time.Duration, usePTY bool, logger *slog.Logger) *Runner {
	if bin == "" {
		bin = "gogcli"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		bin:            bin,
		defaultAccount: defaultAccount,
		timeout:        timeout,
		usePTY:         usePTY,
		logger:         logger,
	}
}

// Timeout returns the per-invocation timeout.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Bin returns the configured gogcli binary name or path.
func (r *Runner) Bin() string {
	return r.bin
}

// Available reports whether the gogcli binary can be found on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

// Run executes cmd for the given account (falling back to the runner's
// default account) and classifies the outcome. It never returns a Go error:
// every failure mode is folded into the Result so callers can pass it
// through to the MCP client unchanged.
func (r *Runner) Run(ctx context.Context, cmd Command, account string) Result {
	if account == "" {
		account = r.defaultAccount
	}
	argv := cmd.argv(r.bin, account)

	if _, err := exec.LookPath(r.bin); err != nil {
		return Result{Success: false, Error: installHint}
	}

	ctx, span := instrumentation.StartCLISpan(ctx, cmd.Service, cmd.Action)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	logger := logging.WithService(r.logger, cmd.Service)
	logger.Debug("running gogcli",
		logging.Operation(cmd.Action),
		slog.Bool("pty", r.usePTY))

	var res Result
	if r.usePTY {
		res = r.runPTY(ctx, argv)
	} else {
		res = r.runPlain(ctx, argv)
	}

	if res.Success {
		instrumentation.SetSpanSuccess(span)
	} else {
		instrumentation.SetSpanError(span, errors.New(res.Error))
		logger.Debug("gogcli failed",
			logging.Operation(cmd.Action),
			slog.String("error", res.Error))
	}
	return res
}

// RunVersion reports the installed gogcli version with a short timeout.
func (r *Runner) RunVersion(ctx context.Context) Result {
	short := &Runner{
		bin:     r.bin,
		timeout: 10 * time.Second,
		usePTY:  false,
		logger:  r.logger,
	}
	return short.Run(ctx, Version(), "")
}

// runPlain executes argv with captured pipes, no terminal involved.
func (r *Runner) runPlain(ctx context.Context, argv []string) Result {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return r.timeoutResult()
	}

	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	if err != nil {
		msg := errOut
		if msg == "" {
			msg = out
		}
		return Result{
			Success:    false,
			Error:      msg,
			ReturnCode: cmd.ProcessState.ExitCode(),
		}
	}

	return Result{Success: true, Output: out, Stderr: errOut}
}

// runPTY executes argv under a pseudo-terminal so the keyring believes it is
// talking to an interactive user. The passphrase prompt is answered once;
// all other output is forwarded verbatim. stdout and stderr arrive merged,
// which matches how gogcli behaves on a real terminal.
func (r *Runner) runPTY(ctx context.Context, argv []string) Result {
	cmd := exec.Command(argv[0], argv[1:]...)

	f, err := pty.Start(cmd)
	if err != nil {
		// No pty available (containers without devpts, for one). Run
		// without automation rather than failing the call.
		r.logger.Debug("pty unavailable, running without keyring automation",
			logging.Err(err))
		return r.runPlain(ctx, argv)
	}
	defer f.Close()

	var out bytes.Buffer
	copyDone := make(chan error, 1)
	go func() {
		_, cerr := forwardAnsweringPassphrase(f, f, &out)
		copyDone <- cerr
	}()

	procDone := make(chan error, 1)
	go func() {
		procDone <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-procDone
		<-copyDone
		return r.timeoutResult()
	case werr := <-procDone:
		<-copyDone
		output := strings.TrimSpace(out.String())
		if werr != nil {
			return Result{
				Success:    false,
				Error:      output,
				ReturnCode: cmd.ProcessState.ExitCode(),
			}
		}
		return Result{Success: true, Output: output}
	}
}

func (r *Runner) timeoutResult() Result {
	return Result{
		Success: false,
		Error:   fmt.Sprintf("command timed out after %d seconds", int(r.timeout.Seconds())),
	}
}
