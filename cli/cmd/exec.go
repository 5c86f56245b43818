package cmd

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"os/signal"
	"slices"
	"syscall"

	"github.com/ardnew/denv/dotenv"
	"github.com/ardnew/denv/lang"
	"github.com/ardnew/denv/log"
)

// Exit terminates the process with the given status code.
type Exit func(code int)

// Exec runs a command with the dotenv variables installed in its
// environment.
type Exec struct {
	Command []string `arg:"" help:"Command and arguments to run. With --file -, its stdin is empty." optional:"" passthrough:""`
}

// Run executes the exec command.
//
// A command that exits with a non-zero status does not produce an error;
// its status is passed to exit instead.
//
// The command inherits stdin unless the dotenv file was read from stdin;
// then the command reads from the null device.
func (e *Exec) Run(ctx context.Context, exit Exit) error {
	if len(e.Command) == 0 {
		return ErrNoCommand
	}

	env, err := e.environ(ctx)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, e.Command[0], e.Command[1:]...)
	cmd.Env = env
	if sourceFrom(ctx).File != stdinSource {
		cmd.Stdin = os.Stdin
	}

	cmd.Stdout = stdout(ctx)
	cmd.Stderr = stderr(ctx)

	err = cmd.Start()
	if err != nil {
		return ErrExec.Wrap(err).With(slog.String("command", e.Command[0]))
	}

	stop := forwardSignals(cmd.Process)
	err = cmd.Wait()

	stop()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.DebugContext(ctx, "command exited",
			slog.String("command", e.Command[0]),
			slog.Int("status", exitErr.ExitCode()),
		)

		if exit != nil {
			exit(exitErr.ExitCode())
		}

		return nil
	}

	if err != nil {
		return ErrExec.Wrap(err).With(slog.String("command", e.Command[0]))
	}

	return nil
}

// environ returns the process environment with the dotenv variables
// installed according to the selected policy.
func (e *Exec) environ(ctx context.Context) ([]string, error) {
	src := sourceFrom(ctx)
	env := lang.EnvironEnv(os.Environ())

	ns, _, err := src.read(ctx, dotenv.WithEnvironment(env))
	if err != nil {
		return nil, err
	}

	_, err = dotenv.Install(ctx, ns, src.options(
		dotenv.WithEnvironment(env),
		dotenv.WithSetenv(func(key, value string) error {
			env[key] = value

			return nil
		}),
	)...)
	if err != nil {
		return nil, err
	}

	environ := make([]string, 0, len(env))
	for _, key := range slices.Sorted(maps.Keys(env)) {
		environ = append(environ, key+"="+env[key])
	}

	return environ, nil
}

// forwardSignals relays interrupt and termination signals to proc until
// the returned function is called.
func forwardSignals(proc *os.Process) (stop func()) {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		for {
			select {
			case s := <-sig:
				_ = proc.Signal(s)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
