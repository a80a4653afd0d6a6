// Package executor runs one submitted task end to end: translate VTA to
// C++ (internal/pipeline), compile it with an external C++ compiler, run
// the produced binary, and record the outcome in an internal/task.Store.
// Concurrency is bounded by a weighted semaphore gating task admission.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/vta-lang/vta/internal/codegen"
	"github.com/vta-lang/vta/internal/config"
	"github.com/vta-lang/vta/internal/logging"
	"github.com/vta-lang/vta/internal/pipeline"
	"github.com/vta-lang/vta/internal/task"
)

// Pool runs tasks from a bounded worker capacity, each in its own isolated
// worker goroutine. Each task additionally has an independent wall-clock
// watchdog.
type Pool struct {
	cfg   *config.ServerConfig
	sem   *semaphore.Weighted
	tasks *task.Store
	log   *slog.Logger
	emit  *codegen.Emitter
}

// New builds a Pool with the given configuration, task store, and logger.
func New(cfg *config.ServerConfig, tasks *task.Store, log *slog.Logger) *Pool {
	if log == nil {
		log = logging.Discard()
	}
	return &Pool{
		cfg:   cfg,
		sem:   semaphore.NewWeighted(cfg.WorkerCapacity),
		tasks: tasks,
		log:   log,
		emit:  codegen.New(),
	}
}

// Submit registers a new task and runs it asynchronously, respecting the
// pool's capacity: Submit returns at once, and if every worker slot is busy
// the task's own goroutine waits on the semaphore before starting.
func (p *Pool) Submit(source, stdin string) *task.Task {
	t := p.tasks.Submit()
	go p.run(t, source, stdin)
	return t
}

func (p *Pool) run(t *task.Task, source, stdin string) {
	log := logging.WithTaskID(p.log, t.ID)
	log.Info("task accepted")

	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		p.tasks.Fail(t.ID, fmt.Sprintf("worker pool: %v", err))
		return
	}
	defer p.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.TaskTimeout)
	defer cancel()

	start := time.Now()
	log.Info("task started")

	stdout, err := p.execute(ctx, t.ID, source, stdin)
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		// The watchdog marks the task timed out without interrupting the
		// worker cleanly; it may run to completion but its result is
		// discarded.
		p.tasks.Fail(t.ID, "Task was killed by timeout")
		log.Warn("task timed out", slog.String("elapsed", logging.Elapsed(elapsed)))
		return
	}
	if err != nil {
		p.tasks.Fail(t.ID, err.Error())
		log.Info("task finished", slog.String("outcome", "error"), slog.String("elapsed", logging.Elapsed(elapsed)))
		return
	}
	p.tasks.Complete(t.ID, stdout)
	log.Info("task finished", slog.String("outcome", "done"), slog.String("elapsed", logging.Elapsed(elapsed)))
}

// execute translates source to C++, compiles it, and runs the resulting
// binary, returning its stdout.
func (p *Pool) execute(ctx context.Context, taskID, source, stdin string) (string, error) {
	ctx2, err := pipeline.Translate(p.emit, source, stdin)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.cfg.TasksDir, 0o755); err != nil {
		return "", fmt.Errorf("creating tasks dir: %w", err)
	}

	cppPath := filepath.Join(p.cfg.TasksDir, taskID+".cpp")
	binPath := filepath.Join(p.cfg.TasksDir, taskID)

	if err := os.WriteFile(cppPath, []byte(ctx2.Output), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", cppPath, err)
	}

	compileCtx, cancel := context.WithTimeout(ctx, p.cfg.CompileTimeout)
	defer cancel()

	depthFlag := fmt.Sprintf("-ftemplate-depth=%d", p.cfg.TemplateDepth)
	compile := exec.CommandContext(compileCtx, p.cfg.CompilerPath, depthFlag, "-std=c++17", "-o", binPath, cppPath)
	var stderr bytes.Buffer
	compile.Stderr = &stderr
	if err := compile.Run(); err != nil {
		if stderr.Len() == 0 {
			return "", fmt.Errorf("compile failed: %v", err)
		}
		return "", errors.New(stderr.String())
	}

	runCmd := exec.CommandContext(ctx, binPath)
	var stdout bytes.Buffer
	runCmd.Stdout = &stdout
	var runStderr bytes.Buffer
	runCmd.Stderr = &runStderr
	if err := runCmd.Run(); err != nil {
		return "", fmt.Errorf("program run failed: %s", runStderr.String())
	}

	return stdout.String(), nil
}
