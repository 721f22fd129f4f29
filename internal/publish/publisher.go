package publish

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/quickpost/publisher/internal/github"
	"github.com/quickpost/publisher/pkg/logger"
	"github.com/quickpost/publisher/pkg/metrics"
)

// Committer writes one file to the remote repository.
type Committer interface {
	CreateFile(ctx context.Context, path, content string) (*github.CommitResult, error)
}

// Record describes a completed publication. It is handed to hooks.
type Record struct {
	Submission  Submission
	Layout      Layout
	Commits     []*github.CommitResult
	Contents    map[string]string // path -> rendered file
	PublishedAt time.Time
}

// Hook runs after every file of a submission has been committed.
// Hook errors are logged and never change the outcome. Each hook gets its own
// context bounded by Options.HookTimeout that is not cancelled with the request.
type Hook interface {
	Name() string
	AfterCommit(ctx context.Context, rec *Record) error
}

// Kind tags an Outcome.
type Kind int

const (
	KindOK Kind = iota
	KindInvalid
	KindRemoteFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindInvalid:
		return "invalid"
	case KindRemoteFailure:
		return "remote_failure"
	}
	return "unknown"
}

// Outcome is the result of one Publish call. Path and Files are set only for
// KindOK; Detail and Err only for failures.
type Outcome struct {
	Kind   Kind
	Path   string
	Files  []string
	Detail string
	Err    error
}

// Options configures a Publisher.
type Options struct {
	Scheme        Scheme
	TZOffset      time.Duration
	WriteMarkdown bool
	Render        RenderOptions
	Hooks         []Hook

	// HookTimeout bounds each hook; defaults to DefaultHookTimeout.
	HookTimeout time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultHookTimeout bounds a post-commit hook when Options.HookTimeout is unset.
const DefaultHookTimeout = 5 * time.Second

// Publisher runs the validate, layout, render, commit pipeline.
type Publisher struct {
	committer Committer
	opts      Options
}

func New(c Committer, opts Options) *Publisher {
	if opts.Scheme == "" {
		opts.Scheme = SchemeDated
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HookTimeout <= 0 {
		opts.HookTimeout = DefaultHookTimeout
	}
	return &Publisher{committer: c, opts: opts}
}

// Plan returns the layout a submission with title would get right now.
func (p *Publisher) Plan(title string) Layout {
	return BuildLayout(p.opts.Scheme, NewStamp(p.opts.Now(), p.opts.TZOffset), strings.TrimSpace(title), p.opts.WriteMarkdown)
}

// Publish validates and commits one submission. The committer is not called
// for an invalid submission; the first failed commit ends the run.
func (p *Publisher) Publish(ctx context.Context, title, content string) Outcome {
	out := p.publish(ctx, title, content)
	metrics.Publishes.WithLabelValues(out.Kind.String()).Inc()
	return out
}

func (p *Publisher) publish(ctx context.Context, title, content string) Outcome {
	sub, err := NewSubmission(title, content)
	if err != nil {
		return Outcome{Kind: KindInvalid, Detail: err.Error(), Err: err}
	}

	now := p.opts.Now()
	layout := BuildLayout(p.opts.Scheme, NewStamp(now, p.opts.TZOffset), sub.Title, p.opts.WriteMarkdown)
	contents := map[string]string{layout.HTMLPath: RenderHTML(sub, p.opts.Render)}
	if layout.MarkdownPath != "" {
		contents[layout.MarkdownPath] = RenderMarkdown(sub)
	}

	rec := &Record{Submission: sub, Layout: layout, Contents: contents, PublishedAt: now}
	for _, path := range layout.Files() {
		logger.Infof("publish: committing %s", path)
		res, err := p.committer.CreateFile(ctx, path, contents[path])
		if err != nil {
			var rwe *github.RemoteWriteError
			if errors.As(err, &rwe) && rwe.IsConflict() {
				logger.Warnf("publish: %s already exists in the repository", path)
			}
			logger.Errorf("publish: commit %s failed: %v", path, err)
			return Outcome{Kind: KindRemoteFailure, Detail: err.Error(), Err: err}
		}
		rec.Commits = append(rec.Commits, res)
	}
	logger.Infof("publish: %s committed (%d file(s))", layout.HTMLPath, len(rec.Commits))

	// the commit has landed: a client disconnect must not drop the hooks
	hookCtx := context.WithoutCancel(ctx)
	for _, h := range p.opts.Hooks {
		if err := p.runHook(hookCtx, h, rec); err != nil {
			metrics.HookFailures.WithLabelValues(h.Name()).Inc()
			logger.Warnf("publish: %s hook failed for %s: %v", h.Name(), layout.HTMLPath, err)
		}
	}

	return Outcome{Kind: KindOK, Path: layout.HTMLPath, Files: layout.Files()}
}

func (p *Publisher) runHook(ctx context.Context, h Hook, rec *Record) error {
	ctx, cancel := context.WithTimeout(ctx, p.opts.HookTimeout)
	defer cancel()
	return h.AfterCommit(ctx, rec)
}
