// Package operations implements recursive copy, delete, move, create and
// rename over a single file or directory tree.
//
// Every operation returns a domain.Result instead of an error. I/O failures
// are logged at error level through the injected logger; pre-condition
// failures (an entry already exists, an invalid name) are returned silently.
// Nothing is atomic: a directory copy that fails partway leaves a partially
// populated target.
package operations

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"fsops/internal/domain"
	fserrors "fsops/internal/errors"
	"fsops/internal/logging"
)

// Operation names as they appear in results and log records.
const (
	OpCopy            = "copy"
	OpDelete          = "delete"
	OpDeleteDirectory = "delete_directory"
	OpMove            = "move"
	OpCreateFile      = "create_file"
	OpCreateDirectory = "create_directory"
	OpRename          = "rename"
)

const (
	// DefaultMaxDepth bounds directory recursion for copy and delete.
	DefaultMaxDepth = 64

	defaultFilePerm os.FileMode = 0o644
	defaultDirPerm  os.FileMode = 0o755
)

// Manager performs file system operations through an injected adapter.
type Manager struct {
	fs       domain.FileSystemAdapter
	logger   *slog.Logger
	maxDepth int
	limiter  *rate.Limiter
	filePerm os.FileMode
	dirPerm  os.FileMode
	exclude  domain.EntryFilter
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithMaxDepth sets the recursion limit. Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(m *Manager) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithRateLimit throttles file system mutations to opsPerSecond.
// Non-positive values disable throttling.
func WithRateLimit(opsPerSecond float64) Option {
	return func(m *Manager) {
		if opsPerSecond <= 0 {
			m.limiter = nil
			return
		}
		m.limiter = rate.NewLimiter(rate.Limit(opsPerSecond), 1)
	}
}

// WithFilePerm sets the mode used for files the manager creates.
func WithFilePerm(perm os.FileMode) Option {
	return func(m *Manager) {
		m.filePerm = perm
	}
}

// WithDirPerm sets the mode used for directories the manager creates.
func WithDirPerm(perm os.FileMode) Option {
	return func(m *Manager) {
		m.dirPerm = perm
	}
}

// WithExcludeFilter skips entries whose name matches f when copying a
// directory. The skipped names are not expected in the target.
func WithExcludeFilter(f domain.EntryFilter) Option {
	return func(m *Manager) {
		m.exclude = f
	}
}

// NewManager creates a new operations manager.
func NewManager(fs domain.FileSystemAdapter, logger *slog.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = logging.NewTestLogger()
	}

	m := &Manager{
		fs:       fs,
		logger:   logger,
		maxDepth: DefaultMaxDepth,
		filePerm: defaultFilePerm,
		dirPerm:  defaultDirPerm,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MaxDepth returns the configured recursion limit.
func (m *Manager) MaxDepth() int {
	return m.maxDepth
}

func (m *Manager) begin(op, path, target string) *logging.Logger {
	return logging.Wrap(m.logger).
		WithOperation(op, uuid.NewString()).
		WithPaths(path, target)
}

// finish logs the outcome of a public operation and returns it unchanged.
func (m *Manager) finish(ctx context.Context, log *logging.Logger, res domain.Result) domain.Result {
	switch kind := res.Kind(); {
	case res.OK():
		log.DebugContext(ctx, "operation succeeded")
	case fserrors.IsPrecondition(res.Err):
		// returned without logging
	case kind == fserrors.KindNotFound && (res.Op == OpDelete || res.Op == OpDeleteDirectory):
		log.DebugContext(ctx, "nothing to delete", "error", res.Err)
	default:
		if multi, ok := res.Err.(*fserrors.MultiError); ok {
			for _, err := range multi.Errors {
				log.WarnContext(ctx, "entry failed", "kind", fserrors.KindOf(err).String(), "error", err)
			}
		}
		log.ErrorContext(ctx, "operation failed", "kind", kind.String(), "error", res.Err)
	}
	return res
}

// wait blocks on the throttle, if any, before a mutation.
func (m *Manager) wait(ctx context.Context, op, path string) error {
	if m.limiter == nil {
		return nil
	}
	if err := m.limiter.Wait(ctx); err != nil {
		return fserrors.New(op, path, fserrors.KindCanceled, err)
	}
	return nil
}

func (m *Manager) exists(path string) bool {
	_, err := m.fs.Lstat(path)
	return err == nil
}

// samePath reports whether a and b resolve to the same location.
func (m *Manager) samePath(a, b string) bool {
	realA, err := m.fs.RealPath(a)
	if err != nil {
		return false
	}
	realB, err := m.fs.RealPath(b)
	if err != nil {
		return false
	}
	return realA == realB
}

// appendFailure flattens nested multi-errors so a tree operation reports
// one list of leaf failures.
func appendFailure(errs []error, err error) []error {
	if multi, ok := err.(*fserrors.MultiError); ok {
		return append(errs, multi.Errors...)
	}
	return append(errs, err)
}

var _ domain.Operations = (*Manager)(nil)
