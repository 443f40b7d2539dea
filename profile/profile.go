package profile

import "log/slog"

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Profiler describes one profiling session.
type Profiler struct {
	// Mode names the profile to collect; see [Modes].
	Mode string
	// Path is the output directory. Empty selects the working directory.
	Path string
	// Quiet suppresses the profiler's own start and stop messages.
	Quiet bool
}

// Start begins profiling. Both Start and the returned Stop are always safe to
// call: without the pprof build tag, or when Mode is empty or unknown, the
// session does nothing.
func (p Profiler) Start() Stopper {
	if p.Mode == "" || !Enabled {
		return ignore{}
	}

	return start(p)
}

// LogValue implements [slog.LogValuer].
func (p Profiler) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", p.Mode),
		slog.String("path", p.Path),
		slog.Bool("quiet", p.Quiet),
	)
}

type ignore struct{}

func (ignore) Stop() {}
