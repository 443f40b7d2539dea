// Package profile starts optional runtime profiling for jsxc.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof -o jsxc .
//	jsxc --pprof-mode cpu --pprof-dir ./profiles transform big.jsx
//
// Without the tag, [Profiler.Start] returns a no-op handle and [Modes]
// returns an empty list. With it, profiles are written by
// [github.com/pkg/profile] to the configured directory, and the
// [net/http/pprof] handlers are registered on the default mux.
//
// Inspect the output with the standard tooling:
//
//	go tool pprof -http=: ./profiles/cpu.pprof
package profile
