//go:build pprof

package profile

import "github.com/pkg/profile"

// option appends settings to a profiler session.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func collect(opts ...option) []func(*profile.Profile) {
	var settings []func(*profile.Profile)

	for _, opt := range opts {
		settings = opt(settings)
	}

	return settings
}

func withMode(m string) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if fn, ok := mode[m]; ok {
			s = append(s, fn)
		}

		return s
	}
}

func withPath(p string) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if p != "" {
			s = append(s, profile.ProfilePath(p))
		}

		return s
	}
}

func withQuiet(v bool) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if v {
			s = append(s, profile.Quiet)
		}

		return s
	}
}

func withoutShutdownHook() option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		return append(s, profile.NoShutdownHook)
	}
}
