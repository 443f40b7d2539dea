//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of jsxc embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help text and names the
	// configuration and cache directories.
	Name = "jsxc"
	// Description is a one-line summary used in help output.
	Description = "Markup fragment compiler for script source"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
