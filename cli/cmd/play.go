package cmd

import (
	"context"

	"github.com/ardnew/jsxc/cli/cmd/play"
	"github.com/ardnew/jsxc/log"
)

// Play opens an interactive editor that renders a fragment as it is typed.
type Play struct {
	Source string `arg:"" help:"Initial fragment file" name:"source" optional:"" type:"existingfile"`
}

// Run executes the play command.
func (p *Play) Run(ctx context.Context) error {
	var text string

	if p.Source != "" {
		srcs, err := sources([]string{p.Source})
		if err != nil {
			return err
		}

		data, err := srcs[0].read()
		if err != nil {
			return err
		}

		text = string(data)
	}

	return play.Run(ctx, text, kongVar(ctx, CacheIdentifier), log.Default(), optionsFrom(ctx)...)
}
