package commands

import (
	"fmt"

	"github.com/punchlinehub/sitecontent/internal/config"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	_, _ = fmt.Fprintf(g.stdout(), "Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "initialization failed").
			WithContext("path", root.Config).
			Build()
	}
	_, _ = fmt.Fprintln(g.stdout(), "initialized successfully")
	return nil
}
