package main

import (
	"github.com/alecthomas/kong"

	"github.com/punchlinehub/sitecontent/cmd/sitecontent/commands"
	"github.com/punchlinehub/sitecontent/internal/foundation/errors"
	"github.com/punchlinehub/sitecontent/internal/version"
)

func main() {
	var cli commands.CLI
	global := &commands.Global{}

	ctx := kong.Parse(&cli,
		kong.Name("sitecontent"),
		kong.Description("Builds typed content collections from markdown files with frontmatter."),
		kong.UsageOnError(),
		kong.Bind(global),
		kong.Vars{"version": version.String()},
	)

	if err := ctx.Run(&cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
