package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/RecipeBook/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("RecipeBook"), kong.Description("RecipeBook is a recipe sharing site."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
