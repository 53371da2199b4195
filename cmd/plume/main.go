/*
plume is a companion CLI for a statically generated blog.

Usage:

	plume <command> [arguments]

Commands:

	plume triangle [rows]      Print rows of Pascal's triangle
	plume site show            Print the effective site settings
	plume site check           Validate plume.yml
	plume site init            Write a default plume.yml
	plume cdn invalidate       Invalidate the CDN cache after publishing
	plume cdn status <id>      Show the status of an invalidation

See 'plume help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/simonhull/plume/internal/commands"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(commands.Execute(version))
}
