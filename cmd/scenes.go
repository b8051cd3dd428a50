package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/rfoley/glimmer/pkg/scene"
)

// ListScenes prints the registered scenes as a table.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Description"})

	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}

	table.Render()
	return nil
}
