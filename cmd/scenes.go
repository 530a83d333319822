package cmd

import (
	"bytes"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes and the YAML scenes in the scenes directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListScenes(ctx.String("scenes-dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.DisplayName, info.Type, info.Description})
	}
	table.Render()

	_, err = ctx.App.Writer.Write(buf.Bytes())
	return err
}
