package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TileStats counts the work done for one tile
type TileStats struct {
	Pixels  int
	Samples int // Primary rays traced
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scene         string
	Width, Height int
	Antialias     bool
	Workers       int
	Tiles         int
	TotalPixels   int
	TotalSamples  int
	PrimaryRays   int64
	SecondaryRays int64
	ShadowRays    int64
	MaxStep       int // Deepest recursion step that found a surface
	MaxSteps      int // Configured step limit
	AvgLuminance  float64
	Duration      time.Duration
}

// RaysPerSecond returns the rate of all rays traced
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	total := s.PrimaryRays + s.SecondaryRays + s.ShadowRays
	return float64(total) / s.Duration.Seconds()
}

// Table renders the statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Category", "Stat", "Value"})
	table.Append([]string{"Image", "Scene", s.Scene})
	table.Append([]string{"", "Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"", "Antialiasing", fmt.Sprintf("%t", s.Antialias)})
	table.Append([]string{"", "Avg. luminance", fmt.Sprintf("%.4f", s.AvgLuminance)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Work", "Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"", "Tiles", fmt.Sprintf("%d", s.Tiles)})
	table.Append([]string{"", "Pixels", fmt.Sprintf("%d", s.TotalPixels)})
	table.Append([]string{"", "Samples", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Rays", "Primary", fmt.Sprintf("%d", s.PrimaryRays)})
	table.Append([]string{"", "Secondary", fmt.Sprintf("%d", s.SecondaryRays)})
	table.Append([]string{"", "Shadow", fmt.Sprintf("%d", s.ShadowRays)})
	table.Append([]string{"", "Max step", fmt.Sprintf("%d / %d", s.MaxStep, s.MaxSteps)})
	table.SetFooter([]string{"Time", s.Duration.Round(time.Millisecond).String(), fmt.Sprintf("%.0f rays/s", s.RaysPerSecond())})

	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of the image
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(pixels)
}
