// Copyright (c) 2025 osm2dxf authors
// Licensed under the MIT License

// Command osm2dxf converts OpenStreetMap data to AutoCAD DXF format with
// layer organization suitable for key plan and location plan drawings.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/osmcad/osm2dxf/pkg/drawing"
	"github.com/osmcad/osm2dxf/pkg/layers"
	"github.com/osmcad/osm2dxf/pkg/osm"
	"github.com/osmcad/osm2dxf/pkg/project"
)

const (
	dxfExtension  = ".dxf"
	statsFilePerm = 0600
)

// Stats summarizes a conversion run for --stats-output.
type Stats struct {
	Nodes         int    `json:"nodes"`
	Ways          int    `json:"ways"`
	Relations     int    `json:"relations"`
	Layers        int    `json:"layers"`
	FileSize      int64  `json:"file_size"`
	PlanType      string `json:"plan_type"`
	Projection    string `json:"projection"`
	ColorsEnabled bool   `json:"colors_enabled"`
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	app := &cli.App{
		Name:      "osm2dxf",
		Usage:     "convert OpenStreetMap data to DXF format",
		ArgsUsage: "<input file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output DXF file path (default: input path with .dxf extension)"},
			&cli.StringFlag{Name: "projection", Value: project.DefaultCRS, Usage: "target projection"},
			&cli.StringFlag{Name: "plan-type", Value: string(layers.KeyPlan), Usage: "key-plan (simplified) or location-plan (detailed)"},
			&cli.BoolFlag{Name: "no-colors", Usage: "disable colors (monochrome output)"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable verbose logging"},
			&cli.StringFlag{Name: "stats-output", Usage: "output file for conversion statistics (JSON)"},
		},
		Action: func(c *cli.Context) error {
			return run(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "conversion failed", "err", err)
		os.Exit(1)
	}
}

func run(c *cli.Context, logger log.Logger) error {
	if c.NArg() != 1 {
		return errors.New("exactly one input file is required")
	}
	input := c.Args().First()

	if c.Bool("verbose") {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	if _, err := os.Stat(input); err != nil {
		return errors.Wrap(err, "input file not found")
	}

	output := c.String("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + dxfExtension
	}

	plan, err := layers.ParsePlan(c.String("plan-type"))
	if err != nil {
		return err
	}
	useColors := !c.Bool("no-colors")

	level.Info(logger).Log("msg", "starting OSM to DXF conversion",
		"input", input,
		"output", output,
		"plan", plan,
		"projection", c.String("projection"),
		"colors", useColors)

	transformer, err := project.NewTransformer(c.String("projection"))
	if err != nil {
		return err
	}

	level.Info(logger).Log("msg", "parsing OSM data")
	data, err := osm.ReadFile(input)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "parsed OSM data",
		"nodes", len(data.Nodes),
		"ways", len(data.Ways),
		"relations", len(data.Relations))

	level.Info(logger).Log("msg", "generating DXF")
	writer := drawing.NewDXFWriter()
	gen := drawing.NewGenerator(layers.NewMapper(plan, useColors), transformer, writer, plan)

	if err := gen.ProcessNodes(data.Nodes); err != nil {
		return err
	}
	gen.ProcessWays(data.Ways, data.Nodes)

	if err := writer.Save(output); err != nil {
		return err
	}

	info, err := os.Stat(output)
	if err != nil {
		return errors.Wrap(err, "stat output file")
	}
	level.Info(logger).Log("msg", "DXF file saved",
		"path", output,
		"layers", gen.LayerCount(),
		"bytes", info.Size())

	if statsPath := c.String("stats-output"); statsPath != "" {
		stats := Stats{
			Nodes:         len(data.Nodes),
			Ways:          len(data.Ways),
			Relations:     len(data.Relations),
			Layers:        gen.LayerCount(),
			FileSize:      info.Size(),
			PlanType:      string(plan),
			Projection:    c.String("projection"),
			ColorsEnabled: useColors,
		}
		if err := writeStats(statsPath, stats); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "statistics saved", "path", statsPath)
	}

	level.Debug(logger).Log("msg", "conversion completed")
	return nil
}

func writeStats(path string, stats Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal statistics")
	}
	if err := os.WriteFile(path, data, statsFilePerm); err != nil {
		return errors.Wrap(err, "write statistics")
	}
	return nil
}
