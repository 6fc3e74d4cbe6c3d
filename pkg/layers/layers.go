// Copyright (c) 2025 osm2dxf authors
// Licensed under the MIT License

// Package layers maps OSM tags onto styled DXF layers.
package layers

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/osmcad/osm2dxf/pkg/osm"
)

// Style describes the target layer for a classified feature.
type Style struct {
	Layer      string
	Color      int
	Lineweight int
}

// Plan selects how much detail the output drawing carries.
type Plan string

const (
	// KeyPlan is the simplified variant: footways and paths are excluded.
	KeyPlan Plan = "key-plan"
	// LocationPlan is the detailed variant with the full rule table.
	LocationPlan Plan = "location-plan"
)

// ParsePlan maps a CLI plan-type value onto a Plan.
func ParsePlan(s string) (Plan, error) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case KeyPlan:
		return KeyPlan, nil
	case LocationPlan:
		return LocationPlan, nil
	}
	return "", errors.Errorf("unknown plan type %q (expected %q or %q)", s, KeyPlan, LocationPlan)
}

// ruleKeys fixes the evaluation order; the first key present on a feature wins.
var ruleKeys = []string{"highway", "building", "waterway", "natural", "amenity", "landuse"}

// Mapper classifies features by their tags. Each Mapper builds its own rule
// table at construction and never modifies it afterwards, so instances with
// different plan variants do not interfere.
type Mapper struct {
	plan      Plan
	useColors bool
	rules     map[string]map[string]Style
}

// NewMapper builds a classifier for the given plan variant. In monochrome
// mode (useColors false) every returned style carries ColorWhite.
func NewMapper(plan Plan, useColors bool) *Mapper {
	rules := map[string]map[string]Style{
		"highway": {
			"motorway":    {Layer: "HIGHWAY_MOTORWAY", Color: ColorRed, Lineweight: 100},
			"trunk":       {Layer: "HIGHWAY_TRUNK", Color: ColorRed, Lineweight: 80},
			"primary":     {Layer: "HIGHWAY_PRIMARY", Color: ColorYellow, Lineweight: 60},
			"secondary":   {Layer: "HIGHWAY_SECONDARY", Color: ColorCyan, Lineweight: 40},
			"tertiary":    {Layer: "HIGHWAY_TERTIARY", Color: ColorGreen, Lineweight: 30},
			"residential": {Layer: "HIGHWAY_RESIDENTIAL", Color: ColorWhite, Lineweight: 20},
			"service":     {Layer: "HIGHWAY_SERVICE", Color: ColorGray, Lineweight: 10},
			"footway":     {Layer: "HIGHWAY_FOOTWAY", Color: ColorMagenta, Lineweight: 5},
			"cycleway":    {Layer: "HIGHWAY_CYCLEWAY", Color: ColorBlue, Lineweight: 5},
			"path":        {Layer: "HIGHWAY_PATH", Color: ColorGreen, Lineweight: 5},
		},
		"building": {
			DefaultRule: {Layer: "BUILDING", Color: ColorGray, Lineweight: 25},
		},
		"waterway": {
			"river":  {Layer: "WATERWAY_RIVER", Color: ColorBlue, Lineweight: 50},
			"stream": {Layer: "WATERWAY_STREAM", Color: ColorBlue, Lineweight: 20},
			"canal":  {Layer: "WATERWAY_CANAL", Color: ColorBlue, Lineweight: 30},
			"drain":  {Layer: "WATERWAY_DRAIN", Color: ColorCyan, Lineweight: 10},
		},
		"natural": {
			"water":     {Layer: "NATURAL_WATER", Color: ColorBlue, Lineweight: 25},
			"coastline": {Layer: "NATURAL_COASTLINE", Color: ColorBlue, Lineweight: 50},
			"tree":      {Layer: "NATURAL_TREE", Color: ColorGreen, Lineweight: 5},
			"forest":    {Layer: "NATURAL_FOREST", Color: ColorGreen, Lineweight: 25},
		},
		"amenity": {
			DefaultRule: {Layer: "AMENITY", Color: ColorMagenta, Lineweight: 15},
		},
		"landuse": {
			DefaultRule: {Layer: "LANDUSE", Color: ColorYellow, Lineweight: 15},
		},
	}

	// The simplified key plan drops footpath styling; such ways fall through
	// to the synthesized fallback, and the assembler additionally skips them.
	if plan == KeyPlan {
		delete(rules["highway"], "footway")
		delete(rules["highway"], "path")
	}

	return &Mapper{plan: plan, useColors: useColors, rules: rules}
}

// Plan returns the plan variant the mapper was built for.
func (m *Mapper) Plan() Plan {
	return m.plan
}

// Classify resolves a feature's tags to a layer style. Lookup order per key:
// explicit value entry, then the key's default entry, then a synthesized
// "{KEY}_OTHER" style. Features with no recognized key land on MISC.
// Classification always succeeds.
func (m *Mapper) Classify(tags osm.Tags) Style {
	for _, key := range ruleKeys {
		value, ok := tags[key]
		if !ok {
			continue
		}

		category := m.rules[key]
		style, ok := category[value]
		if !ok {
			style, ok = category[DefaultRule]
			if !ok {
				style = Style{
					Layer:      strings.ToUpper(key) + OtherLayerSuffix,
					Color:      ColorWhite,
					Lineweight: FallbackLineweight,
				}
			}
		}
		return m.applyColorMode(style)
	}

	misc := Style{Layer: LayerMisc, Color: ColorGray, Lineweight: MiscLineweight}
	return m.applyColorMode(misc)
}

// applyColorMode forces the neutral color as the final step in monochrome mode.
func (m *Mapper) applyColorMode(s Style) Style {
	if !m.useColors {
		s.Color = ColorWhite
	}
	return s
}
