// Copyright (c) 2025 osm2dxf authors
// Licensed under the MIT License

// Package drawing assembles classified OSM features into DXF entities.
package drawing

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/osmcad/osm2dxf/pkg/layers"
	"github.com/osmcad/osm2dxf/pkg/osm"
)

// Projector converts a geodetic longitude/latitude pair to planar coordinates.
type Projector interface {
	Project(lon, lat float64) (float64, float64, error)
}

// pointInterestKeys marks nodes worth drawing; nodes tagged with any of
// these get a circle marker.
var pointInterestKeys = []string{"amenity", "shop", "tourism", "highway"}

// markerRadius is the circle radius for point features, in drawing units.
const markerRadius = 5.0

const minWayCoords = 2

// Generator orchestrates projection, classification and entity emission for
// one conversion run. It makes a single pass over all nodes, then all ways.
type Generator struct {
	mapper  *layers.Mapper
	proj    Projector
	writer  DocumentWriter
	plan    layers.Plan
	created map[string]struct{}
}

// NewGenerator wires the classifier, projector and document writer together.
func NewGenerator(mapper *layers.Mapper, proj Projector, writer DocumentWriter, plan layers.Plan) *Generator {
	return &Generator{
		mapper:  mapper,
		proj:    proj,
		writer:  writer,
		plan:    plan,
		created: make(map[string]struct{}),
	}
}

// LayerCount returns the number of distinct layers created so far.
func (g *Generator) LayerCount() int {
	return len(g.created)
}

// ensureLayer creates the style's layer on first use; later calls with the
// same name are no-ops.
func (g *Generator) ensureLayer(style layers.Style) {
	if _, ok := g.created[style.Layer]; ok {
		return
	}
	g.writer.CreateLayer(style.Layer, style.Color, style.Lineweight)
	g.created[style.Layer] = struct{}{}
}

// ProcessNodes projects every node in place and draws a marker for nodes
// carrying at least one point-of-interest key. Nodes without such tags are
// still projected so that ways can resolve them later.
func (g *Generator) ProcessNodes(nodes map[int64]*osm.Node) error {
	for _, node := range nodes {
		x, y, err := g.proj.Project(node.Point.Lon(), node.Point.Lat())
		if err != nil {
			return errors.Wrapf(err, "node %d", node.ID)
		}
		node.X, node.Y = x, y

		if !node.Tags.HasAny(pointInterestKeys...) {
			continue
		}
		style := g.mapper.Classify(node.Tags)
		g.ensureLayer(style)
		g.writer.AddCircle(orb.Point{node.X, node.Y}, markerRadius, style.Layer)
	}
	return nil
}

// ProcessWays resolves each way's geometry against the node table and draws
// it as an open polyline, or as a closed one for area-like features. Node
// references missing from the table are dropped; ways left with fewer than
// two coordinates are skipped.
func (g *Generator) ProcessWays(ways []*osm.Way, nodes map[int64]*osm.Node) {
	for _, way := range ways {
		if len(way.Tags) == 0 {
			continue
		}
		// The key plan excludes footpaths entirely, independently of the
		// rule-table variant the mapper was built with.
		if g.plan == layers.KeyPlan && isFootpath(way.Tags) {
			continue
		}

		coords := make([]orb.Point, 0, len(way.NodeIDs))
		for _, id := range way.NodeIDs {
			node, ok := nodes[id]
			if !ok {
				continue
			}
			coords = append(coords, orb.Point{node.X, node.Y})
		}
		if len(coords) < minWayCoords {
			continue
		}

		style := g.mapper.Classify(way.Tags)
		g.ensureLayer(style)

		if isArea(way.Tags) {
			if coords[0] != coords[len(coords)-1] {
				coords = append(coords, coords[0])
			}
			g.writer.AddPolyline(coords, true, style.Layer)
		} else {
			g.writer.AddPolyline(coords, false, style.Layer)
		}
	}
}

func isFootpath(tags osm.Tags) bool {
	v := tags["highway"]
	return v == "footway" || v == "path"
}

func isArea(tags osm.Tags) bool {
	return tags["area"] == "yes" || tags.HasAny("building", "landuse")
}
