// Copyright (c) 2025 osm2dxf authors
// Licensed under the MIT License

// Package osm holds the in-memory feature model and the reader that loads
// OpenStreetMap data files into it.
package osm

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	pmosm "github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// ReadFile loads every node, way and relation from an OSM file. The format
// is chosen by extension: .pbf is decoded as protobuf, anything else as XML.
func ReadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	var scanner pmosm.Scanner
	if strings.EqualFold(filepath.Ext(path), ".pbf") {
		scanner = osmpbf.New(context.Background(), f, 1)
	} else {
		scanner = osmxml.New(context.Background(), f)
	}
	defer scanner.Close()

	return scan(scanner)
}

func scan(scanner pmosm.Scanner) (*Data, error) {
	data := &Data{Nodes: make(map[int64]*Node)}

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *pmosm.Node:
			data.Nodes[int64(o.ID)] = &Node{
				ID:    int64(o.ID),
				Point: orb.Point{o.Lon, o.Lat},
				Tags:  tagMap(o.Tags),
			}
		case *pmosm.Way:
			w := &Way{
				ID:      int64(o.ID),
				NodeIDs: make([]int64, 0, len(o.Nodes)),
				Tags:    tagMap(o.Tags),
			}
			for _, n := range o.Nodes {
				w.NodeIDs = append(w.NodeIDs, int64(n.ID))
			}
			data.Ways = append(data.Ways, w)
		case *pmosm.Relation:
			r := &Relation{
				ID:      int64(o.ID),
				Members: make([]Member, 0, len(o.Members)),
				Tags:    tagMap(o.Tags),
			}
			for _, m := range o.Members {
				r.Members = append(r.Members, Member{Type: string(m.Type), Ref: m.Ref, Role: m.Role})
			}
			data.Relations = append(data.Relations, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan osm data")
	}

	return data, nil
}

func tagMap(tags pmosm.Tags) Tags {
	m := make(Tags, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}
