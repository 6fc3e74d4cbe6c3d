package osm

import "github.com/paulmach/orb"

// Tags is the free-form key/value attribute set attached to a feature.
type Tags map[string]string

// HasAny reports whether any of the given keys is present in the set.
func (t Tags) HasAny(keys ...string) bool {
	for _, k := range keys {
		if _, ok := t[k]; ok {
			return true
		}
	}
	return false
}

// Node represents an OSM node: a point feature with geodetic coordinates
// and tags. X and Y hold the projected planar coordinates and are set
// exactly once during assembly.
type Node struct {
	ID    int64
	Point orb.Point // lon/lat as read from the input
	X, Y  float64
	Tags  Tags
}

// Way represents an OSM way: an ordered list of node references plus tags.
// Geometry is resolved against the node table at assembly time; references
// missing from the table are dropped from the sequence, not the whole way.
type Way struct {
	ID      int64
	NodeIDs []int64
	Tags    Tags
}

// Member represents a single member of an OSM relation.
type Member struct {
	Type string
	Ref  int64
	Role string
}

// Relation represents an OSM relation. Relations are parsed and counted but
// never assembled into geometry.
type Relation struct {
	ID      int64
	Members []Member
	Tags    Tags
}

// Data holds the fully loaded contents of one OSM input file.
type Data struct {
	Nodes     map[int64]*Node
	Ways      []*Way
	Relations []*Relation
}
