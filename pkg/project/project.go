// Package project converts WGS84 geodetic coordinates into a planar target
// reference system.
package project

import (
	"strconv"
	"strings"

	"github.com/go-spatial/proj"
	"github.com/pkg/errors"
)

// DefaultCRS is the world Mercator system used when no target is given.
const DefaultCRS = "EPSG:3857"

// Transformer projects longitude/latitude pairs into a fixed target CRS.
type Transformer struct {
	crs  string
	code proj.EPSGCode
}

// NewTransformer parses a CRS identifier such as "EPSG:3857" and verifies
// that the projection backend supports it. Unsupported targets fail here
// rather than mid-run.
func NewTransformer(crs string) (*Transformer, error) {
	code, err := parseEPSG(crs)
	if err != nil {
		return nil, err
	}
	if _, err := proj.Convert(code, []float64{0, 0}); err != nil {
		return nil, errors.Wrapf(err, "unsupported target CRS %q", crs)
	}
	return &Transformer{crs: crs, code: code}, nil
}

// CRS returns the identifier the transformer was built from.
func (t *Transformer) CRS() string {
	return t.crs
}

// Project transforms a longitude/latitude pair into the target CRS.
func (t *Transformer) Project(lon, lat float64) (float64, float64, error) {
	xy, err := proj.Convert(t.code, []float64{lon, lat})
	if err != nil {
		return 0, 0, errors.Wrapf(err, "project to %s", t.crs)
	}
	return xy[0], xy[1], nil
}

func parseEPSG(crs string) (proj.EPSGCode, error) {
	s := strings.TrimSpace(crs)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		if !strings.EqualFold(s[:i], "EPSG") {
			return 0, errors.Errorf("unsupported CRS authority %q", s[:i])
		}
		s = s[i+1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid CRS identifier %q", crs)
	}
	return proj.EPSGCode(n), nil
}
