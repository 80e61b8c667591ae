// Package bound computes bounding volumes for topology entities and
// provides a spatial index used to deduplicate mesh vertices during
// externalization.
package bound

import (
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/tolerance"
	"github.com/dhconnelly/rtreego"
)

// indexedPoint adapts a model-space point to rtreego.Spatial so it can live
// in an R-tree: its bounding box is a tiny box (1e-9 along each axis)
// cornered at its own position.
type indexedPoint struct {
	pos   geom.Point3
	index int
}

func (ip *indexedPoint) Bounds() *rtreego.Rect {
	p := rtreego.Point{ip.pos.X.Float64(), ip.pos.Y.Float64(), ip.pos.Z.Float64()}
	rect, err := rtreego.NewRect(p, []float64{1e-9, 1e-9, 1e-9})
	if err != nil {
		panic(err)
	}
	return rect
}

// DedupIndex deduplicates mesh vertices within a tolerance, backed by an
// R-tree nearest-neighbor query instead of a linear scan — mesh
// externalization inserts one vertex per triangle corner, and a linear scan
// against every previously inserted vertex would make the whole assembly
// step quadratic in mesh size.
type DedupIndex struct {
	tree *rtreego.Rtree
	tol  tolerance.Tolerance
	next int
}

// NewDedupIndex returns an index that treats two points within tol of each
// other as the same vertex.
func NewDedupIndex(tol tolerance.Tolerance) *DedupIndex {
	return &DedupIndex{tree: rtreego.NewTree(3, 25, 50), tol: tol}
}

// Lookup returns the index of an existing point within tol of p, if any,
// else inserts p as a new entry and returns its fresh index.
func (d *DedupIndex) Lookup(p geom.Point3) (idx int, isNew bool) {
	query := rtreego.Point{p.X.Float64(), p.Y.Float64(), p.Z.Float64()}
	nearest := d.tree.NearestNeighbor(query)
	if nearest != nil {
		candidate := nearest.(*indexedPoint)
		if candidate.pos.DistanceTo(p).Float64() <= d.tol.Float64() {
			return candidate.index, false
		}
	}

	idx = d.next
	d.next++
	d.tree.Insert(&indexedPoint{pos: p, index: idx})
	return idx, true
}

// Len returns the number of distinct points inserted so far.
func (d *DedupIndex) Len() int {
	return d.next
}
