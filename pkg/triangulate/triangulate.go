package triangulate

import "github.com/chazu/brep/pkg/geom"

// Triangulate returns a triangulation of pslg: the combined point list (the
// exterior boundary, any holes, and the bridge vertices connecting them)
// and the triangles referencing it by index.
func Triangulate(pslg PSLG) ([]geom.Point2, []IndexTriangle, error) {
	points := bridgeHoles(pslg.Exterior, pslg.Holes)
	tris, err := earClip(points)
	if err != nil {
		return nil, nil, err
	}
	return points, tris, nil
}
