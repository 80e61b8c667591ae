package xform

import (
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/topo"
)

// Solid rebuilds solidH's entire topology under Transform t: every curve
// and surface is replaced with its cached transformed wrapper, every
// half-edge, cycle, region, face, and shell is rebuilt to reference the
// transformed geometry, and every vertex handle is reused unchanged, since
// a Vertex carries no position of its own (see topo.Vertex) — only the
// curves bounding it do, and those are exactly what gets transformed. This
// is the topology-level counterpart to Cache.Curve/Cache.Surface, needed
// whenever an operation (a script's translate/rotate builtin, say) must
// move a whole solid rather than a single piece of geometry.
func (c *Cache) Solid(g *topo.Graph, solidH handle.Handle[topo.Solid], t geom.Transform) handle.Handle[topo.Solid] {
	solid := solidH.Get()
	if solid == nil {
		return handle.Handle[topo.Solid]{}
	}
	shells := make([]handle.Handle[topo.Shell], len(solid.Shells))
	for i, sh := range solid.Shells {
		shells[i] = c.Shell(g, sh, t)
	}
	return g.AddSolid(topo.Solid{Shells: shells})
}

// Shell is Solid's per-shell counterpart.
func (c *Cache) Shell(g *topo.Graph, shellH handle.Handle[topo.Shell], t geom.Transform) handle.Handle[topo.Shell] {
	shell := shellH.Get()
	if shell == nil {
		return handle.Handle[topo.Shell]{}
	}
	faces := make([]handle.Handle[topo.Face], len(shell.Faces))
	for i, fh := range shell.Faces {
		faces[i] = c.Face(g, fh, t)
	}
	return g.AddShell(topo.Shell{Faces: faces})
}

// Face rebuilds a single face's surface and region under t.
func (c *Cache) Face(g *topo.Graph, faceH handle.Handle[topo.Face], t geom.Transform) handle.Handle[topo.Face] {
	face := faceH.Get()
	if face == nil {
		return handle.Handle[topo.Face]{}
	}
	surfaceH := g.AddSurface(c.Surface(face.Surface, t))
	regionH := c.Region(g, face.Region, t)
	return g.AddFace(topo.Face{Surface: surfaceH, Region: regionH})
}

// Region rebuilds a region's exterior and interior cycles under t.
func (c *Cache) Region(g *topo.Graph, regionH handle.Handle[topo.Region], t geom.Transform) handle.Handle[topo.Region] {
	region := regionH.Get()
	if region == nil {
		return handle.Handle[topo.Region]{}
	}
	exterior := c.Cycle(g, region.Exterior, t)
	interiors := make([]handle.Handle[topo.Cycle], len(region.Interiors))
	for i, ih := range region.Interiors {
		interiors[i] = c.Cycle(g, ih, t)
	}
	return g.AddRegion(topo.Region{Exterior: exterior, Interiors: interiors})
}

// Cycle rebuilds every half-edge of a cycle under t, reusing each
// half-edge's original start vertex handle and boundary unchanged.
func (c *Cache) Cycle(g *topo.Graph, cycleH handle.Handle[topo.Cycle], t geom.Transform) handle.Handle[topo.Cycle] {
	cycle := cycleH.Get()
	if cycle == nil {
		return handle.Handle[topo.Cycle]{}
	}
	halfEdges := make([]handle.Handle[topo.HalfEdge], len(cycle.HalfEdges))
	for i, heH := range cycle.HalfEdges {
		he := heH.Get()
		if he == nil {
			continue
		}
		curveH := c.curveHandle(g, he.Curve, t)
		halfEdges[i] = g.AddHalfEdge(topo.HalfEdge{
			Curve:       curveH,
			Boundary:    he.Boundary,
			StartVertex: he.StartVertex,
		})
	}
	return g.AddCycle(topo.Cycle{HalfEdges: halfEdges})
}

// curveHandle returns the topo.Curve handle for ch transformed by t,
// allocating it once per (ch, t) pair so that two half-edges sharing a
// curve before the transform still share one afterward — the condition
// topo.AreSiblings needs to keep recognizing them as siblings.
func (c *Cache) curveHandle(g *topo.Graph, ch handle.Handle[topo.Curve], t geom.Transform) handle.Handle[topo.Curve] {
	key := curveKey{h: ch, t: t}
	if h, ok := c.curveHandles[key]; ok {
		return h
	}
	h := g.AddCurve(c.Curve(ch, t))
	c.curveHandles[key] = h
	return h
}
