// Package xform applies geom.Transform values to topology, memoizing the
// result per (object, transform) pair. A running translation and rotation
// accumulated while walking a design tree collapses into a single
// composable Transform applied once per object, with repeated application
// against the same object and transform served from cache instead of
// rebuilt.
package xform

import (
	"github.com/chazu/brep/pkg/curve"
	"github.com/chazu/brep/pkg/geom"
	"github.com/chazu/brep/pkg/handle"
	"github.com/chazu/brep/pkg/surface"
	"github.com/chazu/brep/pkg/topo"
)

type curveKey struct {
	h handle.Handle[topo.Curve]
	t geom.Transform
}

type surfaceKey struct {
	h handle.Handle[topo.Surface]
	t geom.Transform
}

// Cache memoizes transformed curve and surface geometry, plus the topo
// handles Solid/Shell/.../Cycle allocate for that geometry so that two
// sibling half-edges sharing a curve before a topology-wide transform still
// share a (new) curve handle afterward.
type Cache struct {
	curves       map[curveKey]curve.Geometry
	surfaces     map[surfaceKey]surface.Geometry
	curveHandles map[curveKey]handle.Handle[topo.Curve]
}

// NewCache returns an empty transform cache.
func NewCache() *Cache {
	return &Cache{
		curves:       make(map[curveKey]curve.Geometry),
		surfaces:     make(map[surfaceKey]surface.Geometry),
		curveHandles: make(map[curveKey]handle.Handle[topo.Curve]),
	}
}

// Curve returns ch's geometry transformed by t, wrapping it in
// curve.Transformed on first request and returning the cached wrapper on
// subsequent requests for the same (curve, transform) pair.
func (c *Cache) Curve(ch handle.Handle[topo.Curve], t geom.Transform) curve.Geometry {
	key := curveKey{h: ch, t: t}
	if geo, ok := c.curves[key]; ok {
		return geo
	}
	curveObj := ch.Get()
	if curveObj == nil {
		return nil
	}
	transformed := curve.Transformed{Inner: curveObj.Geometry, Transform: t}
	c.curves[key] = transformed
	return transformed
}

// Surface returns sh's geometry transformed by t, with the same caching
// behavior as Curve.
func (c *Cache) Surface(sh handle.Handle[topo.Surface], t geom.Transform) surface.Geometry {
	key := surfaceKey{h: sh, t: t}
	if geo, ok := c.surfaces[key]; ok {
		return geo
	}
	surfaceObj := sh.Get()
	if surfaceObj == nil {
		return nil
	}
	transformed := surface.Transformed{Inner: surfaceObj.Geometry, Transform: t}
	c.surfaces[key] = transformed
	return transformed
}
