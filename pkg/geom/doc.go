// Package geom defines the value types shared by the diagram generators:
// the Cartesian point, ellipsoid semi-axes, curves and polygons.
// All types are immutable values; nothing here holds renderer state.
package geom
