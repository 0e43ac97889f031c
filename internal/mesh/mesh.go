// Package mesh holds plain numeric mesh data shared by the generation
// pipeline: vertex positions in insertion order plus quad and triangle
// index lists. A Buffer is owned by whichever component last mutated it.
package mesh

import (
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// Buffer is an ordered vertex/face container. Vertex insertion order is
// significant: faces index into Positions by position.
type Buffer struct {
	Positions []vmath.Vec3
	Quads     [][4]uint32
	Tris      [][3]uint32
}

// NewBuffer returns a Buffer with capacity hints for the expected counts.
func NewBuffer(vertexHint, faceHint int) *Buffer {
	return &Buffer{
		Positions: make([]vmath.Vec3, 0, vertexHint),
		Quads:     make([][4]uint32, 0, faceHint),
	}
}

// AddVertex appends a vertex and returns its index.
func (b *Buffer) AddVertex(v vmath.Vec3) uint32 {
	b.Positions = append(b.Positions, v)
	return uint32(len(b.Positions) - 1)
}

// AddQuad appends a quad face.
func (b *Buffer) AddQuad(i0, i1, i2, i3 uint32) {
	b.Quads = append(b.Quads, [4]uint32{i0, i1, i2, i3})
}

// AddTri appends a triangle face.
func (b *Buffer) AddTri(i0, i1, i2 uint32) {
	b.Tris = append(b.Tris, [3]uint32{i0, i1, i2})
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.Positions)
}

// FaceCount returns the number of faces (quads plus triangles).
func (b *Buffer) FaceCount() int {
	return len(b.Quads) + len(b.Tris)
}

// TriangleCount returns the triangle count with each quad counted as two.
func (b *Buffer) TriangleCount() int {
	return 2*len(b.Quads) + len(b.Tris)
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (b *Buffer) Bounds() Bounds {
	return BoundsOf(b.Positions)
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min vmath.Vec3
	Max vmath.Vec3
}

// BoundsOf computes the bounding box of a point set.
// An empty set yields a zero Bounds.
func BoundsOf(points []vmath.Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	bounds := Bounds{
		Min: vmath.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: vmath.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}
	for _, p := range points {
		bounds.expand(p)
	}
	return bounds
}

func (bd *Bounds) expand(p vmath.Vec3) {
	if p.X < bd.Min.X {
		bd.Min.X = p.X
	}
	if p.Y < bd.Min.Y {
		bd.Min.Y = p.Y
	}
	if p.Z < bd.Min.Z {
		bd.Min.Z = p.Z
	}
	if p.X > bd.Max.X {
		bd.Max.X = p.X
	}
	if p.Y > bd.Max.Y {
		bd.Max.Y = p.Y
	}
	if p.Z > bd.Max.Z {
		bd.Max.Z = p.Z
	}
}

// Center returns the midpoint of the box.
func (bd Bounds) Center() vmath.Vec3 {
	return bd.Min.Add(bd.Max).Scale(0.5)
}

// Size returns the box extents per axis.
func (bd Bounds) Size() vmath.Vec3 {
	return bd.Max.Sub(bd.Min)
}

// Volume returns the box volume.
func (bd Bounds) Volume() float32 {
	s := bd.Size()
	return s.X * s.Y * s.Z
}
