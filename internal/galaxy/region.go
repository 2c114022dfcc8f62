// File: internal/galaxy/region.go
// Project: OpenHo Galaxy Core
// Description: 2D region primitives used as Poisson-disk sampling domains
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// Region is a 2D area that supports uniform sampling and reports a
// bounding box the sampler can use to size its spatial grid.
type Region interface {
	// Sample draws one point uniformly from the region.
	Sample(rng *DeterministicRNG) Point
	// Contains reports whether a point lies within the region.
	Contains(p Point) bool
	// BoundingBox returns (minX, minY, maxX, maxY).
	BoundingBox() (float64, float64, float64, float64)
}

// DiskRegion is a disk of radius R centered at (CX, CY).
type DiskRegion struct {
	CX, CY float64
	R      float64
}

func (d DiskRegion) Sample(rng *DeterministicRNG) Point {
	rho := d.R * math.Sqrt(rng.NextDouble())
	theta := 2 * math.Pi * rng.NextDouble()
	return Point{X: d.CX + rho*math.Cos(theta), Y: d.CY + rho*math.Sin(theta)}
}

func (d DiskRegion) Contains(p Point) bool {
	dx, dy := p.X-d.CX, p.Y-d.CY
	return dx*dx+dy*dy <= d.R*d.R
}

func (d DiskRegion) BoundingBox() (float64, float64, float64, float64) {
	return d.CX - d.R, d.CY - d.R, d.CX + d.R, d.CY + d.R
}

// AnnulusRegion is the ring between RInner and ROuter, centered at
// (CX, CY).
type AnnulusRegion struct {
	CX, CY         float64
	RInner, ROuter float64
}

func (a AnnulusRegion) Sample(rng *DeterministicRNG) Point {
	r2 := a.RInner*a.RInner + rng.NextDouble()*(a.ROuter*a.ROuter-a.RInner*a.RInner)
	rho := math.Sqrt(r2)
	theta := 2 * math.Pi * rng.NextDouble()
	return Point{X: a.CX + rho*math.Cos(theta), Y: a.CY + rho*math.Sin(theta)}
}

func (a AnnulusRegion) Contains(p Point) bool {
	dx, dy := p.X-a.CX, p.Y-a.CY
	d2 := dx*dx + dy*dy
	return d2 >= a.RInner*a.RInner && d2 <= a.ROuter*a.ROuter
}

func (a AnnulusRegion) BoundingBox() (float64, float64, float64, float64) {
	return a.CX - a.ROuter, a.CY - a.ROuter, a.CX + a.ROuter, a.CY + a.ROuter
}

// RectangleRegion is an axis-aligned rectangle of width W and height H
// centered at (CX, CY).
type RectangleRegion struct {
	CX, CY float64
	W, H   float64
}

func (r RectangleRegion) Sample(rng *DeterministicRNG) Point {
	x := r.CX + (rng.NextDouble()-0.5)*r.W
	y := r.CY + (rng.NextDouble()-0.5)*r.H
	return Point{X: x, Y: y}
}

func (r RectangleRegion) Contains(p Point) bool {
	return math.Abs(p.X-r.CX) <= r.W/2 && math.Abs(p.Y-r.CY) <= r.H/2
}

func (r RectangleRegion) BoundingBox() (float64, float64, float64, float64) {
	return r.CX - r.W/2, r.CY - r.H/2, r.CX + r.W/2, r.CY + r.H/2
}

// ClusterRegion is a disk placed at a prescribed cluster center. The
// CLUSTER shape does not use it: generateCluster draws its offsets
// around each center directly.
type ClusterRegion = DiskRegion
