package extension

import (
	"context"
	"fmt"
)

// Package is one enabled extension identified by name, holding the points
// declared in its metadata.
type Package struct {
	name    string
	packets []Packet

	// points is keyed by each point's derived name; two packets resolving
	// to the same name overwrite, last write wins.
	points     map[string]*Point
	pointOrder []string

	// linkedPoints mirrors the point map. It is consulted by LinkPoint but
	// never written here: per-point idempotency at this layer is advisory,
	// the Manager owns the authoritative once-only guarantee.
	linkedPoints map[string]bool
}

// NewPackage resolves the metadata for an extension package and constructs
// one Point per packet. The first bad packet aborts construction — a
// package never exists with a partial point set.
func NewPackage(name string, resolver Resolver) (*Package, error) {
	packets, err := resolver.PackageMetadata(name)
	if err != nil {
		return nil, err
	}
	pkg := &Package{
		name:         name,
		packets:      packets,
		points:       make(map[string]*Point),
		linkedPoints: make(map[string]bool),
	}
	for _, packet := range packets {
		point, err := NewPoint(packet, resolver)
		if err != nil {
			return nil, fmt.Errorf("extension %q: %w", name, err)
		}
		pointName := point.Name()
		if _, exists := pkg.points[pointName]; !exists {
			pkg.pointOrder = append(pkg.pointOrder, pointName)
		}
		pkg.points[pointName] = point
		pkg.linkedPoints[pointName] = false
	}
	return pkg, nil
}

// Name returns the package's identity.
func (p *Package) Name() string { return p.name }

// Metadata returns the packet sequence the package was constructed from.
func (p *Package) Metadata() []Packet { return p.packets }

// Point returns the named extension point.
func (p *Package) Point(name string) (*Point, bool) {
	point, ok := p.points[name]
	return point, ok
}

// PointNames returns the point names in insertion order.
func (p *Package) PointNames() []string { return p.pointOrder }

// LinkPoint links one point unless its linked flag is already set.
func (p *Package) LinkPoint(ctx context.Context, pointName string, host Host) error {
	if p.linkedPoints[pointName] {
		return nil
	}
	point, ok := p.points[pointName]
	if !ok {
		return fmt.Errorf("extension %q has no point named %q", p.name, pointName)
	}
	return point.Link(ctx, host)
}

// LoadPoint loads one point.
func (p *Package) LoadPoint(ctx context.Context, pointName string, host Host) error {
	point, ok := p.points[pointName]
	if !ok {
		return fmt.Errorf("extension %q has no point named %q", p.name, pointName)
	}
	return point.Load(ctx, host)
}

// LinkAllPoints links every point in insertion order. There is no failure
// isolation at this layer: the first error aborts the remaining points for
// this call and propagates.
func (p *Package) LinkAllPoints(ctx context.Context, host Host) error {
	for _, pointName := range p.pointOrder {
		if err := p.LinkPoint(ctx, pointName, host); err != nil {
			return err
		}
	}
	return nil
}

// LoadAllPoints loads every point in insertion order, aborting on the
// first error.
func (p *Package) LoadAllPoints(ctx context.Context, host Host) error {
	for _, pointName := range p.pointOrder {
		if err := p.LoadPoint(ctx, pointName, host); err != nil {
			return err
		}
	}
	return nil
}
