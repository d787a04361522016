package neighbor

import "github.com/san-kum/particlesim/internal/vecmath"

// ListSearch is the unaccelerated linear-scan neighbor search: every
// query tests every stored point.
type ListSearch struct {
	points []vecmath.Vector3
}

func NewListSearch() *ListSearch { return &ListSearch{} }

func (l *ListSearch) Build(points []vecmath.Vector3) {
	l.points = make([]vecmath.Vector3, len(points))
	copy(l.points, points)
}

func (l *ListSearch) ForEachNearby(origin vecmath.Vector3, radius float64, cb func(i int, p vecmath.Vector3)) {
	r2 := radius * radius
	for i, p := range l.points {
		if p.Sub(origin).LengthSquared() <= r2 {
			cb(i, p)
		}
	}
}

func (l *ListSearch) HasNearby(origin vecmath.Vector3, radius float64) bool {
	r2 := radius * radius
	for _, p := range l.points {
		if p.Sub(origin).LengthSquared() <= r2 {
			return true
		}
	}
	return false
}

func (l *ListSearch) Clone() Search {
	c := &ListSearch{points: make([]vecmath.Vector3, len(l.points))}
	copy(c.points, l.points)
	return c
}

func (l *ListSearch) Add(p vecmath.Vector3) {
	l.points = append(l.points, p)
}
