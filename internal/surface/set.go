package surface

import "github.com/san-kum/particlesim/internal/vecmath"

// Set composes multiple implicit surfaces and reports the minimum
// signed distance across members, per spec.md §6 ("A set-type implicit
// surface composes multiple members and returns the minimum signed
// distance"). Grounded on
// original_source/.../implicit_surface2_set.cpp.
type Set struct {
	Members []Implicit3
}

func NewSet(members ...Implicit3) *Set {
	return &Set{Members: members}
}

func (s *Set) SignedDistance(q vecmath.Vector3) float64 {
	best := 0.0
	for i, m := range s.Members {
		d := m.SignedDistance(q)
		if i == 0 || d < best {
			best = d
		}
	}
	if len(s.Members) == 0 {
		return 1e18
	}
	return best
}

func (s *Set) closestMember(q vecmath.Vector3) Implicit3 {
	var best Implicit3
	bestD := 0.0
	for i, m := range s.Members {
		d := m.SignedDistance(q)
		if i == 0 || d < bestD {
			bestD = d
			best = m
		}
	}
	return best
}

func (s *Set) ClosestPoint(q vecmath.Vector3) vecmath.Vector3 {
	if m := s.closestMember(q); m != nil {
		return m.ClosestPoint(q)
	}
	return q
}

func (s *Set) ClosestNormal(q vecmath.Vector3) vecmath.Vector3 {
	if m := s.closestMember(q); m != nil {
		return m.ClosestNormal(q)
	}
	return vecmath.Vector3{X: 1}
}

func (s *Set) Intersects(r vecmath.Ray3) bool {
	for _, m := range s.Members {
		if m.Intersects(r) {
			return true
		}
	}
	return false
}

func (s *Set) ClosestIntersection(r vecmath.Ray3) Intersection {
	var best Intersection
	for i, m := range s.Members {
		hit := m.ClosestIntersection(r)
		if hit.Hit && (i == 0 || !best.Hit || hit.T < best.T) {
			best = hit
		}
	}
	return best
}

func (s *Set) BoundingBox() vecmath.AABB3 {
	if len(s.Members) == 0 {
		return vecmath.AABB3{}
	}
	box := s.Members[0].BoundingBox()
	for _, m := range s.Members[1:] {
		box = box.Merged(m.BoundingBox())
	}
	return box
}
