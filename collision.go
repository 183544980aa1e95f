package micro

import "math"

// rayEpsilon absorbs floating-point error at box edges and at the ends of
// the ray's [0, 1] parametric range.
const rayEpsilon = 1e-4

// Collider is a named rectangle offset from its owning entity's position.
// It has no lifecycle of its own: it lives and dies with the entity.
type Collider struct {
	Tag     Tag
	OffsetX float64
	OffsetY float64
	W       float64
	H       float64
}

// NewCollider returns a collider of size w x h offset by (offX, offY).
func NewCollider(tag Tag, offX, offY, w, h float64) Collider {
	return Collider{Tag: tag, OffsetX: offX, OffsetY: offY, W: w, H: h}
}

// ColliderBox returns the world-space rectangle of c for an entity at pos.
// Offsets are always applied to the position passed in, never cached.
func ColliderBox(pos Vec2, c Collider) Rect {
	return Rect{X: pos.X + c.OffsetX, Y: pos.Y + c.OffsetY, Width: c.W, Height: c.H}
}

// Overlap reports whether collider ca of entity a overlaps collider cb of
// entity b. Touching edges do not count. Overlap is symmetric.
func Overlap(a Entity, ca Collider, b Entity, cb Collider) bool {
	return ColliderBox(a.Base().Position(), ca).Overlaps(ColliderBox(b.Base().Position(), cb))
}

// Ray is a segment from Origin to End used for a single cast.
type Ray struct {
	Origin Vec2
	End    Vec2
}

// Direction returns End - Origin.
func (r Ray) Direction() Vec2 { return r.End.Sub(r.Origin) }

// At returns the point at parameter t along the segment.
func (r Ray) At(t float64) Vec2 { return r.Origin.Add(r.Direction().Scale(t)) }

// IntersectRayBox returns the point where ray first meets collider c of an
// entity at pos, using the slab method.
//
// An axis along which the ray does not move adds no parametric constraint;
// the origin must instead lie inside that axis's slab. A ray starting inside
// the box hits at its origin. The entry parameter may exceed [0, 1] by
// rayEpsilon, and the resulting point must lie within the box (again within
// rayEpsilon) on both axes.
func IntersectRayBox(ray Ray, pos Vec2, c Collider) (Vec2, bool) {
	box := ColliderBox(pos, c)
	d := ray.Direction()

	tEnter := math.Inf(-1)
	tExit := math.Inf(1)

	if !slab(ray.Origin.X, d.X, box.X, box.X+box.Width, &tEnter, &tExit) {
		return Vec2{}, false
	}
	if !slab(ray.Origin.Y, d.Y, box.Y, box.Y+box.Height, &tEnter, &tExit) {
		return Vec2{}, false
	}
	if tEnter > tExit || tExit < -rayEpsilon || tEnter > 1+rayEpsilon {
		return Vec2{}, false
	}

	t := max(tEnter, 0)
	p := ray.At(t)
	if p.X < box.X-rayEpsilon || p.X > box.X+box.Width+rayEpsilon ||
		p.Y < box.Y-rayEpsilon || p.Y > box.Y+box.Height+rayEpsilon {
		return Vec2{}, false
	}
	return p, true
}

// slab narrows [tEnter, tExit] by one axis. It reports false when the ray
// cannot touch the slab at all.
func slab(origin, dir, lo, hi float64, tEnter, tExit *float64) bool {
	if dir == 0 {
		return origin >= lo-rayEpsilon && origin <= hi+rayEpsilon
	}
	inv := 1 / dir
	t1 := (lo - origin) * inv
	t2 := (hi - origin) * inv
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	*tEnter = max(*tEnter, t1)
	*tExit = min(*tExit, t2)
	return true
}

// RayHit is the result of CastRay. The zero value means nothing was hit.
type RayHit struct {
	Hit      bool
	Point    Vec2
	Distance float64
	Entity   Entity
	Collider Collider
}

// CastRay casts a ray from origin along dir for at most maxDist and returns
// the nearest collider hit among candidates, by Euclidean distance from
// origin. The caster itself is never hit. dir need not be unit length; a
// zero direction or non-positive distance hits nothing.
//
// A hit at exactly maxDist ends the search immediately.
func CastRay(origin, dir Vec2, maxDist float64, caster Entity, candidates []Entity) RayHit {
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 || maxDist <= 0 {
		return RayHit{}
	}
	ray := Ray{Origin: origin, End: origin.Add(dir.Scale(maxDist / length))}

	var self *Object
	if caster != nil {
		self = caster.Base()
	}

	var best RayHit
	for _, e := range candidates {
		if e == nil {
			continue
		}
		obj := e.Base()
		if obj == self {
			continue
		}
		pos := obj.Position()
		for _, c := range obj.Colliders {
			p, ok := IntersectRayBox(ray, pos, c)
			if !ok {
				continue
			}
			dist := math.Hypot(p.X-origin.X, p.Y-origin.Y)
			if dist > maxDist {
				continue // accepted only by the intersection tolerance
			}
			if dist == maxDist {
				return RayHit{Hit: true, Point: p, Distance: dist, Entity: e, Collider: c}
			}
			if !best.Hit || dist < best.Distance {
				best = RayHit{Hit: true, Point: p, Distance: dist, Entity: e, Collider: c}
			}
		}
	}
	return best
}
