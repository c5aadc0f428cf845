// Package phys wraps the rigid-body engine behind the narrow surface the
// simulation core consumes: body and shape construction with category
// filtering, kinematic pose writes, and fixed-duration stepping.
package phys

import "github.com/jakecoffman/cp/v2"

// Collision categories. The masks define who touches whom: water collides with
// everything, sand geometry skips the wave wall, the wall pushes only water.
const (
	CategoryWater uint = 1 << iota
	CategorySand
	CategoryBoundary
	CategoryWall
)

const (
	MaskWater    = CategoryWater | CategorySand | CategoryBoundary | CategoryWall
	MaskSand     = CategoryWater | CategorySand | CategoryBoundary
	MaskBoundary = CategoryWater | CategorySand | CategoryBoundary | CategoryWall
	MaskWall     = CategoryWater
)

// FilterWater returns the shape filter for water particles.
func FilterWater() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, CategoryWater, MaskWater)
}

// FilterSand returns the shape filter for sand collision geometry.
func FilterSand() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, CategorySand, MaskSand)
}

// FilterBoundary returns the shape filter for static world boundaries.
func FilterBoundary() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, CategoryBoundary, MaskBoundary)
}

// FilterWall returns the shape filter for the kinematic wave wall.
func FilterWall() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, CategoryWall, MaskWall)
}

// Material describes the contact response of a shape.
type Material struct {
	Friction   float64
	Elasticity float64
}

// NewSpace builds a space with downward gravity (the y axis grows downward)
// and the given solver iteration count.
func NewSpace(gravity float64, iterations uint) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = iterations
	space.SetGravity(cp.Vector{Y: gravity})
	return space
}

// AddCircleBody creates a dynamic body carrying one circle shape and adds both
// to the space.
func AddCircleBody(space *cp.Space, pos cp.Vector, radius, mass float64, mat Material, filter cp.ShapeFilter) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{})))
	body.SetPosition(pos)
	shape := space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Elasticity)
	shape.SetFilter(filter)
	return body, shape
}

// AddStaticSegment attaches a segment shape to the space's static body.
func AddStaticSegment(space *cp.Space, a, b cp.Vector, radius float64, mat Material, filter cp.ShapeFilter) *cp.Shape {
	shape := space.AddShape(cp.NewSegment(space.StaticBody, a, b, radius))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Elasticity)
	shape.SetFilter(filter)
	return shape
}

// AddKinematicSegment creates a kinematic body carrying one segment shape.
// The engine never integrates forces on it; its pose is written each frame.
func AddKinematicSegment(space *cp.Space, pos, a, b cp.Vector, radius float64, mat Material, filter cp.ShapeFilter) (*cp.Body, *cp.Shape) {
	body := space.AddBody(cp.NewKinematicBody())
	body.SetPosition(pos)
	shape := space.AddShape(cp.NewSegment(body, a, b, radius))
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Elasticity)
	shape.SetFilter(filter)
	return body, shape
}
