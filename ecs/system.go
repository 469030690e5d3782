package ecs

// System is a per-frame pass over the world, run by World.Update in the
// order systems were added
type System interface {
	// Update is called each frame to process entities
	Update(world *World, dt float64)
}
