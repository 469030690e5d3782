package ecs

// ComponentID identifies a component type. The game's IDs are declared in
// package components.
type ComponentID uint

// Component is any component value, stored by pointer
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component
