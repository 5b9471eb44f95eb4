package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScheduledEvent runs once the simulation clock reaches At.
// Owner, when set, must still be valid for the event to fire.
type ScheduledEvent struct {
	At    float64
	Owner *donburi.Entry
	Fire  func(e *ecs.ECS, owner *donburi.Entry)
}

// ScheduleData is the queue of pending delayed actions.
type ScheduleData struct {
	Events []ScheduledEvent
}

var Schedule = donburi.NewComponentType[ScheduleData]()
