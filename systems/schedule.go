package systems

import (
	"sort"

	"github.com/automoto/deal-closer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Schedule queues fire to run once the simulation clock has advanced by
// delay seconds. A non-nil owner must still be valid when the event comes
// due or the event is dropped.
func Schedule(e *ecs.ECS, delay float64, owner *donburi.Entry, fire func(*ecs.ECS, *donburi.Entry)) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(matchEntry)
	sched := components.Schedule.Get(matchEntry)
	sched.Events = append(sched.Events, components.ScheduledEvent{
		At:    clock.Elapsed + delay,
		Owner: owner,
		Fire:  fire,
	})
}

// UpdateSchedule runs every due event in time order. Events queued while
// firing wait for a later tick.
func UpdateSchedule(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	now := components.Clock.Get(matchEntry).Elapsed
	sched := components.Schedule.Get(matchEntry)

	var due, pending []components.ScheduledEvent
	for _, ev := range sched.Events {
		if ev.At <= now {
			due = append(due, ev)
		} else {
			pending = append(pending, ev)
		}
	}
	sched.Events = pending

	sort.SliceStable(due, func(i, j int) bool { return due[i].At < due[j].At })
	for _, ev := range due {
		if ev.Owner != nil && !ev.Owner.Valid() {
			continue
		}
		if !IsPlaying(e) {
			return
		}
		ev.Fire(e, ev.Owner)
	}
}

// ClearSchedule drops every pending event.
func ClearSchedule(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	components.Schedule.Get(matchEntry).Events = nil
}

// PendingEvents returns how many events are queued.
func PendingEvents(e *ecs.ECS) int {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return 0
	}
	return len(components.Schedule.Get(matchEntry).Events)
}
