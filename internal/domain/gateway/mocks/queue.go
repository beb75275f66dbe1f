package mocks

import (
	"sync"

	"todo-tracker/internal/domain/gateway/queue"
	"todo-tracker/internal/domain/model"
)

// ActivityGateway records every published event.
type ActivityGateway struct {
	mutex  sync.Mutex
	Events []model.ActivityEvent
	Err    error
}

var _ queue.ActivityGateway = (*ActivityGateway)(nil)

func (g *ActivityGateway) Publish(event model.ActivityEvent) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.Events = append(g.Events, event)
	return g.Err
}

// Types returns the type of every published event, in order.
func (g *ActivityGateway) Types() []model.ActivityType {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	types := make([]model.ActivityType, 0, len(g.Events))
	for _, e := range g.Events {
		types = append(types, e.Type)
	}
	return types
}
