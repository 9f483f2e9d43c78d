package engine

import (
	"github.com/lixenwraith/ordnance/component"
	"github.com/lixenwraith/ordnance/parameter"
)

// InstanceID is an opaque index into the projectile pool
type InstanceID int

// InvalidInstance is returned alongside spawn errors
const InvalidInstance InstanceID = -1

// Pool is a fixed-capacity arena of projectile instances; slot ownership is the Enabled flag
// Not safe for concurrent use; the host runs a whole tick under one exclusive pass
type Pool struct {
	slots  [parameter.ProjectilePoolCapacity]component.ProjectileInstance
	active int
}

func NewPool() *Pool {
	return &Pool{}
}

// Capacity returns the number of slots
func (p *Pool) Capacity() int {
	return len(p.slots)
}

// Active returns the number of enabled slots
func (p *Pool) Active() int {
	return p.active
}

// Acquire reserves the lowest free slot and returns it zeroed and enabled
// Returns false without mutation when every slot is in use
func (p *Pool) Acquire() (InstanceID, bool) {
	if p.active == len(p.slots) {
		return InvalidInstance, false
	}
	for i := range p.slots {
		if !p.slots[i].Enabled {
			p.slots[i] = component.ProjectileInstance{Enabled: true}
			p.active++
			return InstanceID(i), true
		}
	}
	return InvalidInstance, false
}

// Release disables a slot; releasing a free or invalid slot is a no-op
func (p *Pool) Release(id InstanceID) {
	if !p.valid(id) || !p.slots[id].Enabled {
		return
	}
	p.slots[id].Enabled = false
	p.active--
}

// Get returns the instance in an enabled slot
// The pointer stays valid until the slot is released
func (p *Pool) Get(id InstanceID) (*component.ProjectileInstance, bool) {
	if !p.valid(id) || !p.slots[id].Enabled {
		return nil, false
	}
	return &p.slots[id], true
}

// Each calls fn for every enabled slot in index order
// fn may release the slot it is given
func (p *Pool) Each(fn func(id InstanceID, inst *component.ProjectileInstance)) {
	for i := range p.slots {
		if p.slots[i].Enabled {
			fn(InstanceID(i), &p.slots[i])
		}
	}
}

// Reset disables every slot (full scenario reset)
func (p *Pool) Reset() {
	for i := range p.slots {
		p.slots[i] = component.ProjectileInstance{}
	}
	p.active = 0
}

func (p *Pool) valid(id InstanceID) bool {
	return id >= 0 && int(id) < len(p.slots)
}
