package event

// Batch collects effects emitted during a tick
// Single producer (the simulation), single consumer (presentation), not safe for concurrent use
type Batch struct {
	effects []Effect
}

func NewBatch(capacity int) *Batch {
	return &Batch{effects: make([]Effect, 0, capacity)}
}

// Push appends an effect
func (b *Batch) Push(e Effect) {
	b.effects = append(b.effects, e)
}

// PushAll appends effects in order
func (b *Batch) PushAll(effects []Effect) {
	b.effects = append(b.effects, effects...)
}

// Len returns pending effect count
func (b *Batch) Len() int {
	return len(b.effects)
}

// Drain returns all pending effects in FIFO order and empties the batch
// The returned slice is owned by the caller
func (b *Batch) Drain() []Effect {
	if len(b.effects) == 0 {
		return nil
	}
	out := make([]Effect, len(b.effects))
	copy(out, b.effects)
	b.effects = b.effects[:0]
	return out
}

// Count returns pending effects of one type
func (b *Batch) Count(t EffectType) int {
	n := 0
	for i := range b.effects {
		if b.effects[i].Type == t {
			n++
		}
	}
	return n
}
