package rowza

import "hash/fnv"

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

func hashLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// GetID generates an ID from a label, unique within the current ID stack.
// A per-frame call counter is mixed in so the same label used twice (for
// example in a loop) yields different IDs; the ID is therefore stable only
// while the call order is.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	// parent (32 bits) + counter (16 bits) + label (16 bits)
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | hashLabel(label)&0xFFFF)
}

// StableID derives an ID from the parent ID and label only. Widgets whose
// state must survive changes in what is drawn before them (tables, filter
// selects) use this instead of GetID.
func (ctx *Context) StableID(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	p := uint64(ctx.CurrentID())
	for i := range parent {
		parent[i] = byte(p >> (8 * i))
	}
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID scopes subsequent IDs under label. The pushed ID is stable, so
// children keyed with StableID keep their state across frames.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.StableID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
