package storage

import (
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
)

// spliceAsTail - Links a slot in as the new tail of the active list. The old tail, if any,
// gets its next link rewritten on file. Header roots are updated in memory and left for
// the caller to persist. The slot itself is not written, the caller writes it together
// with its record.
func (L *LinkedFiles) spliceAsTail(header *model.Header, slot *model.Slot) (err error) {
	slot.Next = conf.NilLink
	slot.Prev = header.LastActive

	if header.LastActive != conf.NilLink {
		var tail model.Slot
		tail, err = L.getSlot(header.LastActive)
		if err != nil {
			return
		}

		tail.Next = slot.SlotNo
		err = L.setSlot(tail)
		if err != nil {
			return
		}
	}

	if header.FirstActive == conf.NilLink {
		header.FirstActive = slot.SlotNo
	}
	header.LastActive = slot.SlotNo

	return
}

// spliceBeforeHead - Links a slot in as the new head of the active list. The old head
// gets its prev link rewritten on file and header.FirstActive is moved to the new slot.
func (L *LinkedFiles) spliceBeforeHead(header *model.Header, slot *model.Slot) (err error) {
	slot.Next = header.FirstActive
	slot.Prev = conf.NilLink

	head, err := L.getSlot(header.FirstActive)
	if err != nil {
		return
	}

	head.Prev = slot.SlotNo
	err = L.setSlot(head)
	if err != nil {
		return
	}

	header.FirstActive = slot.SlotNo

	return
}

// spliceBetween - Links a slot in between two existing neighbours in the active list.
// Exactly the two neighbours touched get their links rewritten on file, header roots
// are untouched since the new slot becomes neither head nor tail.
func (L *LinkedFiles) spliceBetween(slot *model.Slot, prevNo, nextNo int32) (err error) {
	slot.Prev = prevNo
	slot.Next = nextNo

	left, err := L.getSlot(prevNo)
	if err != nil {
		return
	}
	left.Next = slot.SlotNo
	err = L.setSlot(left)
	if err != nil {
		return
	}

	right, err := L.getSlot(nextNo)
	if err != nil {
		return
	}
	right.Prev = slot.SlotNo
	err = L.setSlot(right)

	return
}

// unsplice - Removes a slot from wherever it sits in the active list. The left neighbour's
// next link (or header.FirstActive when there is none) and the right neighbour's prev link
// (or header.LastActive when there is none) are updated. Header changes are left in memory
// for the caller to persist together with the decremented count.
func (L *LinkedFiles) unsplice(header *model.Header, slot model.Slot) (err error) {
	if slot.Prev != conf.NilLink {
		var left model.Slot
		left, err = L.getSlot(slot.Prev)
		if err != nil {
			return
		}

		left.Next = slot.Next
		err = L.setSlot(left)
		if err != nil {
			return
		}
	} else {
		header.FirstActive = slot.Next
	}

	if slot.Next != conf.NilLink {
		var right model.Slot
		right, err = L.getSlot(slot.Next)
		if err != nil {
			return
		}

		right.Prev = slot.Prev
		err = L.setSlot(right)
		if err != nil {
			return
		}
	} else {
		header.LastActive = slot.Prev
	}

	return
}

// findOrderedPosition - Scans the active list for the first slot whose key exceeds the
// given key, tracking the slot immediately preceding it. A returned nextNo of -1 means
// the scan ran past the tail, a returned prevNo of -1 means the position is before the
// current head.
func (L *LinkedFiles) findOrderedPosition(header model.Header, key int32) (prevNo, nextNo int32, err error) {
	prevNo = conf.NilLink
	nextNo = header.FirstActive

	for nextNo != conf.NilLink {
		var slot model.Slot
		slot, err = L.getSlot(nextNo)
		if err != nil {
			err = fmt.Errorf("error while scanning active list for ordered position: %s", err)
			return
		}

		if slot.Record.Key > key {
			break
		}

		prevNo = nextNo
		nextNo = slot.Next
	}

	return
}
