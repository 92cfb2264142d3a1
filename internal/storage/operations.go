package storage

import (
	"errors"
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
)

// Search - Traverses the active list from its head comparing keys.
//
// It returns:
//   - record is a copy of the matching record
//   - slotNo is the slot number the record was found in
//   - err is of type NotFound when no active record carries the key, or a standard error
func (L *LinkedFiles) Search(key int32) (record model.Record, slotNo int32, err error) {
	header, err := L.getHeader()
	if err != nil {
		return
	}

	current := header.FirstActive
	for current != conf.NilLink {
		var slot model.Slot
		slot, err = L.getSlot(current)
		if err != nil {
			return
		}

		if slot.Record.Key == key {
			record = slot.Record
			slotNo = current
			return
		}

		current = slot.Next
	}

	err = NotFound{}

	return
}

// Insert - Inserts a record at the tail of the active list. The slot is taken from the
// head of the free list.
//
// It returns:
//   - err is of type DuplicateKey when the key is already active, of type StoreFull when
//     the free list is exhausted, or a standard error
func (L *LinkedFiles) Insert(record model.Record) (err error) {
	_, _, err = L.Search(record.Key)
	if err == nil {
		err = DuplicateKey{}
		return
	} else if !errors.Is(err, NotFound{}) {
		return
	}

	header, err := L.getHeader()
	if err != nil {
		return
	}

	slot, err := L.allocate(&header)
	if err != nil {
		return
	}

	err = L.spliceAsTail(&header, &slot)
	if err != nil {
		return
	}

	slot.InUse = true
	slot.Record = record

	err = L.setSlot(slot)
	if err != nil {
		return
	}

	header.Count++

	err = L.setHeader(header)

	return
}

// InsertOrdered - Inserts a record into the active list at the position keeping the list
// in non-decreasing key order. The slot is taken from the head of the free list. The scan
// uses a strict greater-than comparison, unambiguous since an equal key has already been
// rejected as duplicate.
//
// It returns:
//   - err is of type DuplicateKey when the key is already active, of type StoreFull when
//     the free list is exhausted, or a standard error
func (L *LinkedFiles) InsertOrdered(record model.Record) (err error) {
	_, _, err = L.Search(record.Key)
	if err == nil {
		err = DuplicateKey{}
		return
	} else if !errors.Is(err, NotFound{}) {
		return
	}

	header, err := L.getHeader()
	if err != nil {
		return
	}

	slot, err := L.allocate(&header)
	if err != nil {
		return
	}

	if header.FirstActive == conf.NilLink {
		// Empty list, the new slot becomes both head and tail
		slot.Next = conf.NilLink
		slot.Prev = conf.NilLink
		header.FirstActive = slot.SlotNo
		header.LastActive = slot.SlotNo
	} else {
		var prevNo, nextNo int32
		prevNo, nextNo, err = L.findOrderedPosition(header, record.Key)
		if err != nil {
			return
		}

		if nextNo == header.FirstActive {
			err = L.spliceBeforeHead(&header, &slot)
		} else if nextNo == conf.NilLink {
			err = L.spliceAsTail(&header, &slot)
		} else {
			err = L.spliceBetween(&slot, prevNo, nextNo)
		}
		if err != nil {
			return
		}
	}

	slot.InUse = true
	slot.Record = record

	err = L.setSlot(slot)
	if err != nil {
		return
	}

	header.Count++

	err = L.setHeader(header)

	return
}

// Delete - Removes the active record carrying the given key. The slot is unspliced from
// the active list and released to the head of the free list, most recently freed slot
// being first to be reused.
//
// It returns:
//   - err is of type NotFound when no active record carries the key, in which case nothing
//     has been mutated, or a standard error
func (L *LinkedFiles) Delete(key int32) (err error) {
	header, err := L.getHeader()
	if err != nil {
		return
	}

	current := header.FirstActive
	for current != conf.NilLink {
		var slot model.Slot
		slot, err = L.getSlot(current)
		if err != nil {
			return
		}

		if slot.Record.Key == key {
			err = L.unsplice(&header, slot)
			if err != nil {
				return
			}

			err = L.release(&header, slot)
			if err != nil {
				return
			}

			header.Count--
			if header.Count == 0 {
				header.FirstActive = conf.NilLink
				header.LastActive = conf.NilLink
			}

			err = L.setHeader(header)
			return
		}

		current = slot.Next
	}

	err = NotFound{}

	return
}

// AllSlots - Returns every slot in physical order 1 through capacity, each tagged
// active or free through its InUse flag. Read only.
func (L *LinkedFiles) AllSlots() (header model.Header, slots []model.Slot, err error) {
	header, err = L.getHeader()
	if err != nil {
		return
	}

	slots = make([]model.Slot, 0, header.Capacity)
	for i := int32(1); i <= header.Capacity; i++ {
		var slot model.Slot
		slot, err = L.getSlot(i)
		if err != nil {
			err = fmt.Errorf("error while reading slot %d in full scan: %s", i, err)
			return
		}

		slots = append(slots, slot)
	}

	return
}

// ActiveList - Returns an iterator over the active list in list order, starting at the
// head slot from the header. Read only.
func (L *LinkedFiles) ActiveList() (iter *ActiveSlots, err error) {
	header, err := L.getHeader()
	if err != nil {
		return
	}

	iter = NewActiveSlots(L.getSlot, header.FirstActive)

	return
}

// FreeList - Returns an iterator over the free list, starting at the free head slot
// from the header. Read only.
func (L *LinkedFiles) FreeList() (iter *FreeSlots, err error) {
	header, err := L.getHeader()
	if err != nil {
		return
	}

	iter = NewFreeSlots(L.getSlot, header.FreeHead)

	return
}
