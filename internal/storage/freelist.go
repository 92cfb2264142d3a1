package storage

import (
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
)

// allocate - Pops the head of the free list. The popped slot is returned with its current
// contents and header.FreeHead is advanced to the popped slot's next link. The caller is
// responsible for overwriting the slot's links and record and for writing both slot and
// header back to file.
//
// It returns:
//   - slot is the popped free slot
//   - err is of type StoreFull when the free list is exhausted, or a standard error
func (L *LinkedFiles) allocate(header *model.Header) (slot model.Slot, err error) {
	if header.FreeHead == conf.NilLink {
		err = StoreFull{}
		return
	}

	slot, err = L.getSlot(header.FreeHead)
	if err != nil {
		return
	}

	header.FreeHead = slot.Next

	return
}

// release - Pushes a slot onto the head of the free list. The slot's record is cleared,
// its key set to the free sentinel and its links rewritten to chain in front of the
// current free head. The slot is written to file, header.FreeHead is updated in memory
// and left for the caller to persist.
func (L *LinkedFiles) release(header *model.Header, slot model.Slot) (err error) {
	slot.Next = header.FreeHead
	slot.Prev = conf.NilLink
	slot.InUse = false
	slot.Record = model.Record{Key: conf.FreeKey, Name: make([]byte, conf.NameLength)}

	err = L.setSlot(slot)
	if err != nil {
		return
	}

	header.FreeHead = slot.SlotNo

	return
}
