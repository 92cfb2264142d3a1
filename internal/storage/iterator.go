package storage

import (
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
)

// ActiveSlots - Is used to iterate over the active list slots one by one, in list order.
type ActiveSlots struct {
	getSlotFunc func(int32) (model.Slot, error)
	slotNo      int32
}

// NewActiveSlots - Returns a pointer to a new ActiveSlots struct
func NewActiveSlots(getSlotFunc func(int32) (model.Slot, error), firstActive int32) *ActiveSlots {

	return &ActiveSlots{
		getSlotFunc: getSlotFunc,
		slotNo:      firstActive,
	}
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (A *ActiveSlots) HasNext() bool {
	return A.slotNo != conf.NilLink
}

// Next - Returns the next active slot.
// It returns:
//   - slot is the next slot in the active list.
//   - err is either a standard error or if there are no more slots when calling this function an error of type NotFound is returned.
func (A *ActiveSlots) Next() (slot model.Slot, err error) {
	if A.slotNo == conf.NilLink {
		err = NotFound{}
		return
	}

	slot, err = A.getSlotFunc(A.slotNo)
	if err != nil {
		err = fmt.Errorf("error while retrieving slot from active list: %s", err)
		return
	}

	A.slotNo = slot.Next

	return
}

// FreeSlots - Is used to iterate over the free list slots one by one, in reuse order.
type FreeSlots struct {
	getSlotFunc func(int32) (model.Slot, error)
	slotNo      int32
}

// NewFreeSlots - Returns a pointer to a new FreeSlots struct
func NewFreeSlots(getSlotFunc func(int32) (model.Slot, error), freeHead int32) *FreeSlots {

	return &FreeSlots{
		getSlotFunc: getSlotFunc,
		slotNo:      freeHead,
	}
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (F *FreeSlots) HasNext() bool {
	return F.slotNo != conf.NilLink
}

// Next - Returns the next free slot.
// It returns:
//   - slot is the next slot in the free list.
//   - err is either a standard error or if there are no more slots when calling this function an error of type NotFound is returned.
func (F *FreeSlots) Next() (slot model.Slot, err error) {
	if F.slotNo == conf.NilLink {
		err = NotFound{}
		return
	}

	slot, err = F.getSlotFunc(F.slotNo)
	if err != nil {
		err = fmt.Errorf("error while retrieving slot from free list: %s", err)
		return
	}

	F.slotNo = slot.Next

	return
}
