package filelinkedlist

import (
	"errors"
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
	"github.com/gostonefire/filelinkedlist/internal/storage"
	"github.com/gostonefire/filelinkedlist/internal/utils"
)

// SlotInfo - Represents one slot as exposed by the diagnostic operations
//   - SlotNo is the 1-based physical slot number
//   - Next and Prev are raw slot number links, -1 when absent
//   - InUse is true when the slot holds an active record
//   - Key and Name are the record contents, only meaningful when InUse is true
type SlotInfo struct {
	SlotNo int32
	Next   int32
	Prev   int32
	InUse  bool
	Key    int32
	Name   string
}

// checkKey - Checks validity of a key from the public api
func (F *FileLinkedList) checkKey(key int32) (err error) {
	if key == conf.FreeKey {
		err = fmt.Errorf("key %d is reserved to mark free slots", conf.FreeKey)
	}

	return
}

// checkName - Checks validity of a name from the public api
func (F *FileLinkedList) checkName(name string) (err error) {
	if int64(len(name)) > conf.NameLength {
		err = fmt.Errorf("name too long, can be at most %d bytes", conf.NameLength)
	}

	return
}

// Get - Gets the record that corresponds to the given key.
//   - key is the identifier of a record, any value except -1 which is reserved
//
// It returns:
//   - name is the name of the matching record if found, if not found an error of type NoRecordFound is also returned
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (F *FileLinkedList) Get(key int32) (name string, err error) {
	err = F.checkKey(key)
	if err != nil {
		return
	}

	record, _, err := F.fileManagement.Search(key)
	if err != nil {
		if errors.Is(err, storage.NotFound{}) {
			err = NoRecordFound{}
		}
		return
	}

	name = string(utils.TrimByteSlice(record.Name))

	return
}

// Insert - Inserts a new record at the tail of the active list.
//   - key is the identifier of the record, any value except -1 which is reserved
//   - name is the record data, at most as long as the fixed name field width
//
// It returns:
//   - err is of type DuplicateKey if the key is already active, of type StoreFileFull if
//     there are no free slots left, or a standard error. On error nothing has been mutated.
func (F *FileLinkedList) Insert(key int32, name string) (err error) {
	err = F.checkKey(key)
	if err != nil {
		return
	}
	err = F.checkName(name)
	if err != nil {
		return
	}

	record := model.Record{Key: key, Name: utils.PadByteSlice([]byte(name), conf.NameLength)}

	err = F.fileManagement.Insert(record)
	if err != nil {
		if errors.Is(err, storage.DuplicateKey{}) {
			err = DuplicateKey{}
		} else if errors.Is(err, storage.StoreFull{}) {
			err = StoreFileFull{}
		} else {
			err = fmt.Errorf("error while inserting record: %s", err)
		}
		return
	}

	return
}

// InsertOrdered - Inserts a new record into the active list at the position keeping the
// list in non-decreasing key order. Mixing Insert and InsertOrdered on the same store
// gives no ordering guarantee, the order only holds when every record was inserted
// through InsertOrdered.
//   - key is the identifier of the record, any value except -1 which is reserved
//   - name is the record data, at most as long as the fixed name field width
//
// It returns:
//   - err is of type DuplicateKey if the key is already active, of type StoreFileFull if
//     there are no free slots left, or a standard error. On error nothing has been mutated.
func (F *FileLinkedList) InsertOrdered(key int32, name string) (err error) {
	err = F.checkKey(key)
	if err != nil {
		return
	}
	err = F.checkName(name)
	if err != nil {
		return
	}

	record := model.Record{Key: key, Name: utils.PadByteSlice([]byte(name), conf.NameLength)}

	err = F.fileManagement.InsertOrdered(record)
	if err != nil {
		if errors.Is(err, storage.DuplicateKey{}) {
			err = DuplicateKey{}
		} else if errors.Is(err, storage.StoreFull{}) {
			err = StoreFileFull{}
		} else {
			err = fmt.Errorf("error while inserting record ordered: %s", err)
		}
		return
	}

	return
}

// Delete - Removes the record corresponding to key from the active list and releases its
// slot to the head of the free list, making it the first slot to be reused.
//   - key is the identifier of a record, any value except -1 which is reserved
//
// It returns:
//   - err is of type NoRecordFound if no active record carries the key, in which case
//     nothing has been mutated, or a standard error
func (F *FileLinkedList) Delete(key int32) (err error) {
	err = F.checkKey(key)
	if err != nil {
		return
	}

	err = F.fileManagement.Delete(key)
	if err != nil {
		if errors.Is(err, storage.NotFound{}) {
			err = NoRecordFound{}
		} else {
			err = fmt.Errorf("error while deleting record: %s", err)
		}
		return
	}

	return
}

// AllSlots - Returns every slot in physical order 1 through capacity, each tagged through
// its InUse flag and carrying its raw link values. Read only.
func (F *FileLinkedList) AllSlots() (slots []SlotInfo, err error) {
	_, all, err := F.fileManagement.AllSlots()
	if err != nil {
		return
	}

	slots = make([]SlotInfo, 0, len(all))
	for _, slot := range all {
		slots = append(slots, slotToInfo(slot))
	}

	return
}

// ActiveRecords - Returns the active slots in active list traversal order, from the list
// head via next links to the list tail. Read only.
func (F *FileLinkedList) ActiveRecords() (slots []SlotInfo, err error) {
	iter, err := F.fileManagement.ActiveList()
	if err != nil {
		return
	}

	var slot model.Slot
	for iter.HasNext() {
		slot, err = iter.Next()
		if err != nil {
			return
		}

		slots = append(slots, slotToInfo(slot))
	}

	return
}

// FreeSlots - Returns the free slot numbers in free list traversal order, the first
// being the next slot to be reused. Read only.
func (F *FileLinkedList) FreeSlots() (slotNos []int32, err error) {
	iter, err := F.fileManagement.FreeList()
	if err != nil {
		return
	}

	var slot model.Slot
	for iter.HasNext() {
		slot, err = iter.Next()
		if err != nil {
			return
		}

		slotNos = append(slotNos, slot.SlotNo)
	}

	return
}

// Stat - Returns usage statistics for the store file. The free list is traversed and its
// length cross checked against the header record count, a mismatch indicating a corrupt
// file surfaces as an error.
func (F *FileLinkedList) Stat() (listStat ListStat, err error) {
	header, _, err := F.fileManagement.AllSlots()
	if err != nil {
		return
	}

	nFree := int32(0)
	iter, err := F.fileManagement.FreeList()
	if err != nil {
		return
	}
	for iter.HasNext() {
		_, err = iter.Next()
		if err != nil {
			return
		}
		nFree++
	}

	if header.Count+nFree != header.Capacity {
		err = fmt.Errorf("active count %d and free count %d don't partition capacity %d", header.Count, nFree, header.Capacity)
		return
	}

	listStat = ListStat{
		Records:   header.Count,
		FreeSlots: nFree,
		Capacity:  header.Capacity,
	}

	return
}

// slotToInfo - Converts an internal slot to the exposed SlotInfo form
func slotToInfo(slot model.Slot) (info SlotInfo) {
	info = SlotInfo{
		SlotNo: slot.SlotNo,
		Next:   slot.Next,
		Prev:   slot.Prev,
		InUse:  slot.InUse,
		Key:    slot.Record.Key,
	}

	if slot.InUse {
		info.Name = string(utils.TrimByteSlice(slot.Record.Name))
	}

	return
}
