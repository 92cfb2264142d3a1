//go:build unit

package storage

import (
	"errors"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
	"github.com/gostonefire/filelinkedlist/internal/utils"
	"github.com/stretchr/testify/assert"
	"testing"
)

const testStore string = "unitteststore"

// newTestStore - Creates a fresh store for a test case
func newTestStore(t *testing.T, capacity int32) (lf *LinkedFiles) {
	lf, err := NewLinkedFiles(LinkedFilesConf{Name: testStore, Capacity: capacity})
	assert.NoError(t, err, "creates store")

	return
}

// dropTestStore - Closes and removes a test store
func dropTestStore(t *testing.T, lf *LinkedFiles) {
	lf.CloseFile()
	err := lf.RemoveFile()
	assert.NoError(t, err, "removes store")
}

// record - Returns a record with a padded name
func record(key int32, name string) model.Record {
	return model.Record{Key: key, Name: utils.PadByteSlice([]byte(name), conf.NameLength)}
}

// activeKeys - Returns the keys of the active list in traversal order
func activeKeys(t *testing.T, lf *LinkedFiles) (keys []int32) {
	iter, err := lf.ActiveList()
	assert.NoError(t, err, "gets active list iterator")

	for iter.HasNext() {
		slot, err := iter.Next()
		assert.NoError(t, err, "gets next active slot")
		keys = append(keys, slot.Record.Key)
	}

	return
}

// freeSlotNos - Returns the slot numbers of the free list in reuse order
func freeSlotNos(t *testing.T, lf *LinkedFiles) (slotNos []int32) {
	iter, err := lf.FreeList()
	assert.NoError(t, err, "gets free list iterator")

	for iter.HasNext() {
		slot, err := iter.Next()
		assert.NoError(t, err, "gets next free slot")
		slotNos = append(slotNos, slot.SlotNo)
	}

	return
}

// assertPartition - Asserts that active and free slots together partition the full slot range
func assertPartition(t *testing.T, lf *LinkedFiles) {
	header, slots, err := lf.AllSlots()
	assert.NoError(t, err, "gets all slots")

	seen := make(map[int32]bool)

	iter, err := lf.ActiveList()
	assert.NoError(t, err, "gets active list iterator")
	nActive := int32(0)
	for iter.HasNext() {
		slot, err := iter.Next()
		assert.NoError(t, err, "gets next active slot")
		assert.False(t, seen[slot.SlotNo], "active slot not seen before")
		seen[slot.SlotNo] = true
		nActive++
	}

	fIter, err := lf.FreeList()
	assert.NoError(t, err, "gets free list iterator")
	for fIter.HasNext() {
		slot, err := fIter.Next()
		assert.NoError(t, err, "gets next free slot")
		assert.False(t, seen[slot.SlotNo], "free slot not in active list")
		seen[slot.SlotNo] = true
	}

	assert.Equal(t, len(slots), len(seen), "every slot in exactly one list")
	assert.Equal(t, header.Count, nActive, "header count equals active list length")
}

func TestInsert(t *testing.T) {
	t.Run("appends records at the tail", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)

		// Execute
		err1 := lf.Insert(record(10, "ten"))
		err2 := lf.Insert(record(5, "five"))
		err3 := lf.Insert(record(7, "seven"))

		// Check
		assert.NoError(t, err1, "inserts first record")
		assert.NoError(t, err2, "inserts second record")
		assert.NoError(t, err3, "inserts third record")
		assert.Equal(t, []int32{10, 5, 7}, activeKeys(t, lf), "records in insertion order")
		assertPartition(t, lf)

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type DuplicateKey when key is active", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		err := lf.Insert(record(10, "ten"))
		assert.NoError(t, err, "inserts record")

		// Execute
		err = lf.Insert(record(10, "other"))

		// Check
		assert.True(t, errors.Is(err, DuplicateKey{}), "duplicate key error")
		assert.Equal(t, []int32{10}, activeKeys(t, lf), "state unchanged")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type StoreFull when free list is exhausted", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 2)
		assert.NoError(t, lf.Insert(record(1, "a")), "inserts first record")
		assert.NoError(t, lf.Insert(record(2, "b")), "inserts second record")

		// Execute
		err := lf.Insert(record(3, "c"))

		// Check
		assert.True(t, errors.Is(err, StoreFull{}), "store full error")
		assert.Equal(t, []int32{1, 2}, activeKeys(t, lf), "state unchanged")
		assertPartition(t, lf)

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestSearch(t *testing.T) {
	t.Run("finds a record and its slot number", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		assert.NoError(t, lf.Insert(record(10, "ten")), "inserts record")
		assert.NoError(t, lf.Insert(record(20, "twenty")), "inserts record")

		// Execute
		rec, slotNo, err := lf.Search(20)

		// Check
		assert.NoError(t, err, "finds record")
		assert.Equal(t, int32(20), rec.Key, "correct key")
		assert.True(t, utils.IsEqual(utils.PadByteSlice([]byte("twenty"), conf.NameLength), rec.Name), "correct name")
		assert.Equal(t, int32(2), slotNo, "second allocated slot")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type NotFound when key is absent", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		assert.NoError(t, lf.Insert(record(10, "ten")), "inserts record")

		// Execute
		_, _, err := lf.Search(11)

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "not found error")

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestInsertOrdered(t *testing.T) {
	t.Run("keeps keys in increasing order for all positions", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)

		// Execute - empty list, after tail, before head, interior
		err1 := lf.InsertOrdered(record(20, "twenty"))
		err2 := lf.InsertOrdered(record(40, "forty"))
		err3 := lf.InsertOrdered(record(10, "ten"))
		err4 := lf.InsertOrdered(record(30, "thirty"))

		// Check
		assert.NoError(t, err1, "inserts into empty list")
		assert.NoError(t, err2, "inserts after tail")
		assert.NoError(t, err3, "inserts before head")
		assert.NoError(t, err4, "inserts in the interior")
		assert.Equal(t, []int32{10, 20, 30, 40}, activeKeys(t, lf), "keys in increasing order")
		assertPartition(t, lf)

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("maintains prev links symmetric to next links", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		assert.NoError(t, lf.InsertOrdered(record(2, "b")), "inserts record")
		assert.NoError(t, lf.InsertOrdered(record(3, "c")), "inserts record")
		assert.NoError(t, lf.InsertOrdered(record(1, "a")), "inserts record")

		// Execute
		header, slots, err := lf.AllSlots()

		// Check
		assert.NoError(t, err, "gets all slots")
		prevNo := conf.NilLink
		current := header.FirstActive
		for current != conf.NilLink {
			slot := slots[current-1]
			assert.Equal(t, prevNo, slot.Prev, "prev link mirrors traversal")
			prevNo = current
			current = slot.Next
		}
		assert.Equal(t, header.LastActive, prevNo, "traversal terminates at tail")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type DuplicateKey when key is active", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		assert.NoError(t, lf.InsertOrdered(record(10, "ten")), "inserts record")

		// Execute
		err := lf.InsertOrdered(record(10, "other"))

		// Check
		assert.True(t, errors.Is(err, DuplicateKey{}), "duplicate key error")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type StoreFull when free list is exhausted", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 1)
		assert.NoError(t, lf.InsertOrdered(record(1, "a")), "inserts record")

		// Execute
		err := lf.InsertOrdered(record(2, "b"))

		// Check
		assert.True(t, errors.Is(err, StoreFull{}), "store full error")

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deletes head, interior and tail records", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 5)
		for i, name := range []string{"a", "b", "c", "d", "e"} {
			assert.NoError(t, lf.Insert(record(int32(i+1), name)), "inserts record")
		}

		// Execute
		errHead := lf.Delete(1)
		errMid := lf.Delete(3)
		errTail := lf.Delete(5)

		// Check
		assert.NoError(t, errHead, "deletes head")
		assert.NoError(t, errMid, "deletes interior")
		assert.NoError(t, errTail, "deletes tail")
		assert.Equal(t, []int32{2, 4}, activeKeys(t, lf), "remaining records in order")
		assertPartition(t, lf)

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("resets list roots when last record is deleted", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 3)
		assert.NoError(t, lf.Insert(record(1, "a")), "inserts record")

		// Execute
		err := lf.Delete(1)

		// Check
		assert.NoError(t, err, "deletes record")

		header, _, err := lf.AllSlots()
		assert.NoError(t, err, "gets header")
		assert.Equal(t, int32(0), header.Count, "count is zero")
		assert.Equal(t, conf.NilLink, header.FirstActive, "head reset")
		assert.Equal(t, conf.NilLink, header.LastActive, "tail reset")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("released slot is cleared and first to be reused", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 3)
		assert.NoError(t, lf.Insert(record(1, "a")), "inserts record")
		assert.NoError(t, lf.Insert(record(2, "b")), "inserts record")
		assert.NoError(t, lf.Insert(record(3, "c")), "inserts record")

		// Execute
		err := lf.Delete(2)

		// Check
		assert.NoError(t, err, "deletes record")
		assert.Equal(t, []int32{2}, freeSlotNos(t, lf), "freed slot heads the free list")

		slot, err := lf.getSlot(2)
		assert.NoError(t, err, "gets freed slot")
		assert.Equal(t, conf.FreeKey, slot.Record.Key, "key cleared to free sentinel")
		assert.Equal(t, conf.NilLink, slot.Prev, "prev cleared")

		err = lf.Insert(record(4, "d"))
		assert.NoError(t, err, "insert after delete succeeds")

		_, slotNo, err := lf.Search(4)
		assert.NoError(t, err, "finds reinserted record")
		assert.Equal(t, int32(2), slotNo, "freed slot reused first")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("LIFO reuse order over several deletes", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 4)
		for i, name := range []string{"a", "b", "c", "d"} {
			assert.NoError(t, lf.Insert(record(int32(i+1), name)), "inserts record")
		}
		assert.NoError(t, lf.Delete(2), "deletes record")
		assert.NoError(t, lf.Delete(4), "deletes record")

		// Execute
		slotNos := freeSlotNos(t, lf)

		// Check
		assert.Equal(t, []int32{4, 2}, slotNos, "most recently freed slot first")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("error of type NotFound leaves header untouched", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 3)
		assert.NoError(t, lf.Insert(record(1, "a")), "inserts record")
		headerBefore, _, err := lf.AllSlots()
		assert.NoError(t, err, "gets header")

		// Execute
		err = lf.Delete(9)

		// Check
		assert.True(t, errors.Is(err, NotFound{}), "not found error")

		headerAfter, _, err := lf.AllSlots()
		assert.NoError(t, err, "gets header")
		assert.Equal(t, headerBefore, headerAfter, "header unchanged")

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestScenario(t *testing.T) {
	t.Run("fill, overflow, delete and reuse at capacity 3", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 3)

		header, _, err := lf.AllSlots()
		assert.NoError(t, err, "gets header")
		assert.Equal(t, int32(0), header.Count, "initialized empty")
		assert.Equal(t, conf.NilLink, header.FirstActive, "initialized empty")
		assert.Equal(t, conf.NilLink, header.LastActive, "initialized empty")
		assert.Equal(t, int32(1), header.FreeHead, "free list starts at slot 1")

		// Execute / Check step by step
		assert.NoError(t, lf.Insert(record(1, "A")), "inserts A")
		assert.NoError(t, lf.Insert(record(2, "B")), "inserts B")
		assert.NoError(t, lf.Insert(record(3, "C")), "inserts C")
		assert.Equal(t, []int32{1, 2, 3}, activeKeys(t, lf), "active order after fill")

		header, _, err = lf.AllSlots()
		assert.NoError(t, err, "gets header")
		assert.Equal(t, int32(3), header.Count, "count 3")
		assert.Equal(t, conf.NilLink, header.FreeHead, "free list exhausted")

		err = lf.Insert(record(4, "D"))
		assert.True(t, errors.Is(err, StoreFull{}), "insert into full store fails")
		assert.Equal(t, []int32{1, 2, 3}, activeKeys(t, lf), "state unchanged after failed insert")

		assert.NoError(t, lf.Delete(2), "deletes key 2")
		assert.Equal(t, []int32{1, 3}, activeKeys(t, lf), "active order after delete")

		header, _, err = lf.AllSlots()
		assert.NoError(t, err, "gets header")
		assert.Equal(t, int32(2), header.Count, "count 2")
		assert.Equal(t, int32(2), header.FreeHead, "freed slot heads the free list")

		assert.NoError(t, lf.Insert(record(4, "D")), "insert succeeds after delete")
		assert.Equal(t, []int32{1, 3, 4}, activeKeys(t, lf), "active order after reuse")

		_, slotNo, err := lf.Search(4)
		assert.NoError(t, err, "finds key 4")
		assert.Equal(t, int32(2), slotNo, "reuses the freed slot")

		_, _, err = lf.Search(2)
		assert.True(t, errors.Is(err, NotFound{}), "key 2 no longer found")

		assertPartition(t, lf)

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestIterators(t *testing.T) {
	t.Run("active iterator error when exhausted", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 2)

		// Execute
		iter, err := lf.ActiveList()
		assert.NoError(t, err, "gets active list iterator")

		// Check
		assert.False(t, iter.HasNext(), "empty list has no next")
		_, err = iter.Next()
		assert.True(t, errors.Is(err, NotFound{}), "next on exhausted iterator gives NotFound")

		// Clean up
		dropTestStore(t, lf)
	})

	t.Run("free iterator covers whole initial free chain", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 4)

		// Execute
		slotNos := freeSlotNos(t, lf)

		// Check
		assert.Equal(t, []int32{1, 2, 3, 4}, slotNos, "initial free chain in ascending order")

		// Clean up
		dropTestStore(t, lf)
	})
}

func TestNewLinkedFilesFromExistingFile(t *testing.T) {
	t.Run("reopens a store and keeps its contents", func(t *testing.T) {
		// Prepare
		lf := newTestStore(t, 3)
		assert.NoError(t, lf.Insert(record(1, "a")), "inserts record")
		assert.NoError(t, lf.Insert(record(2, "b")), "inserts record")
		lf.CloseFile()

		// Execute
		lf2, err := NewLinkedFilesFromExistingFile(testStore)

		// Check
		assert.NoError(t, err, "reopens store")
		assert.Equal(t, []int32{1, 2}, activeKeys(t, lf2), "contents preserved across reopen")

		sp := lf2.GetStorageParameters()
		assert.Equal(t, int32(3), sp.Capacity, "capacity preserved")

		// Clean up
		dropTestStore(t, lf2)
	})

	t.Run("error when store file doesn't exist", func(t *testing.T) {
		// Execute
		_, err := NewLinkedFilesFromExistingFile(testStore)

		// Check
		assert.Error(t, err, "missing store gives error")
	})
}
