package filelinkedlist

import (
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/model"
	"github.com/gostonefire/filelinkedlist/internal/storage"
)

// FileManagement - Interface for any file management implementation
type FileManagement interface {
	CloseFile()
	RemoveFile() (err error)
	Search(key int32) (record model.Record, slotNo int32, err error)
	Insert(record model.Record) (err error)
	InsertOrdered(record model.Record) (err error)
	Delete(key int32) (err error)
	AllSlots() (header model.Header, slots []model.Slot, err error)
	ActiveList() (iter *storage.ActiveSlots, err error)
	FreeList() (iter *storage.FreeSlots, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// ListInfo - Information structure containing some information about the store file created
//   - Capacity is the fixed number of records the store file can hold
//   - SlotLength is the size of one storage unit, shared by the header and every data slot
//   - NameLength is the fixed width of the name field in each record
//   - FileSize is the total size of the store file created
type ListInfo struct {
	Capacity   int32
	SlotLength int64
	NameLength int64
	FileSize   int64
}

// ListStat - Statistics on the overall usage of the store file
//   - Records is the number of active records
//   - FreeSlots is the number of slots available for insertion
//   - Capacity is the fixed total number of slots
type ListStat struct {
	Records   int32
	FreeSlots int32
	Capacity  int32
}

// FileLinkedList - The main implementation struct
type FileLinkedList struct {
	fileManagement FileManagement
	name           string
	// CloseFile - Closes the store file. Use this preferably in a "defer" directly
	// after a NewFileLinkedList or NewFromExistingFile.
	CloseFile func()
	// RemoveFile - Removes the store file if it exists.
	// The function first internally closes it using CloseFile.
	RemoveFile func() error
}

// NewFileLinkedList - Returns a new store file prepared to hold a fixed number of records.
// The file is created with an empty active list and all capacity slots chained into the
// free list in ascending slot number order.
//   - name is the name of the file linked list and will be used to form the file name
//   - capacity is the fixed number of records the store file can hold, it is never resized
//
// It returns:
//   - fileLinkedList is a pointer to a FileLinkedList struct
//   - listInfo is a ListInfo struct containing some data regarding the store file created
//   - err is a normal Go Error which should be nil if everything went ok
func NewFileLinkedList(name string, capacity int32) (fileLinkedList *FileLinkedList, listInfo ListInfo, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if name is empty
	if name == "" {
		err = fmt.Errorf("name can not be empty, it will be used to name the physical file")
		return
	}

	lfConf := storage.LinkedFilesConf{
		Name:     name,
		Capacity: capacity,
	}

	var fm FileManagement
	fm, err = storage.NewLinkedFiles(lfConf)
	if err != nil {
		return
	}

	// Prepare return data
	fileLinkedList = &FileLinkedList{
		fileManagement: fm,
		name:           name,
		CloseFile:      func() { fm.CloseFile() },
		RemoveFile: func() error {
			fm.CloseFile()
			return fm.RemoveFile()
		},
	}

	sp := fm.GetStorageParameters()

	listInfo = ListInfo{
		Capacity:   sp.Capacity,
		SlotLength: sp.SlotLength,
		NameLength: sp.NameLength,
		FileSize:   sp.StoreFileSize,
	}

	return
}

// NewFromExistingFile - Opens an existing store file. The file must have a valid header
// and a file size conforming with the capacity the header indicates.
//   - name is the name of an existing file linked list.
//
// It returns:
//   - fileLinkedList is a pointer to a FileLinkedList struct
//   - listInfo is a ListInfo struct containing some data regarding the store file opened
//   - err is a normal Go Error which should be nil if everything went ok
func NewFromExistingFile(name string) (fileLinkedList *FileLinkedList, listInfo ListInfo, err error) {
	var fm FileManagement
	fm, err = storage.NewLinkedFilesFromExistingFile(name)
	if err != nil {
		return
	}

	// Prepare return data
	fileLinkedList = &FileLinkedList{
		fileManagement: fm,
		name:           name,
		CloseFile:      func() { fm.CloseFile() },
		RemoveFile: func() error {
			fm.CloseFile()
			return fm.RemoveFile()
		},
	}

	sp := fm.GetStorageParameters()

	listInfo = ListInfo{
		Capacity:   sp.Capacity,
		SlotLength: sp.SlotLength,
		NameLength: sp.NameLength,
		FileSize:   sp.StoreFileSize,
	}

	return
}
