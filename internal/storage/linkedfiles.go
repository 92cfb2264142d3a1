package storage

import (
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/file"
	"github.com/gostonefire/filelinkedlist/internal/model"
	"os"
)

// LinkedFilesConf - Is a struct to be passed in the call to NewLinkedFiles and contains
// configuration that affects file processing.
//   - Name is the name to base the store file name on
//   - Capacity is the fixed number of data slots the store file will hold
type LinkedFilesConf struct {
	Name     string
	Capacity int32
}

// LinkedFiles - Represents an implementation of file support for the doubly linked slot store.
// It uses one single file where slot number 0 holds the header and slot numbers 1 through
// capacity hold data slots, each slot being either active (in the doubly linked active list)
// or free (in the singly linked free list).
type LinkedFiles struct {
	storeFileName string
	storeFile     *os.File
	capacity      int32
	storeFileSize int64
}

// NewLinkedFiles - Returns a pointer to a new instance of the linked slot store file implementation.
// It always creates a new file (or opens and truncates an existing file), the header initialized
// to an empty active list and all capacity slots chained into the free list.
//   - lfConf is a LinkedFilesConf struct providing configuration parameters affecting file creation and processing
//
// It returns:
//   - linkedFiles which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLinkedFiles(lfConf LinkedFilesConf) (linkedFiles *LinkedFiles, err error) {
	linkedFiles = &LinkedFiles{
		storeFileName: fmt.Sprintf("%s-store.bin", lfConf.Name),
		capacity:      lfConf.Capacity,
		storeFileSize: file.StoreFileSize(lfConf.Capacity),
	}

	linkedFiles.storeFile, err = file.CreateNewStoreFile(linkedFiles.storeFileName, lfConf.Capacity)
	if err != nil {
		return
	}

	return
}

// NewLinkedFilesFromExistingFile - Returns a pointer to a new instance of the linked slot store
// file implementation given an existing file. If the file doesn't exist, doesn't have a valid
// header or if its file size doesn't conform with the capacity from the header it fails with error.
//   - name is the name the store file name is based on
//
// It returns:
//   - linkedFiles which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLinkedFilesFromExistingFile(name string) (linkedFiles *LinkedFiles, err error) {
	storeFileName := fmt.Sprintf("%s-store.bin", name)

	linkedFiles = &LinkedFiles{storeFileName: storeFileName}

	storeFile, header, err := file.OpenStoreFile(storeFileName)
	if err != nil {
		return
	}

	linkedFiles.storeFile = storeFile
	linkedFiles.capacity = header.Capacity
	linkedFiles.storeFileSize = file.StoreFileSize(header.Capacity)

	return
}

// CloseFile - Closes the store file
func (L *LinkedFiles) CloseFile() {
	file.CloseFile(L.storeFile)
}

// RemoveFile - Removes the store file, make sure to close it first using CloseFile
func (L *LinkedFiles) RemoveFile() (err error) {
	return file.RemoveFile(L.storeFileName)
}

// GetStorageParameters - Returns a struct with storage parameters from the opened store file
func (L *LinkedFiles) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Capacity:      L.capacity,
		SlotLength:    conf.SlotLength,
		NameLength:    conf.NameLength,
		StoreFileSize: L.storeFileSize,
	}

	return
}

// getHeader - Reads the header from the store file
func (L *LinkedFiles) getHeader() (header model.Header, err error) {
	return file.GetHeader(L.storeFile)
}

// setHeader - Writes the header to the store file
func (L *LinkedFiles) setHeader(header model.Header) (err error) {
	return file.SetHeader(L.storeFile, header)
}

// getSlot - Reads one slot from the store file
func (L *LinkedFiles) getSlot(slotNo int32) (slot model.Slot, err error) {
	return file.GetSlot(L.storeFile, slotNo, L.capacity)
}

// setSlot - Writes one slot to the store file
func (L *LinkedFiles) setSlot(slot model.Slot) (err error) {
	return file.SetSlot(L.storeFile, slot, L.capacity)
}
