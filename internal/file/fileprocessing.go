package file

import (
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
	"io"
	"os"
)

// SlotAddress - Returns the byte offset in file for a given slot number.
// Slot numbers are 1-based, slot number 0 is the header region and is never
// addressed through this function.
func SlotAddress(slotNo, capacity int32) (address int64, err error) {
	if slotNo < 1 || slotNo > capacity {
		err = fmt.Errorf("slot number %d outside valid range 1 - %d", slotNo, capacity)
		return
	}

	address = conf.SlotLength * int64(slotNo)

	return
}

// GetHeader - Reads header data from file and returns it as a model.Header struct
func GetHeader(f *os.File) (header model.Header, err error) {
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.HeaderLength)
	_, err = f.Read(buf)
	if err != nil {
		return
	}

	header = bytesToHeader(buf)

	return
}

// SetHeader - Takes a model.Header struct and writes header data to file
func SetHeader(f *os.File, header model.Header) (err error) {
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return
	}

	buf := headerToBytes(header)

	_, err = f.Write(buf)

	return
}

// GetSlot - Reads one full slot from file and returns it as a model.Slot struct
func GetSlot(f *os.File, slotNo, capacity int32) (slot model.Slot, err error) {
	address, err := SlotAddress(slotNo, capacity)
	if err != nil {
		return
	}

	_, err = f.Seek(address, io.SeekStart)
	if err != nil {
		return
	}

	buf := make([]byte, conf.SlotLength)
	_, err = f.Read(buf)
	if err != nil {
		return
	}

	slot, err = bytesToSlot(buf, slotNo)

	return
}

// SetSlot - Writes one full slot to file
func SetSlot(f *os.File, slot model.Slot, capacity int32) (err error) {
	address, err := SlotAddress(slot.SlotNo, capacity)
	if err != nil {
		return
	}

	_, err = f.Seek(address, io.SeekStart)
	if err != nil {
		return
	}

	buf := slotToBytes(slot)

	_, err = f.Write(buf)

	return
}

// StoreFileSize - Returns the expected file size given a capacity, being the
// header unit plus capacity slot units
func StoreFileSize(capacity int32) (fileSize int64) {
	fileSize = conf.SlotLength * (int64(capacity) + 1)

	return
}

// OpenStoreFile - Opens the store file and does some rudimentary checks of its validity
func OpenStoreFile(fileName string) (filePtr *os.File, header model.Header, err error) {
	if stat, ok := os.Stat(fileName); ok == nil {
		filePtr, err = os.OpenFile(fileName, os.O_RDWR, 0644)
		if err != nil {
			err = fmt.Errorf("unable to open existing store file: %s", err)
			return
		}

		header, err = GetHeader(filePtr)
		if err != nil {
			_ = filePtr.Close()
			filePtr = nil
			err = fmt.Errorf("unable to read header from store file: %s", err)
			return
		}

		if header.Capacity < 1 {
			_ = filePtr.Close()
			filePtr = nil
			err = fmt.Errorf("header indicates invalid capacity %d", header.Capacity)
			return
		}

		if stat.Size() != StoreFileSize(header.Capacity) {
			_ = filePtr.Close()
			filePtr = nil
			err = fmt.Errorf("actual file size doesn't conform with header indicated capacity")
			return
		}

		if header.Count < 0 || header.Count > header.Capacity {
			_ = filePtr.Close()
			filePtr = nil
			err = fmt.Errorf("header indicates invalid record count %d", header.Count)
			return
		}
	} else {
		err = fmt.Errorf("store file not found")
		return
	}

	return
}

// CreateNewStoreFile - Creates a new store file and initializes it with a header and
// all capacity slots free, chained in ascending slot number order. If the file already
// exists it will first be truncated to zero length, hence deleting all existing data.
func CreateNewStoreFile(fileName string, capacity int32) (filePtr *os.File, err error) {
	fileSize := StoreFileSize(capacity)

	filePtr, err = os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		err = fmt.Errorf("error while open/create new store file: %s", err)
		return
	}
	err = filePtr.Truncate(fileSize)
	if err != nil {
		_ = filePtr.Close()
		filePtr = nil
		err = fmt.Errorf("error while truncate new store file to length %d: %s", fileSize, err)
		return
	}

	header := model.Header{
		Count:       0,
		FirstActive: conf.NilLink,
		LastActive:  conf.NilLink,
		FreeHead:    1,
		Capacity:    capacity,
	}

	err = SetHeader(filePtr, header)
	if err != nil {
		_ = filePtr.Close()
		filePtr = nil
		err = fmt.Errorf("error while writing header to store file: %s", err)
		return
	}

	// Chain all slots into the free list, the last one terminating the chain
	for i := int32(1); i <= capacity; i++ {
		next := i + 1
		if i == capacity {
			next = conf.NilLink
		}

		slot := model.Slot{
			SlotNo: i,
			Next:   next,
			Prev:   conf.NilLink,
			Record: model.Record{Key: conf.FreeKey, Name: make([]byte, conf.NameLength)},
		}

		err = SetSlot(filePtr, slot, capacity)
		if err != nil {
			_ = filePtr.Close()
			filePtr = nil
			err = fmt.Errorf("error while initializing free slot %d: %s", i, err)
			return
		}
	}

	return
}

// CloseFile - Closes the store file
func CloseFile(storeFile *os.File) {
	if storeFile != nil {
		_ = storeFile.Sync()
		_ = storeFile.Close()
	}
}

// RemoveFile - Removes the store file, make sure to close it first before calling this function
func RemoveFile(fileName string) (err error) {
	// Only try to remove if exists, and is not by accident a directory (could happen when testing things out)
	if stat, ok := os.Stat(fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(fileName)
			if err != nil {
				err = fmt.Errorf("error while removing store file: %s", err)
				return
			}
		}
	}

	return
}
