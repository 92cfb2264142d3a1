package file

import (
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/filelinkedlist/internal/conf"
	"github.com/gostonefire/filelinkedlist/internal/model"
)

// bytesToHeader - Converts a slice of bytes to a Header struct
func bytesToHeader(buf []byte) (header model.Header) {
	header = model.Header{
		Count:       int32(binary.LittleEndian.Uint32(buf[conf.CountOffset:])),
		FirstActive: int32(binary.LittleEndian.Uint32(buf[conf.FirstActiveOffset:])),
		LastActive:  int32(binary.LittleEndian.Uint32(buf[conf.LastActiveOffset:])),
		FreeHead:    int32(binary.LittleEndian.Uint32(buf[conf.FreeHeadOffset:])),
		Capacity:    int32(binary.LittleEndian.Uint32(buf[conf.CapacityOffset:])),
	}

	return
}

// headerToBytes - Converts a Header struct to a slice of bytes padded to one full storage unit
func headerToBytes(header model.Header) (buf []byte) {
	buf = make([]byte, conf.HeaderLength)

	binary.LittleEndian.PutUint32(buf[conf.CountOffset:], uint32(header.Count))
	binary.LittleEndian.PutUint32(buf[conf.FirstActiveOffset:], uint32(header.FirstActive))
	binary.LittleEndian.PutUint32(buf[conf.LastActiveOffset:], uint32(header.LastActive))
	binary.LittleEndian.PutUint32(buf[conf.FreeHeadOffset:], uint32(header.FreeHead))
	binary.LittleEndian.PutUint32(buf[conf.CapacityOffset:], uint32(header.Capacity))

	return
}

// bytesToSlot - Converts slot raw data to a Slot struct
func bytesToSlot(buf []byte, slotNo int32) (slot model.Slot, err error) {
	actual := int64(len(buf))
	if conf.SlotLength > actual {
		err = fmt.Errorf("length of data in buf (%d) less than slot size (%d)", actual, conf.SlotLength)
		return
	}

	name := make([]byte, conf.NameLength)
	_ = copy(name, buf[conf.NameOffset:conf.NameOffset+conf.NameLength])

	key := int32(binary.LittleEndian.Uint32(buf[conf.KeyOffset:]))

	slot = model.Slot{
		SlotNo: slotNo,
		Next:   int32(binary.LittleEndian.Uint32(buf[conf.NextOffset:])),
		Prev:   int32(binary.LittleEndian.Uint32(buf[conf.PrevOffset:])),
		InUse:  key != conf.FreeKey,
		Record: model.Record{
			Key:  key,
			Name: name,
		},
	}

	return
}

// slotToBytes - Converts a Slot struct to a slice of bytes, the name field being
// zero padded up to its fixed width
func slotToBytes(slot model.Slot) (buf []byte) {
	buf = make([]byte, conf.SlotLength)

	binary.LittleEndian.PutUint32(buf[conf.NextOffset:], uint32(slot.Next))
	binary.LittleEndian.PutUint32(buf[conf.PrevOffset:], uint32(slot.Prev))
	binary.LittleEndian.PutUint32(buf[conf.KeyOffset:], uint32(slot.Record.Key))
	_ = copy(buf[conf.NameOffset:conf.NameOffset+conf.NameLength], slot.Record.Name)

	return
}
