package mbus

// dataFieldEntry is one row of the 16-entry Data Field Table (§4.1, low
// nibble of the DIF byte): how many value bytes follow and which decoder
// kind interprets them. lvar marks the one entry (0b1101) whose length is
// not fixed but signaled by a following LVAR byte.
type dataFieldEntry struct {
	length  int
	decoder decoderKind
	lvar    bool
}

// dataFieldTable is indexed directly by the DIF low nibble.
var dataFieldTable = [16]dataFieldEntry{
	0x0: {length: 0, decoder: decNone},
	0x1: {length: 1, decoder: decUintLE},
	0x2: {length: 2, decoder: decUintLE},
	0x3: {length: 3, decoder: decUintLE},
	0x4: {length: 4, decoder: decUintLE},
	0x5: {length: 4, decoder: decUnimplemented}, // REAL32, not implemented (§9)
	0x6: {length: 6, decoder: decUnimplemented}, // INT48, not implemented (§9)
	0x7: {length: 8, decoder: decUnimplemented}, // INT64, not implemented (§9)
	0x8: {length: 0, decoder: decNone},
	0x9: {length: 1, decoder: decBCD},
	0xA: {length: 2, decoder: decBCD},
	0xB: {length: 3, decoder: decBCD},
	0xC: {length: 4, decoder: decBCD},
	0xD: {length: 0, decoder: decASCII, lvar: true},
	0xE: {length: 6, decoder: decBCD},
	0xF: {length: 0, decoder: decNone}, // special function, not a data record
}

// difField holds the decoded contents of a DIF byte plus any DIFE extension
// chain (§4.1): the accumulated storage number and tariff, and the record's
// function code.
type difField struct {
	function   Function
	storage    uint64
	tariff     uint64
	deviceUnit int
	entry      dataFieldEntry
	nbytes     int // DIF + DIFE byte count consumed
}

// parseDIF reads the DIF byte and its DIFE extension chain starting at
// data[0], accumulating storage number and tariff across the chain exactly
// as the source's bit layout does: DIFE bits 0-3 contribute to the storage
// number and bits 4-5 to the tariff, bit 6 contributes a device/sub-unit
// number, and bit 7 is the continuation flag.
func parseDIF(data []byte) (difField, error) {
	if len(data) == 0 {
		return difField{}, &FrameError{Reason: "truncated DIF"}
	}
	dif := data[0]
	f := difField{
		function: Function((dif >> 4) & 0x03),
		storage:  uint64((dif >> 6) & 0x01),
		entry:    dataFieldTable[dif&0x0F],
		nbytes:   1,
	}

	storageShift := uint(1)
	tariffShift := uint(0)
	pos := 1
	for dif&0x80 != 0 {
		if pos >= len(data) {
			return difField{}, &FrameError{Reason: "truncated DIFE chain"}
		}
		dife := data[pos]
		f.storage |= uint64(dife&0x0F) << storageShift
		f.tariff |= uint64((dife>>4)&0x03) << tariffShift
		f.deviceUnit |= int((dife>>6)&0x01) << uint(pos-1)
		storageShift += 4
		tariffShift += 2
		f.nbytes++
		pos++
		dif = dife
	}
	return f, nil
}
