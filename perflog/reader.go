/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package perflog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// CodeLoad is a decoded load record with its trailing payload.
type CodeLoad struct {
	CodeLoadRecord
	Name string
	Code []byte
}

// Dump is the content of a jitdump stream.
type Dump struct {
	Header  FileHeader
	Order   binary.ByteOrder
	Loads   []CodeLoad
	Closed  bool // a close record was seen
	Skipped int  // records of other kinds
}

// ReadDump parses a complete jitdump stream. A stream that ends inside a
// record is an error; one that ends between records is not.
func ReadDump(r io.Reader) (*Dump, error) {
	var raw [FileHeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("jitdump header: %w", err)
	}
	d := &Dump{}
	switch binary.LittleEndian.Uint32(raw[:]) {
	case Magic:
		d.Order = binary.LittleEndian
	case MagicSwapped:
		d.Order = binary.BigEndian
	default:
		return nil, fmt.Errorf("jitdump: bad magic %#x", binary.LittleEndian.Uint32(raw[:]))
	}
	d.Header.decode(raw[:], d.Order)
	if d.Header.Version != Version {
		return nil, fmt.Errorf("jitdump: unsupported version %d", d.Header.Version)
	}
	if d.Header.TotalSize < FileHeaderSize {
		return nil, fmt.Errorf("jitdump: header size %d too small", d.Header.TotalSize)
	}
	if _, err := io.CopyN(io.Discard, r, int64(d.Header.TotalSize-FileHeaderSize)); err != nil {
		return nil, fmt.Errorf("jitdump header: %w", noEOF(err))
	}

	for {
		var hraw [RecordHeaderSize]byte
		if _, err := io.ReadFull(r, hraw[:]); err != nil {
			if err == io.EOF {
				return d, nil
			}
			return nil, fmt.Errorf("jitdump record %d: %w", len(d.Loads)+d.Skipped, err)
		}
		var h RecordHeader
		h.decode(hraw[:], d.Order)
		if h.TotalSize < RecordHeaderSize {
			return nil, fmt.Errorf("jitdump: record size %d too small", h.TotalSize)
		}
		payload := int64(h.TotalSize - RecordHeaderSize)
		if h.Type != JITCodeLoad {
			// the declared size is untrusted, so skip without buffering
			if _, err := io.CopyN(io.Discard, r, payload); err != nil {
				return nil, fmt.Errorf("jitdump %v record: %w", h.Type, noEOF(err))
			}
		}
		switch h.Type {
		case JITCodeLoad:
			var body bytes.Buffer
			body.Write(hraw[:])
			// grows with the bytes actually present, not with TotalSize
			if _, err := io.CopyN(&body, r, payload); err != nil {
				return nil, fmt.Errorf("jitdump %v record: %w", h.Type, noEOF(err))
			}
			load, err := decodeLoad(body.Bytes(), d.Order)
			if err != nil {
				return nil, err
			}
			d.Loads = append(d.Loads, load)
		case JITCodeClose:
			d.Closed = true
		default:
			d.Skipped++
		}
	}
}

func decodeLoad(body []byte, order binary.ByteOrder) (CodeLoad, error) {
	var load CodeLoad
	if len(body) < CodeLoadRecordSize {
		return load, fmt.Errorf("jitdump: load record of %d bytes", len(body))
	}
	load.decode(body, order)
	rest := body[CodeLoadRecordSize:]
	nul := bytes.IndexByte(rest, 0)
	if nul < 0 {
		return load, errors.New("jitdump: load record name is not terminated")
	}
	load.Name = string(rest[:nul])
	load.Code = rest[nul+1:]
	if uint64(len(load.Code)) != load.CodeSize {
		return load, fmt.Errorf("jitdump: %s declares %d code bytes, record holds %d", load.Name, load.CodeSize, len(load.Code))
	}
	return load, nil
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
