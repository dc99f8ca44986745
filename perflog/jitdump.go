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
	"encoding/binary"
	"fmt"
	"runtime"
)

// Binary layout of the perf jitdump format, version 1. See
// tools/perf/Documentation/jitdump-specification.txt in the linux tree.
// Every integer is written in the byte order of the producing machine; the
// magic tells readers which one that was.
const (
	Magic        uint32 = 0x4A695444 // "JiTD"
	MagicSwapped uint32 = 0x4454694A
	Version      uint32 = 1

	FileHeaderSize     = 40
	RecordHeaderSize   = 16
	CodeLoadRecordSize = RecordHeaderSize + 40
)

// ELF e_machine values of the architectures we emit code for.
const (
	MachineX86     uint32 = 0x03
	MachineARM     uint32 = 0x28
	MachineX86_64  uint32 = 0x3E
	MachineARM64   uint32 = 0xB7
	MachineRISCV64 uint32 = 0xF3
)

// ElfMachine maps a GOARCH value to its ELF machine id.
func ElfMachine(goarch string) (uint32, bool) {
	switch goarch {
	case "386":
		return MachineX86, true
	case "amd64":
		return MachineX86_64, true
	case "arm64":
		return MachineARM64, true
	case "arm":
		return MachineARM, true
	case "riscv64":
		return MachineRISCV64, true
	}
	return 0, false
}

type RecordType uint32

const (
	JITCodeLoad RecordType = iota
	JITCodeMove
	JITCodeDebugInfo
	JITCodeClose
	JITCodeUnwindingInfo
)

func (t RecordType) String() string {
	switch t {
	case JITCodeLoad:
		return "JITCodeLoad"
	case JITCodeMove:
		return "JITCodeMove"
	case JITCodeDebugInfo:
		return "JITCodeDebugInfo"
	case JITCodeClose:
		return "JITCodeClose"
	case JITCodeUnwindingInfo:
		return "JITCodeUnwindingInfo"
	}
	return fmt.Sprintf("RecordType(%d)", uint32(t))
}

type FileHeader struct {
	Magic      uint32
	Version    uint32
	TotalSize  uint32
	ElfMachine uint32
	Padding1   uint32
	Pid        uint32
	Timestamp  uint64
	Flags      uint64
}

// NewFileHeader fills in the constant fields for the running architecture.
func NewFileHeader(pid uint32, timestamp uint64) FileHeader {
	machine, ok := ElfMachine(runtime.GOARCH)
	if !ok {
		panic("perflog: no ELF machine id for " + runtime.GOARCH)
	}
	return FileHeader{
		Magic:      Magic,
		Version:    Version,
		TotalSize:  FileHeaderSize,
		ElfMachine: machine,
		Pid:        pid,
		Timestamp:  timestamp,
	}
}

func (h *FileHeader) AppendTo(b []byte, order binary.AppendByteOrder) []byte {
	b = order.AppendUint32(b, h.Magic)
	b = order.AppendUint32(b, h.Version)
	b = order.AppendUint32(b, h.TotalSize)
	b = order.AppendUint32(b, h.ElfMachine)
	b = order.AppendUint32(b, h.Padding1)
	b = order.AppendUint32(b, h.Pid)
	b = order.AppendUint64(b, h.Timestamp)
	return order.AppendUint64(b, h.Flags)
}

func (h *FileHeader) decode(b []byte, order binary.ByteOrder) {
	h.Magic = order.Uint32(b[0:])
	h.Version = order.Uint32(b[4:])
	h.TotalSize = order.Uint32(b[8:])
	h.ElfMachine = order.Uint32(b[12:])
	h.Padding1 = order.Uint32(b[16:])
	h.Pid = order.Uint32(b[20:])
	h.Timestamp = order.Uint64(b[24:])
	h.Flags = order.Uint64(b[32:])
}

type RecordHeader struct {
	Type      RecordType
	TotalSize uint32
	Timestamp uint64
}

func (h *RecordHeader) AppendTo(b []byte, order binary.AppendByteOrder) []byte {
	b = order.AppendUint32(b, uint32(h.Type))
	b = order.AppendUint32(b, h.TotalSize)
	return order.AppendUint64(b, h.Timestamp)
}

func (h *RecordHeader) decode(b []byte, order binary.ByteOrder) {
	h.Type = RecordType(order.Uint32(b[0:]))
	h.TotalSize = order.Uint32(b[4:])
	h.Timestamp = order.Uint64(b[8:])
}

// CodeLoadRecord is followed in the stream by the NUL terminated name and
// CodeSize bytes of machine code.
type CodeLoadRecord struct {
	Header      RecordHeader
	Pid         uint32
	Tid         uint32
	VMA         uint64
	CodeAddress uint64
	CodeSize    uint64
	CodeIndex   uint64
}

// RecordSize is the total size of a load record for a name and code size.
func RecordSize(name string, codeSize int) uint32 {
	return uint32(CodeLoadRecordSize + len(name) + 1 + codeSize)
}

func (r *CodeLoadRecord) AppendTo(b []byte, order binary.AppendByteOrder) []byte {
	b = r.Header.AppendTo(b, order)
	b = order.AppendUint32(b, r.Pid)
	b = order.AppendUint32(b, r.Tid)
	b = order.AppendUint64(b, r.VMA)
	b = order.AppendUint64(b, r.CodeAddress)
	b = order.AppendUint64(b, r.CodeSize)
	return order.AppendUint64(b, r.CodeIndex)
}

func (r *CodeLoadRecord) decode(b []byte, order binary.ByteOrder) {
	r.Header.decode(b, order)
	b = b[RecordHeaderSize:]
	r.Pid = order.Uint32(b[0:])
	r.Tid = order.Uint32(b[4:])
	r.VMA = order.Uint64(b[8:])
	r.CodeAddress = order.Uint64(b[16:])
	r.CodeSize = order.Uint64(b[24:])
	r.CodeIndex = order.Uint64(b[32:])
}
