package vm

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Snapshot is a sparse, deterministic document of machine state. Only
// non-zero registers and memory cells appear, so the document size tracks
// touched state rather than capacity. Two snapshots of an unmodified
// machine are byte-for-byte identical.
type Snapshot struct {
	XMLName   xml.Name           `xml:"uvm_memory_dump"`
	Info      SnapshotInfo       `xml:"program_info"`
	Registers []SnapshotRegister `xml:"registers>register"`
	Memory    SnapshotMemory     `xml:"data_memory"`
}

// SnapshotInfo holds the execution counters and the program counter.
type SnapshotInfo struct {
	InstructionsExecuted int    `xml:"instructions_executed"`
	MemoryReads          int    `xml:"memory_reads"`
	MemoryWrites         int    `xml:"memory_writes"`
	ProgramCounter       uint32 `xml:"program_counter"`
}

// SnapshotRegister is one non-zero register.
type SnapshotRegister struct {
	Id    int    `xml:"id,attr"`
	Value uint32 `xml:"value,attr"`
	Hex   string `xml:"hex,attr"`
}

// SnapshotCell is one non-zero data-memory word.
type SnapshotCell struct {
	Address int    `xml:"address,attr"`
	Value   uint32 `xml:"value,attr"`
	Hex     string `xml:"hex,attr"`
}

// SnapshotMemory is the sparse data-memory section, tagged with the
// requested address range and the total capacity.
type SnapshotMemory struct {
	StartAddress int            `xml:"start_address,attr"`
	EndAddress   int            `xml:"end_address,attr"`
	TotalSize    int            `xml:"total_size,attr"`
	Cells        []SnapshotCell `xml:"memory_cell"`
}

// Snapshot captures the machine state over the [start, end) data address
// range. The range is clamped to the data-memory capacity.
func (mach *Machine) Snapshot(start int, end int) (snap *Snapshot) {
	if start < 0 {
		start = 0
	}
	if end > len(mach.DataMemory) {
		end = len(mach.DataMemory)
	}
	if end < start {
		end = start
	}

	snap = &Snapshot{
		Info: SnapshotInfo{
			InstructionsExecuted: mach.Stats.InstructionsExecuted,
			MemoryReads:          mach.Stats.MemoryReads,
			MemoryWrites:         mach.Stats.MemoryWrites,
			ProgramCounter:       mach.Pc,
		},
		Memory: SnapshotMemory{
			StartAddress: start,
			EndAddress:   end,
			TotalSize:    len(mach.DataMemory),
		},
	}

	for id, value := range mach.Register {
		if value != 0 {
			snap.Registers = append(snap.Registers, SnapshotRegister{
				Id:    id,
				Value: value,
				Hex:   fmt.Sprintf("0x%X", value),
			})
		}
	}

	for addr := start; addr < end; addr++ {
		value := mach.DataMemory[addr]
		if value != 0 {
			snap.Memory.Cells = append(snap.Memory.Cells, SnapshotCell{
				Address: addr,
				Value:   value,
				Hex:     fmt.Sprintf("0x%X", value),
			})
		}
	}

	return
}

// Marshal renders the snapshot as an indented XML document.
func (snap *Snapshot) Marshal() (text []byte, err error) {
	text, err = xml.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}
	text = append([]byte(xml.Header), text...)
	text = append(text, '\n')

	return
}

// WriteSnapshot captures and writes the XML artifact in one call. The
// document is fully built in memory before any byte is written.
func (mach *Machine) WriteSnapshot(w io.Writer, start int, end int) (err error) {
	text, err := mach.Snapshot(start, end).Marshal()
	if err != nil {
		return
	}
	_, err = w.Write(text)

	return
}
