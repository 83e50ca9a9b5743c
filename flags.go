// SPDX-License-Identifier: Unlicense OR MIT

package grr

import (
	"fmt"
	"strings"

	"gioui.org/grr/internal/gl"
)

// MemoryFlags describe how the memory of a buffer is accessed.
type MemoryFlags uint8

// MappingFlags modify a single buffer mapping.
type MappingFlags uint8

// CreationFlags are the storage flags a buffer was allocated with.
type CreationFlags uint32

// AccessFlags are the access bits of a buffer mapping.
type AccessFlags uint32

const (
	// MemoryDeviceLocal places the memory close to the device. Without
	// it the storage is hinted to live in client memory.
	MemoryDeviceLocal MemoryFlags = 1 << iota
	// MemoryCoherent makes host and device writes visible without
	// explicit flushes.
	MemoryCoherent
	// MemoryCPUMapRead allows persistent mappings for reading.
	MemoryCPUMapRead
	// MemoryCPUMapWrite allows persistent mappings for writing.
	MemoryCPUMapWrite
	// MemoryDynamic allows updates through CopyHostToBuffer.
	MemoryDynamic
)

const (
	MappingUnsynchronized MappingFlags = 1 << iota
)

var memoryFlagNames = []flagName[MemoryFlags]{
	{MemoryDeviceLocal, "DeviceLocal"},
	{MemoryCoherent, "Coherent"},
	{MemoryCPUMapRead, "CPUMapRead"},
	{MemoryCPUMapWrite, "CPUMapWrite"},
	{MemoryDynamic, "Dynamic"},
}

var mappingFlagNames = []flagName[MappingFlags]{
	{MappingUnsynchronized, "Unsynchronized"},
}

// Contains reports whether every flag of o is set in f.
func (f MemoryFlags) Contains(o MemoryFlags) bool { return f&o == o }

// Union returns the flags set in f or o.
func (f MemoryFlags) Union(o MemoryFlags) MemoryFlags { return f | o }

// Intersect returns the flags set in both f and o.
func (f MemoryFlags) Intersect(o MemoryFlags) MemoryFlags { return f & o }

// Remove returns f without the flags of o.
func (f MemoryFlags) Remove(o MemoryFlags) MemoryFlags { return f &^ o }

// IsEmpty reports whether no flag is set.
func (f MemoryFlags) IsEmpty() bool { return f == 0 }

func (f MemoryFlags) String() string { return flagString(f, memoryFlagNames) }

// Contains reports whether every flag of o is set in f.
func (f MappingFlags) Contains(o MappingFlags) bool { return f&o == o }

func (f MappingFlags) String() string { return flagString(f, mappingFlagNames) }

// CreationFlags translates memory intent into buffer storage flags.
// The rules are additive.
func (f MemoryFlags) CreationFlags() CreationFlags {
	var flags CreationFlags
	if !f.Contains(MemoryDeviceLocal) {
		flags |= gl.CLIENT_STORAGE_BIT
	}
	if f.Contains(MemoryCoherent) {
		flags |= gl.MAP_COHERENT_BIT | gl.MAP_PERSISTENT_BIT
	}
	if f.Contains(MemoryCPUMapRead) {
		flags |= gl.MAP_READ_BIT | gl.MAP_PERSISTENT_BIT
	}
	if f.Contains(MemoryCPUMapWrite) {
		flags |= gl.MAP_WRITE_BIT | gl.MAP_PERSISTENT_BIT
	}
	if f.Contains(MemoryDynamic) {
		flags |= gl.DYNAMIC_STORAGE_BIT
	}
	return flags
}

// MappingAccess returns the access bits for mapping a buffer created
// with stored. Only the unsynchronized bit is not capped by the
// creation flags.
func MappingAccess(stored CreationFlags, requested MappingFlags) AccessFlags {
	var access AccessFlags
	if requested.Contains(MappingUnsynchronized) {
		access |= gl.MAP_UNSYNCHRONIZED_BIT
	}
	const mask = gl.MAP_COHERENT_BIT | gl.MAP_PERSISTENT_BIT | gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
	access |= AccessFlags(stored & mask)
	return access
}

type flagName[T ~uint8 | ~uint32] struct {
	flag T
	name string
}

func flagString[T ~uint8 | ~uint32](f T, names []flagName[T]) string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, n := range names {
		if f&n.flag == n.flag {
			parts = append(parts, n.name)
			f &^= n.flag
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(f)))
	}
	return strings.Join(parts, "|")
}
