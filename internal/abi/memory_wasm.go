//go:build wasip1

package abi

import (
	"fmt"
	"sync"
	"unsafe"
)

// MaxTotalAllocations caps the memory the mod may hold in WASM linear
// memory for boundary transfers. Boundary payloads are small (log lines,
// draw calls, one snapshot); hitting the cap indicates a leak.
const MaxTotalAllocations = 16 * 1024 * 1024

// memoryManager pins every allocation handed to the client so the Go GC
// cannot collect or move it while the client still reads it.
var memoryManager = struct {
	sync.Mutex
	ptrs           map[uint32][]byte
	totalAllocated int
}{
	ptrs: make(map[uint32][]byte),
}

// allocate reserves linear memory the client can write into or read from.
//
//go:wasmexport allocate
func allocate(size uint32) uint32 {
	if size == 0 {
		return 0
	}

	memoryManager.Lock()
	defer memoryManager.Unlock()

	if memoryManager.totalAllocated+int(size) > MaxTotalAllocations {
		panic(fmt.Sprintf("abi: allocation limit exceeded (requested %d, held %d, limit %d)",
			size, memoryManager.totalAllocated, MaxTotalAllocations))
	}

	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))
	memoryManager.ptrs[ptr] = buf
	memoryManager.totalAllocated += int(size)
	return ptr
}

// deallocate unpins a previous allocation. Untracked pointers are ignored,
// making double frees harmless.
//
//go:wasmexport deallocate
func deallocate(ptr uint32, size uint32) {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	stored, ok := memoryManager.ptrs[ptr]
	if !ok {
		return
	}
	delete(memoryManager.ptrs, ptr)
	memoryManager.totalAllocated -= len(stored)
	if memoryManager.totalAllocated < 0 {
		memoryManager.totalAllocated = 0
	}
}

// FreeAllTracked unpins everything, typically during panic recovery so a
// failed callback does not leak pinned buffers.
func FreeAllTracked() {
	memoryManager.Lock()
	defer memoryManager.Unlock()

	for ptr := range memoryManager.ptrs {
		delete(memoryManager.ptrs, ptr)
	}
	memoryManager.totalAllocated = 0
}

// PtrFromBytes copies data into pinned linear memory and returns the packed
// pointer/length for handing to the client.
func PtrFromBytes(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	size := uint32(len(data))
	ptr := allocate(size)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), len(data))
	copy(dst, data)
	return PackPtrLen(ptr, size)
}

// BytesFromPtr copies the region a packed pointer/length describes out of
// linear memory into an owned slice.
func BytesFromPtr(packed uint64) []byte {
	ptr, length := UnpackPtrLen(packed)
	if ptr == 0 || length == 0 {
		return nil
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), length)
	data := make([]byte, length)
	copy(data, src)
	return data
}

// DeallocatePacked frees the region a packed pointer/length describes.
func DeallocatePacked(packed uint64) {
	ptr, length := UnpackPtrLen(packed)
	if ptr != 0 && length > 0 {
		deallocate(ptr, length)
	}
}
