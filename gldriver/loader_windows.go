// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package gldriver

import (
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

var opengl32 = syscall.NewLazySystemDLL("opengl32.dll")

// withSystemFallback resolves the OpenGL 1.1 entry points that
// wglGetProcAddress refuses to return from opengl32.dll.
func withSystemFallback(load func(name string) unsafe.Pointer) func(name string) unsafe.Pointer {
	return func(name string) unsafe.Pointer {
		if p := load(name); p != nil {
			return p
		}
		proc := opengl32.NewProc(name)
		if proc.Find() != nil {
			return nil
		}
		return unsafe.Pointer(proc.Addr())
	}
}
