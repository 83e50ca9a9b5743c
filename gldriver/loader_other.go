// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo && !windows

package gldriver

import "unsafe"

func withSystemFallback(load func(name string) unsafe.Pointer) func(name string) unsafe.Pointer {
	return load
}
