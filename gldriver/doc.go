// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gldriver links the native OpenGL 4.5 bindings into grr.

Importing the package for its side effect registers the driver:

	import _ "gioui.org/grr/gldriver"

The driver requires cgo. Without it the package is empty and
grr.New reports grr.ErrNoDriver.
*/
package gldriver
