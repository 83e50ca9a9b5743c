// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app opens a window with an OpenGL 4.5 core context and a
grr.Device bound to it.

A minimal program:

	func main() {
		w, err := app.NewWindow(app.Title("triangle"), app.Size(800, 600))
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		for !w.ShouldClose() {
			// Record work on w.Device.
			w.SwapBuffers()
			app.PollEvents()
		}
	}

Windows must be created and driven from the main goroutine.
*/
package app
