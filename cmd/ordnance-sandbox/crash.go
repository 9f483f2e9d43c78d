package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
)

// recoverCrash restores the terminal before reporting a panic; deferred at the top of every goroutine that draws
func recoverCrash(fini func()) {
	r := recover()
	if r == nil {
		return
	}
	fini()

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)
	fmt.Fprintf(os.Stderr, "\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
	os.Exit(1)
}
