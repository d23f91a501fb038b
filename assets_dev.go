//go:build !release

package main

import (
	"log"
	"os"
)

// Without the release tag templates and styles are read from the working
// directory, so edits show up on the next request.
func init() {
	log.Println("debug build: serving templates and static files from disk")
	templatesFS = os.DirFS("templates")
	staticFS = os.DirFS("static")
}
