//go:build release

package main

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed all:templates
var embeddedTemplates embed.FS

//go:embed all:static
var embeddedStatic embed.FS

func init() {
	log.Println("release build: serving embedded templates and static files")
	var err error
	if templatesFS, err = fs.Sub(embeddedTemplates, "templates"); err != nil {
		log.Fatal("failed to open embedded templates: ", err)
	}
	if staticFS, err = fs.Sub(embeddedStatic, "static"); err != nil {
		log.Fatal("failed to open embedded static files: ", err)
	}
}
