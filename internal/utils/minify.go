package utils

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var htmlMinifier = newHTMLMinifier()

func newHTMLMinifier() *minify.M {
	m := minify.New()
	m.Add("text/html", &html.Minifier{KeepEndTags: true, KeepQuotes: true})
	return m
}

// MinifyHTML compacts an HTML fragment such as a rendered page list.
func MinifyHTML(fragment []byte) ([]byte, error) {
	return htmlMinifier.Bytes("text/html", fragment)
}
