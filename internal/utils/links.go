package utils

import (
	"net/url"
	"strconv"
)

// ArticleIndexURL is the entry page listing all articles.
const ArticleIndexURL = "/articles"

func ArticleURL(slug string) string {
	return "/article/" + url.PathEscape(slug)
}

func PageURL(slug string) string {
	return "/page/" + url.PathEscape(slug)
}

func AlbumURL(name string) string {
	return "/album/" + url.PathEscape(name)
}

// ImageURL links an image as shown inside album; album may differ from the
// album that owns the image when it is dynamic.
func ImageURL(album string, id uint) string {
	return AlbumURL(album) + "/" + strconv.FormatUint(uint64(id), 10)
}

// AlbumLinkedImageURL links an image that pages through its album even while
// a search is active.
func AlbumLinkedImageURL(album string, id uint) string {
	return ImageURL(album, id) + "?al=1"
}
