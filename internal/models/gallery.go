package models

import "gorm.io/gorm"

// Album groups images. Albums nest through ParentID; top-level albums hang
// off the gallery itself.
type Album struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	Title     string `gorm:"not null" json:"title"`
	ParentID  *uint  `gorm:"index" json:"parent_id"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
	// Dynamic albums own no images; they show every image whose title
	// matches SearchQuery.
	Dynamic     bool   `gorm:"default:false" json:"dynamic"`
	SearchQuery string `json:"search_query"`
}

type Image struct {
	gorm.Model
	AlbumID   uint   `gorm:"uniqueIndex:idx_album_file;not null" json:"album_id"`
	Filename  string `gorm:"uniqueIndex:idx_album_file;not null" json:"filename"`
	Title     string `json:"title"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}
