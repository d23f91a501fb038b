package models

import "gorm.io/gorm"

// Page is a CMS page. Pages form a tree through ParentID.
type Page struct {
	gorm.Model
	Title     string `gorm:"not null" json:"title" form:"title"`
	Slug      string `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string `gorm:"type:text" json:"content" form:"content"`
	ParentID  *uint  `gorm:"index" json:"parent_id"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}
