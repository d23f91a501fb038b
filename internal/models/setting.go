package models

import "gorm.io/gorm"

// Setting is a site-wide option such as the article index entry flag.
type Setting struct {
	gorm.Model
	Key   string `gorm:"type:varchar(255);uniqueIndex" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
