package models

import "time"

type Image struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename    string    `gorm:"not null" json:"filename"`
	FileType    string    `json:"file_type"`
	Data        []byte    `gorm:"type:bytea" json:"-"`
	DownloadURL string    `json:"download_url"`
	ProductID   uint      `gorm:"index" json:"product_id"`
	CreatedAt   time.Time `json:"created_at"`
}
