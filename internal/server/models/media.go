// Package models holds the server-side data types.
package models

import "time"

// Media is one uploaded evidence object, recorded at upload time and removed
// by the sweeper once it outlives the retention window.
type Media struct {
	ID         string    `json:"id"`
	StorageKey string    `json:"storage_key"`
	PublicURL  string    `json:"public_url"`
	UploadedAt time.Time `json:"uploaded_at"`
	MimeType   string    `json:"mime_type"`
	Tag        string    `json:"tag"`
}
