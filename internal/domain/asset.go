package domain

import "time"

type Asset struct {
	ID          uint      `json:"id"`
	FileName    string    `json:"fileName"`
	ObjectKey   string    `json:"objectKey"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
