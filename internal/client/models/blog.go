package models

import "time"

// Blog is one post record. Instances are immutable snapshots of a fetch:
// a re-fetch replaces them, nothing patches them in place.
type Blog struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
