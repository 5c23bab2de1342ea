package models

import "time"

// Post represents a blog post. CreatedAt and UserID are set at creation and
// never change afterwards.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    int64     `json:"user_id"`
}

// PostWithAuthor is a post joined with its author's public fields, used in
// list responses.
type PostWithAuthor struct {
	Post
	AuthorUsername  string `json:"author_username"`
	AuthorImageFile string `json:"author_image_file"`
}

// PostCreate is the request body for creating a post.
type PostCreate struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// PostUpdate is the request body for updating a post. Title and content are
// replaced; authorship and creation time are not editable.
type PostUpdate struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}
