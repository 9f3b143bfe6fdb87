package entity

import "time"

// Post is a stored piece of content. One author per post; CreatedAt is set
// once at creation.
type Post struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	AuthorID  string
}

// AggregatedPost is the public read model of a Post joined to its author.
// It is only produced by the post query pipeline and never persisted.
type AggregatedPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Body            string     `json:"body"`
	CreatedAt       time.Time  `json:"createdAt"`
	Author          PublicUser `json:"author"`
	IsOwnedByViewer bool       `json:"isVisitorOwner"`
}
