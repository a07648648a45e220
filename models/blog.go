package models

import "time"

// Comment is an embedded sub-record; comments are append-only and unbounded.
type Comment struct {
	Comment    string    `bson:"comment" json:"comment"`
	Username   string    `bson:"username" json:"username"`
	Timestamps time.Time `bson:"timestamps" json:"timestamps"`
}

type BlogPost struct {
	PostID  string `bson:"postid" json:"id"`
	Image   string `bson:"image" json:"image"`
	Title   string `bson:"title" json:"title"`
	Body    string `bson:"body" json:"body"`
	Creator string `bson:"creator" json:"creator"`
	// AssetID is the handle of the stored image; needed to destroy the old
	// asset when a new image replaces it.
	AssetID  string    `bson:"asset_id" json:"asset_id"`
	Comments []Comment `bson:"comments" json:"comments"`
	// Likes and Count are sets of user ids; membership is enforced at write
	// time with $addToSet.
	Likes     []string  `bson:"likes" json:"likes"`
	Count     []string  `bson:"count" json:"count"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
