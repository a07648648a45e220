package models

import "time"

const (
	DeletedFromUser = "User-Model"
	DeletedFromBlog = "Blog-Model"
)

// Trash is the archival record for a soft-deleted user or post. It is a
// superset union of both models; only the fields of the origin model are set.
// Once written a trash record is never mutated.
type Trash struct {
	TrashID     string `bson:"trashid" json:"id"`
	DeletedFrom string `bson:"deletedFrom" json:"deletedFrom"`

	// User-Model fields
	FirstName   string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`

	// Blog-Model fields
	Image    string    `bson:"image,omitempty" json:"image,omitempty"`
	Title    string    `bson:"title,omitempty" json:"title,omitempty"`
	Body     string    `bson:"body,omitempty" json:"body,omitempty"`
	Creator  string    `bson:"creator,omitempty" json:"creator,omitempty"`
	AssetID  string    `bson:"asset_id,omitempty" json:"asset_id,omitempty"`
	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`
	Likes    []string  `bson:"likes,omitempty" json:"likes,omitempty"`
	Count    []string  `bson:"count,omitempty" json:"count,omitempty"`

	DeletedAt time.Time `bson:"deletedAt" json:"deletedAt"`
}

// TrashFromUser copies the archival fields of a user.
func TrashFromUser(id string, u User) Trash {
	return Trash{
		TrashID:     id,
		DeletedFrom: DeletedFromUser,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DeletedAt:   time.Now(),
	}
}

// TrashFromPost copies the archival fields of a blog post.
func TrashFromPost(id string, p BlogPost) Trash {
	return Trash{
		TrashID:     id,
		DeletedFrom: DeletedFromBlog,
		Image:       p.Image,
		Title:       p.Title,
		Body:        p.Body,
		Creator:     p.Creator,
		AssetID:     p.AssetID,
		Comments:    p.Comments,
		Likes:       p.Likes,
		Count:       p.Count,
		DeletedAt:   time.Now(),
	}
}
