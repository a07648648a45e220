package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrashFromUser(t *testing.T) {
	u := User{
		UserID:      "u123",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "5550001111",
	}

	tr := TrashFromUser("tABC", u)

	assert.Equal(t, "tABC", tr.TrashID)
	assert.Equal(t, DeletedFromUser, tr.DeletedFrom)
	assert.Equal(t, "Ada", tr.FirstName)
	assert.Equal(t, "Lovelace", tr.LastName)
	assert.Equal(t, "ada@example.com", tr.Email)
	assert.Equal(t, "5550001111", tr.PhoneNumber)
	assert.WithinDuration(t, time.Now(), tr.DeletedAt, time.Second)

	// no blog fields leak into a user record
	assert.Empty(t, tr.Title)
	assert.Empty(t, tr.Body)
	assert.Empty(t, tr.Creator)
}

func TestTrashFromPost(t *testing.T) {
	p := BlogPost{
		PostID:  "p456",
		Image:   "/static/postpic/x.jpg",
		Title:   "On engines",
		Body:    "Analytical remarks.",
		Creator: "u123",
		AssetID: "asset-1",
		Likes:   []string{"u9"},
		Count:   []string{"u9", "u10"},
		Comments: []Comment{
			{Comment: "nice", Username: "Byron"},
		},
	}

	tr := TrashFromPost("tDEF", p)

	assert.Equal(t, "tDEF", tr.TrashID)
	assert.Equal(t, DeletedFromBlog, tr.DeletedFrom)
	assert.Equal(t, "On engines", tr.Title)
	assert.Equal(t, "Analytical remarks.", tr.Body)
	assert.Equal(t, "u123", tr.Creator)
	assert.Equal(t, "asset-1", tr.AssetID)
	assert.Equal(t, p.Likes, tr.Likes)
	assert.Equal(t, p.Count, tr.Count)
	assert.Len(t, tr.Comments, 1)

	assert.Empty(t, tr.FirstName)
	assert.Empty(t, tr.Email)
}
