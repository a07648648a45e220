package models

import "time"

type User struct {
	UserID      string    `bson:"userid" json:"id"`
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Password    string    `bson:"password" json:"-"`
	IsAdmin     bool      `bson:"isAdmin" json:"isAdmin"`
	ResetLink   string    `bson:"resetLink" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
