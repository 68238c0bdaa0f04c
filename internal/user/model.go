package user

import "time"

type User struct {
	ID             string    `json:"id" bson:"_id"`
	Fullname       string    `json:"fullname" bson:"fullname"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password"`
	Contact        string    `json:"contact" bson:"contact"`
	Address        string    `json:"address" bson:"address"`
	City           string    `json:"city" bson:"city"`
	Country        string    `json:"country" bson:"country"`
	ProfilePicture string    `json:"profilePicture" bson:"profilePicture"`
	Admin          bool      `json:"admin" bson:"admin"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}
