package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User records are created once on signup and never mutated by this API.
// UID is the identity provider's subject claim ("auth0|...") and is the
// value that appears in user-facing URLs.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email    string             `bson:"email" json:"email"`
	Username string             `bson:"username" json:"username"`
	JoinDate string             `bson:"joindate" json:"joindate"`
	UID      string             `bson:"uid" json:"uid"`
}

type UserView struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	JoinDate string `json:"joindate"`
	UID      string `json:"uid"`
	Self     string `json:"self"`
}

func (u User) View(baseURL string) UserView {
	return UserView{
		ID:       u.ID.Hex(),
		Email:    u.Email,
		Username: u.Username,
		JoinDate: u.JoinDate,
		UID:      u.UID,
		Self:     baseURL + "users/" + u.UID,
	}
}

type UserListView struct {
	Users []UserView `json:"users"`
	Next  string     `json:"next,omitempty"`
}
