package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document stored in the users collection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	FirstName    string `bson:"fname" json:"fname"`
	LastName     string `bson:"lname" json:"lname"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	Password     string `bson:"password" json:"-"` // bcrypt hash, never serialized
	ProfileImage string `bson:"profileImage" json:"profileImage"`

	Address Address `bson:"address" json:"address"`
}

// Address groups the two delivery addresses kept on every account.
type Address struct {
	Shipping AddressPart `bson:"shipping" json:"shipping"`
	Billing  AddressPart `bson:"billing" json:"billing"`
}

type AddressPart struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	Pincode string `bson:"pincode" json:"pincode"`
}
