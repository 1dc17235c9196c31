package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the membership details a user fills in after verifying
// their email. Photo and IDCard are URLs returned by the image host.
type Profile struct {
	Photo          string `bson:"photo,omitempty" json:"photo,omitempty"`
	IDCard         string `bson:"idCard,omitempty" json:"idCard,omitempty"`
	Phone          string `bson:"phone,omitempty" json:"phone,omitempty"`
	Institution    string `bson:"institution,omitempty" json:"institution,omitempty"`
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Bio            string `bson:"bio,omitempty" json:"bio,omitempty"`
}

// Complete reports whether both verification documents are on file.
func (p Profile) Complete() bool {
	return p.Photo != "" && p.IDCard != ""
}

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	Role              UserRole           `bson:"role" json:"role"`
	Status            UserStatus         `bson:"status" json:"status"`
	IsVerified        bool               `bson:"isVerified" json:"isVerified"`
	VerificationToken string             `bson:"verificationToken,omitempty" json:"-"`
	ResetToken        string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExp     *time.Time         `bson:"resetTokenExp,omitempty" json:"-"`
	RejectionReason   string             `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	BanReason         string             `bson:"banReason,omitempty" json:"banReason,omitempty"`
	StatusBeforeBan   UserStatus         `bson:"statusBeforeBan,omitempty" json:"-"`
	Profile           Profile            `bson:"profile" json:"profile"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Sanitize strips credential material before the record leaves the API.
func (u *User) Sanitize() *User {
	clean := *u
	clean.PasswordHash = ""
	clean.VerificationToken = ""
	clean.ResetToken = ""
	clean.ResetTokenExp = nil
	return &clean
}
