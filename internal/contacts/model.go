// Package contacts implements the contacts resource on top of the session
// manager.
package contacts

import (
	"time"
)

// DateLayout is the wire format of birthdays.
const DateLayout = "2006-01-02"

// Resource is the name used in not-found and conflict payloads.
const Resource = "Contact"

// Contact is a row in the contacts table.
type Contact struct {
	ID             uint       `gorm:"primaryKey"`
	FirstName      string     `gorm:"size:50;not null;index"`
	LastName       string     `gorm:"size:50;not null;index"`
	Email          string     `gorm:"size:100;not null;uniqueIndex"`
	PhoneNumber    string     `gorm:"size:20;not null"`
	Birthday       *time.Time `gorm:"type:date"`
	AdditionalInfo *string    `gorm:"size:250"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactRequest is the body of create and update calls.
type ContactRequest struct {
	FirstName      string  `json:"first_name" binding:"required,max=50"`
	LastName       string  `json:"last_name" binding:"required,max=50"`
	Email          string  `json:"email" binding:"required,email,max=100"`
	PhoneNumber    string  `json:"phone_number" binding:"required,max=20"`
	Birthday       *string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	AdditionalInfo *string `json:"additional_info" binding:"omitempty,max=250"`
}

// ContactResponse is the JSON representation of a contact.
type ContactResponse struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Birthday       *string   `json:"birthday"`
	AdditionalInfo *string   `json:"additional_info"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListFilter holds pagination and search parameters for List.
type ListFilter struct {
	Limit     int    `form:"limit,default=10" binding:"min=1,max=100"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
	FirstName string `form:"first_name" binding:"max=50"`
	LastName  string `form:"last_name" binding:"max=50"`
	Email     string `form:"email" binding:"max=100"`
}

// BirthdayFilter selects the look-ahead window for upcoming birthdays.
type BirthdayFilter struct {
	Days int `form:"days,default=7" binding:"min=1,max=366"`
}

// ToResponse converts a row into its JSON representation.
func (c *Contact) ToResponse() ContactResponse {
	resp := ContactResponse{
		ID:             c.ID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		PhoneNumber:    c.PhoneNumber,
		AdditionalInfo: c.AdditionalInfo,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Birthday != nil {
		b := c.Birthday.Format(DateLayout)
		resp.Birthday = &b
	}
	return resp
}

// ToResponses converts a slice of rows.
func ToResponses(items []Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(items))
	for i := range items {
		out = append(out, items[i].ToResponse())
	}
	return out
}
