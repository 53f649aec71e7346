package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Resident is a tenant record with an embedded bill history. The id doubles
// as the Mongo document key and never changes after creation.
type Resident struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Room     string `bson:"room" json:"room"`
	Phone    string `bson:"phone" json:"phone"`
	Email    string `bson:"email" json:"email"`
	JoinDate string `bson:"joinDate" json:"joinDate"`
	Bills    []Bill `bson:"bills" json:"bills"`
}

// ResidentCreate is the request body for creating a resident.
type ResidentCreate struct {
	Name  string `json:"name"`
	Room  string `json:"room"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Validate checks the required fields.
func (c *ResidentCreate) Validate() error {
	switch {
	case c.Name == "":
		return &ValidationError{"name", "is required"}
	case c.Room == "":
		return &ValidationError{"room", "is required"}
	case c.Phone == "":
		return &ValidationError{"phone", "is required"}
	}
	return nil
}

// NewResident builds a Resident from a validated create request, assigning
// a fresh id, the current UTC date as joinDate, and an empty bill list.
func NewResident(c ResidentCreate) *Resident {
	return &Resident{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Room:     c.Room,
		Phone:    c.Phone,
		Email:    c.Email,
		JoinDate: time.Now().UTC().Format("2006-01-02"),
		Bills:    []Bill{},
	}
}

// ResidentUpdate is a field-level patch: only fields present in the request
// body are applied, absent fields leave the stored values untouched.
type ResidentUpdate struct {
	Name  *string `json:"name"`
	Room  *string `json:"room"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// Validate rejects present-but-empty required fields.
func (u *ResidentUpdate) Validate() error {
	switch {
	case u.Name != nil && *u.Name == "":
		return &ValidationError{"name", "must not be empty"}
	case u.Room != nil && *u.Room == "":
		return &ValidationError{"room", "must not be empty"}
	case u.Phone != nil && *u.Phone == "":
		return &ValidationError{"phone", "must not be empty"}
	}
	return nil
}

// Fields returns the patch as a field map, keyed by the stored field names.
func (u *ResidentUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Room != nil {
		fields["room"] = *u.Room
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.Email != nil {
		fields["email"] = *u.Email
	}
	return fields
}
