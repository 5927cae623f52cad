// Package entity contains the core business objects of the project.
package entity

import "slices"

// UserType represents the kind of account a user has in the system.
type UserType string

const (
	// UserTypeMaster can manage every resource.
	UserTypeMaster UserType = "Master"
	// UserTypeViewer is the default read-mostly account.
	UserTypeViewer UserType = "Viewer"
)

// String returns the string representation of the UserType.
func (r UserType) String() string {
	return string(r)
}

// IsValid checks if the UserType is a valid value.
func (r UserType) IsValid() bool {
	switch r {
	case UserTypeMaster, UserTypeViewer:
		return true
	default:
		return false
	}
}

// UserTypes is a slice of UserType for convenience.
type UserTypes []UserType

// Contains checks if the slice contains a specific user type.
func (rs UserTypes) Contains(role UserType) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts UserTypes to []string for JWT compatibility.
func (rs UserTypes) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// UserTypesFromStrings converts []string to UserTypes, filtering out invalid values.
func UserTypesFromStrings(ss []string) UserTypes {
	result := make(UserTypes, 0, len(ss))
	for _, s := range ss {
		role := UserType(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
