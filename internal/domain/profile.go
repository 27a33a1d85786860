package domain

import (
	"strings"
	"unicode/utf8"
)

// ProfileField names an independently editable field of the user profile
type ProfileField string

const (
	ProfileFieldName             ProfileField = "name"
	ProfileFieldUsername         ProfileField = "username"
	ProfileFieldAvatarURL        ProfileField = "avatarUrl"
	ProfileFieldMembershipNumber ProfileField = "membershipNumber"
)

// UserProfile represents the signed-in demo user. Fields have no cross-field invariant.
type UserProfile struct {
	Name             string
	Username         string
	AvatarURL        string
	MembershipNumber string
}

// Set replaces exactly the named field and reports whether the field is known.
// Unknown fields leave the profile untouched.
func (p *UserProfile) Set(field ProfileField, value string) bool {
	switch field {
	case ProfileFieldName:
		p.Name = value
	case ProfileFieldUsername:
		p.Username = value
	case ProfileFieldAvatarURL:
		p.AvatarURL = value
	case ProfileFieldMembershipNumber:
		p.MembershipNumber = value
	default:
		return false
	}
	return true
}

// Get returns the value of the named field
func (p *UserProfile) Get(field ProfileField) (string, bool) {
	switch field {
	case ProfileFieldName:
		return p.Name, true
	case ProfileFieldUsername:
		return p.Username, true
	case ProfileFieldAvatarURL:
		return p.AvatarURL, true
	case ProfileFieldMembershipNumber:
		return p.MembershipNumber, true
	}
	return "", false
}

// DisplayName renders the name for the header. The first letter of each word is
// kept as typed and the rest is lower-cased: "MARIA PÉREZ" -> "Maria Pérez".
func (p *UserProfile) DisplayName() string {
	words := strings.Split(p.Name, " ")
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = w[:size] + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
