package domain

import (
	"strings"
	"time"
)

type UserType string

const (
	UserTypeClient        UserType = "CLIENT"
	UserTypeBewindvoerder UserType = "BEWINDVOERDER"
)

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeBewindvoerder
}

type TextSize string

const (
	TextSizeSmall  TextSize = "SMALL"
	TextSizeMedium TextSize = "MEDIUM"
	TextSizeLarge  TextSize = "LARGE"
	TextSizeXLarge TextSize = "XLARGE"
)

// ParseTextSize accepts any casing and returns the canonical upper-case value.
func ParseTextSize(s string) (TextSize, bool) {
	ts := TextSize(strings.ToUpper(strings.TrimSpace(s)))
	switch ts {
	case TextSizeSmall, TextSizeMedium, TextSizeLarge, TextSizeXLarge:
		return ts, true
	}
	return "", false
}

const DefaultLanguage = "nl"

type User struct {
	ID                string
	Type              UserType
	Email             string // stored lower-case
	PINHash           string // argon2 encoded, never leaves the service layer
	FirstName         string
	LastName          string
	Language          string
	TextSize          TextSize
	HighContrast      bool
	BiometricsEnabled bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UserSettings is a partial update of the preference fields. Nil fields are
// left untouched.
type UserSettings struct {
	Language          *string
	TextSize          *TextSize
	HighContrast      *bool
	BiometricsEnabled *bool
}

// Apply copies the set fields onto u.
func (s UserSettings) Apply(u *User) {
	if s.Language != nil {
		u.Language = *s.Language
	}
	if s.TextSize != nil {
		u.TextSize = *s.TextSize
	}
	if s.HighContrast != nil {
		u.HighContrast = *s.HighContrast
	}
	if s.BiometricsEnabled != nil {
		u.BiometricsEnabled = *s.BiometricsEnabled
	}
}
