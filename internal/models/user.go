package models

import "net/url"

// UserRole represents the portal roles. Values match the stored Spanish labels.
type UserRole string

const (
	RoleStudent   UserRole = "ALUMNO"
	RoleTeacher   UserRole = "DOCENTE"
	RolePreceptor UserRole = "PRECEPTOR"
	RoleDirector  UserRole = "DIRECTIVO"
	RoleAdmin     UserRole = "ADMIN"
)

// AppTheme names one of the fixed palette themes selectable in settings.
type AppTheme string

const (
	ThemeIndigo AppTheme = "indigo"
	ThemeTeal   AppTheme = "teal"
	ThemeBlue   AppTheme = "blue"
	ThemeRose   AppTheme = "rose"
	ThemeViolet AppTheme = "violet"
	ThemeAmber  AppTheme = "amber"
)

// UserPreferences holds per-user settings.
type UserPreferences struct {
	EmailNotifications bool     `json:"emailNotifications"`
	DarkMode           bool     `json:"darkMode"`
	Theme              AppTheme `json:"theme"`
}

// DefaultPreferences returns the preferences applied to newly created users.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{EmailNotifications: true, DarkMode: false, Theme: ThemeIndigo}
}

// AcademicAssignment ties a user to a career and year, optionally a subject.
type AcademicAssignment struct {
	ID      string `json:"id"`
	Career  string `json:"career"`
	Year    string `json:"year"`
	Subject string `json:"subject,omitempty"`
}

// AcademicData groups the academic assignments of a user.
type AcademicData struct {
	Assignments []AcademicAssignment `json:"assignments"`
}

// User is a portal account. The credential is stored alongside the record and
// stripped before the record leaves the data layer.
type User struct {
	ID           string           `db:"id" json:"id"`
	Name         string           `db:"name" json:"name"`
	Email        string           `db:"email" json:"email"`
	Password     string           `db:"password" json:"-"`
	Role         UserRole         `db:"role" json:"role"`
	Avatar       string           `db:"avatar" json:"avatar"`
	Preferences  *UserPreferences `json:"preferences,omitempty"`
	AcademicData *AcademicData    `json:"academicData,omitempty"`
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Password     *string          `json:"password,omitempty"`
	Role         *UserRole        `json:"role,omitempty"`
	Avatar       *string          `json:"avatar,omitempty"`
	Preferences  *UserPreferences `json:"preferences,omitempty"`
	AcademicData *AcademicData    `json:"academicData,omitempty"`
}

// AvatarForName builds the default initials avatar URL for a display name.
func AvatarForName(name string) string {
	return "https://api.dicebear.com/7.x/initials/svg?seed=" + url.QueryEscape(name)
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
