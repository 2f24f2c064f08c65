package models

// ConfigEntry is one key/value row of the Config tab.
type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	Row int `json:"-"`
}

// User is one row of the Users tab.
type User struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`

	Row int `json:"-"`
}
