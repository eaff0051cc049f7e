package models

// DefaultAvatar is the placeholder glyph for accounts added without one.
const DefaultAvatar = "👤"

// Account is one rental catalog entry in accounts.json. Names are not
// required to be unique; updates always hit the first match in storage order.
type Account struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Avatar string `json:"avatar"`
	Points int    `json:"points"`
}
