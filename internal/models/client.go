package models

import (
	"time"
)

// Client is one household under an advisor. The spouse fields are empty for
// a single client.
type Client struct {
	ID         int64     `json:"id"`
	AdvisorID  int64     `json:"owner_id"`
	ClientName string    `json:"client_name"`
	SpouseName string    `json:"spouse_name"`
	Married    bool      `json:"married"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientListItem represents a client in a list (metadata only)
type ClientListItem struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name"`
	SpouseName string    `json:"spouse_name"`
	Married    bool      `json:"married"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ClientInputs is everything the engine reads for one client. Assets is nil
// until an asset document has been saved; Plan is nil until a plan has been
// saved.
type ClientInputs struct {
	Client *Client
	Assets *RawAssets
	Heirs  HeirLists
	Plan   *EstatePlan
}
