package restaurant

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Owner struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Restaurant as exposed over the API. Coordinates follow the GIS
// convention: [lng, lat].
type Restaurant struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Coordinates    [2]float64 `json:"coordinates"`
	HasMenu        bool       `json:"hasMenu"`
	RegistrationID string     `json:"registrationId"`
	CustomName     string     `json:"customName,omitempty"`
	Owner          Owner      `json:"owner"`
	Status         Status     `json:"status"`
	MapID          string     `json:"mapId,omitempty"`
	Represent      string     `json:"represent,omitempty"`
	CreateDate     time.Time  `json:"createDate"`
	UpdateDate     time.Time  `json:"updateDate"`
}

func (r *Restaurant) Lng() float64 { return r.Coordinates[0] }
func (r *Restaurant) Lat() float64 { return r.Coordinates[1] }

// SearchParams filters and paginates the restaurant listing.
type SearchParams struct {
	Name           string
	Address        string
	Status         Status
	HasMenu        *bool
	RegistrationID string
	Search         string
	Page           int
	Limit          int
	SortOrder      string // "asc" or "desc" by create_date
}

func (p *SearchParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.SortOrder != "asc" {
		p.SortOrder = "desc"
	}
}
