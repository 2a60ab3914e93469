package model

import "time"

// PropertyType is the closed set of listing kinds.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyVilla     PropertyType = "villa"
	PropertyStudio    PropertyType = "studio"
)

// Valid reports whether t is one of the known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyApartment, PropertyHouse, PropertyVilla, PropertyStudio:
		return true
	}
	return false
}

// Property is a rentable listing.  Price is a monthly amount and is never
// negative.  BHK counts bedrooms.
type Property struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Price       float64      `json:"price"`
	BHK         int          `json:"bhk"`
	Sqft        int          `json:"sqft"`
	Amenities   []string     `json:"amenities"`
	Available   bool         `json:"available"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (p Property) GetID() string { return p.ID }

// Clone returns a deep copy of p.
func (p Property) Clone() Property {
	p.Amenities = cloneStrings(p.Amenities)
	p.Images = cloneStrings(p.Images)
	return p
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
