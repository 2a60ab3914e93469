package mockapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/renttrack/internal/api"
	"github.com/iliyamo/renttrack/internal/events"
	"github.com/iliyamo/renttrack/internal/latency"
	"github.com/iliyamo/renttrack/internal/model"
	"github.com/iliyamo/renttrack/internal/utils"
)

// UntitledProperty is the title given to properties created without one.
const UntitledProperty = "Untitled Property"

// ListProperties returns every property.
func (f *Facade) ListProperties(ctx context.Context) ([]model.Property, error) {
	if err := f.wait(ctx, latency.OpProperties); err != nil {
		return nil, err
	}
	return f.store.Properties.List(), nil
}

// GetProperty returns one property.
func (f *Facade) GetProperty(ctx context.Context, id string) (model.Property, error) {
	if err := f.wait(ctx, latency.OpProperty); err != nil {
		return model.Property{}, err
	}
	p, err := f.store.Properties.Get(id)
	if err != nil {
		return model.Property{}, notFound(err)
	}
	return p, nil
}

func parsePropertyType(s string) (model.PropertyType, error) {
	t := model.PropertyType(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return model.PropertyApartment, nil
	}
	if !t.Valid() {
		return "", invalid("unknown property type %q", s)
	}
	return t, nil
}

func checkCounts(price, bhk, sqft api.FlexNumber) error {
	if err := checkAmount("price", price); err != nil {
		return err
	}
	if err := checkCount("bhk", bhk); err != nil {
		return err
	}
	return checkCount("sqft", sqft)
}

// CreateProperty adds a listing with defaults for missing fields.
func (f *Facade) CreateProperty(ctx context.Context, in api.PropertyInput) (model.Property, error) {
	if err := f.wait(ctx, latency.OpCreateProperty); err != nil {
		return model.Property{}, err
	}
	typ, err := parsePropertyType(in.Type)
	if err != nil {
		return model.Property{}, err
	}
	if err := checkCounts(in.Price, in.BHK, in.Sqft); err != nil {
		return model.Property{}, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = UntitledProperty
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	p := model.Property{
		ID:          utils.NewID("prop"),
		Title:       title,
		Address:     strings.TrimSpace(in.Address),
		City:        strings.TrimSpace(in.City),
		Price:       in.Price.Float(),
		BHK:         in.BHK.Int(),
		Sqft:        in.Sqft.Int(),
		Amenities:   in.Amenities,
		Available:   available,
		Images:      in.Images,
		Description: in.Description,
		Type:        typ,
		CreatedAt:   f.now().UTC(),
	}
	saved, err := f.store.Properties.Insert(p)
	if err != nil {
		return model.Property{}, err
	}
	msg := fmt.Sprintf("New property %q added to listings", saved.Title)
	f.publish(ctx, events.New(events.PropertyAdded, saved.ID, msg, f.now()))
	return saved, nil
}

// UpdateProperty applies a partial update.  Tenants pick up a new title on
// their next read.
func (f *Facade) UpdateProperty(ctx context.Context, id string, patch api.PropertyPatch) (model.Property, error) {
	if err := f.wait(ctx, latency.OpUpdateProperty); err != nil {
		return model.Property{}, err
	}
	p, err := f.store.Properties.Update(id, func(p *model.Property) error {
		if patch.Title != nil {
			title := strings.TrimSpace(*patch.Title)
			if title == "" {
				return invalid("title must not be empty")
			}
			p.Title = title
		}
		if patch.Address != nil {
			p.Address = strings.TrimSpace(*patch.Address)
		}
		if patch.City != nil {
			p.City = strings.TrimSpace(*patch.City)
		}
		if patch.Price != nil {
			if err := checkAmount("price", *patch.Price); err != nil {
				return err
			}
			p.Price = patch.Price.Float()
		}
		if patch.BHK != nil {
			if err := checkCount("bhk", *patch.BHK); err != nil {
				return err
			}
			p.BHK = patch.BHK.Int()
		}
		if patch.Sqft != nil {
			if err := checkCount("sqft", *patch.Sqft); err != nil {
				return err
			}
			p.Sqft = patch.Sqft.Int()
		}
		if patch.Amenities != nil {
			p.Amenities = patch.Amenities
		}
		if patch.Images != nil {
			p.Images = patch.Images
		}
		if patch.Available != nil {
			p.Available = *patch.Available
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Type != nil {
			t := model.PropertyType(strings.ToLower(strings.TrimSpace(*patch.Type)))
			if !t.Valid() {
				return invalid("unknown property type %q", *patch.Type)
			}
			p.Type = t
		}
		return nil
	})
	if err != nil {
		return model.Property{}, notFound(err)
	}
	return p, nil
}
