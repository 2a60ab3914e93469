package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/renttrack/internal/model"
)

func TestCollectionReturnsCopies(t *testing.T) {
	s := NewSeeded()

	p, err := s.Properties.Get("prop-1")
	require.NoError(t, err)
	p.Title = "changed"
	p.Amenities[0] = "changed"

	again, err := s.Properties.Get("prop-1")
	require.NoError(t, err)
	assert.Equal(t, "Sunset View Apartment", again.Title)
	assert.Equal(t, "pool", again.Amenities[0])

	list := s.Properties.List()
	list[0].Images[0] = "changed"
	assert.NotEqual(t, "changed", s.Properties.List()[0].Images[0])
}

func TestCollectionGetMissing(t *testing.T) {
	s := NewSeeded()
	_, err := s.Tenants.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionInsert(t *testing.T) {
	c := NewCollection[model.Payment]("payment")

	_, err := c.Insert(model.Payment{})
	assert.ErrorIs(t, err, ErrEmptyID)

	_, err = c.Insert(model.Payment{ID: "p1", Amount: 10})
	require.NoError(t, err)
	_, err = c.Insert(model.Payment{ID: "p1"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	assert.Equal(t, 1, c.Len())
}

func TestCollectionUpdateRejectedLeavesRecord(t *testing.T) {
	s := NewSeeded()
	before := s.Payments.List()

	_, err := s.Payments.Update("pay-2", func(p *model.Payment) error {
		p.Status = model.PaymentPaid
		return errors.New("rejected")
	})
	require.Error(t, err)
	assert.Equal(t, before, s.Payments.List())

	_, err = s.Payments.Update("missing", func(p *model.Payment) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, s.Payments.List())
}

func TestCollectionUpdateKeepsID(t *testing.T) {
	s := NewSeeded()
	_, err := s.Payments.Update("pay-2", func(p *model.Payment) error {
		p.ID = "other"
		return nil
	})
	require.Error(t, err)
	assert.True(t, s.Payments.Exists("pay-2"))
	assert.False(t, s.Payments.Exists("other"))
}

func TestCollectionDeleteAndOrder(t *testing.T) {
	s := NewSeeded()
	assert.True(t, s.Tenants.Delete("tenant-2"))
	assert.False(t, s.Tenants.Delete("tenant-2"))

	var ids []string
	for _, tn := range s.Tenants.List() {
		ids = append(ids, tn.ID)
	}
	assert.Equal(t, []string{"tenant-1", "tenant-3", "tenant-4"}, ids)
}

func TestStoreResetRestoresSeed(t *testing.T) {
	s := NewSeeded()
	s.Tenants.Delete("tenant-1")
	_, _ = s.Uploads.Insert(model.Upload{ID: "u1", Status: model.UploadProcessing})

	s.Reset()
	assert.Equal(t, 4, s.Tenants.Len())
	assert.Equal(t, 0, s.Uploads.Len())
	assert.Equal(t, 6, s.Payments.Len())

	s.Clear()
	assert.Equal(t, 0, s.Users.Len())
}

func TestResolveNamesFollowRenames(t *testing.T) {
	s := NewSeeded()

	_, err := s.Properties.Update("prop-1", func(p *model.Property) error {
		p.Title = "Sunrise View Apartment"
		return nil
	})
	require.NoError(t, err)

	tn, err := s.Tenants.Get("tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise View Apartment", s.ResolveTenant(tn).PropertyName)

	pay, err := s.Payments.Get("pay-1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", s.ResolvePayment(pay).TenantName)

	orphan := s.ResolvePayment(model.Payment{ID: "x", TenantID: "ghost"})
	assert.Empty(t, orphan.TenantName)
}
