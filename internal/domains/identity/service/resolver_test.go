package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgallery-backend/internal/domains/identity/model"
	"eventgallery-backend/pkg/token"
)

func newResolver(t *testing.T, expiry time.Duration) (*Resolver, *token.Manager) {
	t.Helper()
	m := token.NewManager("test-secret", expiry)
	return NewResolver(m), m
}

func TestResolveCustomer(t *testing.T) {
	r, m := newResolver(t, time.Hour)
	customerID := uuid.New()

	cred, err := m.IssueCustomerToken(customerID, "owner@example.com")
	require.NoError(t, err)

	p, err := r.Resolve(cred, model.ChannelCustomer)
	require.NoError(t, err)

	customer, ok := p.(model.Customer)
	require.True(t, ok)
	assert.Equal(t, customerID, customer.ID)
	assert.Equal(t, "owner@example.com", customer.Email)
	assert.Equal(t, model.KindCustomer, p.Kind())
}

func TestResolveGuest(t *testing.T) {
	r, m := newResolver(t, time.Hour)
	guestID := uuid.New()
	eventID := uuid.New()

	cred, err := m.IssueGuestToken(guestID, eventID, "guest@example.com")
	require.NoError(t, err)

	p, err := r.Resolve(cred, model.ChannelGuest)
	require.NoError(t, err)

	guest, ok := p.(model.Guest)
	require.True(t, ok)
	assert.Equal(t, guestID, guest.ID)
	assert.Equal(t, eventID, guest.EventID)
}

func TestResolveAdmin(t *testing.T) {
	r, m := newResolver(t, time.Hour)
	adminID := uuid.New()

	cred, err := m.IssueAdminToken(adminID, "superadmin")
	require.NoError(t, err)

	p, err := r.Resolve(cred, model.ChannelAdmin)
	require.NoError(t, err)

	admin, ok := p.(model.Admin)
	require.True(t, ok)
	assert.Equal(t, adminID, admin.ID)
	assert.Equal(t, "superadmin", admin.Level)
}

func TestResolveRejectsRoleChannelMismatch(t *testing.T) {
	r, m := newResolver(t, time.Hour)

	// A valid guest token sent on the customer channel must not be
	// reinterpreted as a customer credential.
	cred, err := m.IssueGuestToken(uuid.New(), uuid.New(), "guest@example.com")
	require.NoError(t, err)

	_, err = r.Resolve(cred, model.ChannelCustomer)
	assert.ErrorIs(t, err, model.ErrRoleMismatch)

	// Same for a customer token sent on the admin channel
	cred, err = m.IssueCustomerToken(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = r.Resolve(cred, model.ChannelAdmin)
	assert.ErrorIs(t, err, model.ErrRoleMismatch)
}

func TestResolveExpiredCredential(t *testing.T) {
	r, m := newResolver(t, -time.Minute)

	cred, err := m.IssueCustomerToken(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	_, err = r.Resolve(cred, model.ChannelCustomer)
	assert.ErrorIs(t, err, model.ErrExpiredCredential)
}

func TestResolveMalformedCredential(t *testing.T) {
	r, _ := newResolver(t, time.Hour)

	_, err := r.Resolve("garbage", model.ChannelCustomer)
	assert.ErrorIs(t, err, model.ErrMalformedCredential)
}

func TestResolveMissingCredential(t *testing.T) {
	r, _ := newResolver(t, time.Hour)

	_, err := r.Resolve("", model.ChannelCustomer)
	assert.ErrorIs(t, err, model.ErrMissingCredential)
}
