package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/guest/model"
	imagemodel "eventgallery-backend/internal/domains/image/model"
	"eventgallery-backend/pkg/editwindow"
	"eventgallery-backend/pkg/token"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeGuestRepo struct {
	guests map[uuid.UUID]*model.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[uuid.UUID]*model.Guest)}
}

func (f *fakeGuestRepo) Create(_ context.Context, guest *model.Guest) error {
	for _, g := range f.guests {
		if g.EventID == guest.EventID && g.Email == guest.Email {
			return model.ErrGuestEmailTaken
		}
	}
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, model.ErrGuestNotFound
	}
	return g, nil
}

func (f *fakeGuestRepo) GetByEventAndEmail(_ context.Context, eventID uuid.UUID, email string) (*model.Guest, error) {
	for _, g := range f.guests {
		if g.EventID == eventID && g.Email == email {
			return g, nil
		}
	}
	return nil, model.ErrGuestNotFound
}

type fakeEventRepo struct {
	events map[uuid.UUID]*eventmodel.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*eventmodel.Event)}
}

func (f *fakeEventRepo) Create(_ context.Context, event *eventmodel.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uuid.UUID) (*eventmodel.Event, error) {
	evt, ok := f.events[id]
	if !ok {
		return nil, eventmodel.ErrEventNotFound
	}
	return evt, nil
}

func (f *fakeEventRepo) GetByCode(_ context.Context, code string) (*eventmodel.Event, error) {
	for _, evt := range f.events {
		if evt.Code == code {
			return evt, nil
		}
	}
	return nil, eventmodel.ErrEventNotFound
}

func (f *fakeEventRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*eventmodel.Event, error) {
	var out []*eventmodel.Event
	for _, evt := range f.events {
		if evt.CreatedBy == customerID {
			out = append(out, evt)
		}
	}
	return out, nil
}

type fakeImageRepo struct {
	images map[uuid.UUID]*imagemodel.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[uuid.UUID]*imagemodel.Image)}
}

func (f *fakeImageRepo) Create(_ context.Context, image *imagemodel.Image) error {
	f.images[image.ID] = image
	return nil
}

func (f *fakeImageRepo) GetByID(_ context.Context, id uuid.UUID) (*imagemodel.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, imagemodel.ErrImageNotFound
	}
	return img, nil
}

func (f *fakeImageRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*imagemodel.Image, error) {
	var out []*imagemodel.Image
	for _, id := range ids {
		if img, ok := f.images[id]; ok {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*imagemodel.ImageWithGuest, error) {
	var out []*imagemodel.ImageWithGuest
	for _, img := range f.images {
		if img.EventID == eventID {
			out = append(out, &imagemodel.ImageWithGuest{Image: *img})
		}
	}
	return out, nil
}

func (f *fakeImageRepo) ListByEventAndGuest(_ context.Context, eventID, guestID uuid.UUID) ([]*imagemodel.Image, error) {
	var out []*imagemodel.Image
	for _, img := range f.images {
		if img.EventID == eventID && img.GuestID == guestID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.images[id]; !ok {
		return imagemodel.ErrImageNotFound
	}
	delete(f.images, id)
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func setup(t *testing.T, eventDate time.Time) (GuestService, *fakeImageRepo, *eventmodel.Event, *token.Manager) {
	t.Helper()

	guests := newFakeGuestRepo()
	events := newFakeEventRepo()
	images := newFakeImageRepo()

	event := &eventmodel.Event{
		ID:        uuid.New(),
		Code:      "abc123def456",
		Name:      "Spring Wedding",
		EventDate: eventDate,
		CreatedBy: uuid.New(),
	}
	require.NoError(t, events.Create(context.Background(), event))

	policy, err := editwindow.NewPolicy(1)
	require.NoError(t, err)

	tokens := token.NewManager("test-secret", time.Hour)
	return NewGuestService(guests, events, images, tokens, policy), images, event, tokens
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestJoinIssuesEventScopedToken(t *testing.T) {
	svc, _, event, tokens := setup(t, startOfToday())

	resp, err := svc.Join(context.Background(), model.JoinEventRequest{
		EventCode: event.Code,
		Name:      "Alice Nguyen",
		Email:     "Alice@Example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)

	claims, err := tokens.Parse(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, token.RoleGuest, claims.Role)
	assert.Equal(t, event.ID.String(), claims.EventID)

	// email is normalized before storage
	assert.Equal(t, "alice@example.com", resp.Guest.Email)
	assert.Equal(t, event.Code, resp.Event.Code)
}

func TestJoinUnknownEventCode(t *testing.T) {
	svc, _, _, _ := setup(t, startOfToday())

	_, err := svc.Join(context.Background(), model.JoinEventRequest{
		EventCode: "nosuchevent",
		Name:      "Alice Nguyen",
		Email:     "alice@example.com",
		Password:  "secret1",
	})
	assert.ErrorIs(t, err, eventmodel.ErrEventNotFound)
}

func TestJoinDuplicateEmailOnSameEvent(t *testing.T) {
	svc, _, event, _ := setup(t, startOfToday())

	req := model.JoinEventRequest{
		EventCode: event.Code,
		Name:      "Alice Nguyen",
		Email:     "alice@example.com",
		Password:  "secret1",
	}
	_, err := svc.Join(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Join(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrGuestEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, event, _ := setup(t, startOfToday())

	_, err := svc.Join(context.Background(), model.JoinEventRequest{
		EventCode: event.Code,
		Name:      "Alice Nguyen",
		Email:     "alice@example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.GuestLoginRequest{
		EventCode: event.Code,
		Email:     "alice@example.com",
		Password:  "not-it",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	// unknown email reads the same as a wrong password
	_, err = svc.Login(context.Background(), model.GuestLoginRequest{
		EventCode: event.Code,
		Email:     "nobody@example.com",
		Password:  "secret1",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestDashboardWindowOpen(t *testing.T) {
	svc, images, event, _ := setup(t, startOfToday())

	resp, err := svc.Join(context.Background(), model.JoinEventRequest{
		EventCode: event.Code,
		Name:      "Alice Nguyen",
		Email:     "alice@example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)

	require.NoError(t, images.Create(context.Background(), &imagemodel.Image{
		ID:         uuid.New(),
		EventID:    event.ID,
		GuestID:    resp.Guest.ID,
		UploadedAt: time.Now(),
	}))

	dash, err := svc.Dashboard(context.Background(), resp.Guest.ID, event.ID)
	require.NoError(t, err)

	assert.True(t, dash.CanModify)
	assert.Equal(t, 1, dash.UploadCount)
	// grace of 1 day: deadline is two midnights after the event date
	assert.Equal(t, startOfToday().AddDate(0, 0, 2), dash.ModifyDeadline)
}

func TestDashboardWindowClosed(t *testing.T) {
	svc, _, event, _ := setup(t, startOfToday().AddDate(0, 0, -10))

	resp, err := svc.Join(context.Background(), model.JoinEventRequest{
		EventCode: event.Code,
		Name:      "Alice Nguyen",
		Email:     "alice@example.com",
		Password:  "secret1",
	})
	require.NoError(t, err)

	dash, err := svc.Dashboard(context.Background(), resp.Guest.ID, event.ID)
	require.NoError(t, err)

	assert.False(t, dash.CanModify)
	assert.Equal(t, 0, dash.UploadCount)
}
