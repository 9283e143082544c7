package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	imagemodel "eventgallery-backend/internal/domains/image/model"
	"eventgallery-backend/internal/domains/share/model"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeShareRepo struct {
	links map[string]*model.ShareLink

	// forces the next N creates to report a code collision
	collisions int
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{links: make(map[string]*model.ShareLink)}
}

func (f *fakeShareRepo) Create(_ context.Context, link *model.ShareLink) error {
	if f.collisions > 0 {
		f.collisions--
		return model.ErrShareCodeTaken
	}
	if _, ok := f.links[link.ShareCode]; ok {
		return model.ErrShareCodeTaken
	}
	f.links[link.ShareCode] = link
	return nil
}

func (f *fakeShareRepo) GetByCode(_ context.Context, code string) (*model.ShareLink, error) {
	link, ok := f.links[code]
	if !ok {
		return nil, model.ErrShareNotFound
	}
	return link, nil
}

func (f *fakeShareRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*model.ShareLink, error) {
	var out []*model.ShareLink
	for _, link := range f.links {
		if link.EventID == eventID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeShareRepo) DeleteByCode(_ context.Context, code string) error {
	if _, ok := f.links[code]; !ok {
		return model.ErrShareNotFound
	}
	delete(f.links, code)
	return nil
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
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.Before(out[j].UploadedAt)
	})
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

type fixture struct {
	svc    ShareLinkService
	shares *fakeShareRepo
	events *fakeEventRepo
	images *fakeImageRepo

	ownerID  uuid.UUID
	event    *eventmodel.Event
	imageIDs []uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		shares:  newFakeShareRepo(),
		events:  newFakeEventRepo(),
		images:  newFakeImageRepo(),
		ownerID: uuid.New(),
	}

	f.event = &eventmodel.Event{
		ID:        uuid.New(),
		Code:      "abc123def456",
		Name:      "Spring Wedding",
		EventDate: time.Now(),
		CreatedBy: f.ownerID,
	}
	require.NoError(t, f.events.Create(context.Background(), f.event))

	// three uploads with distinct times so ordering is observable
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		img := &imagemodel.Image{
			ID:         uuid.New(),
			EventID:    f.event.ID,
			GuestID:    uuid.New(),
			FileName:   "photo.jpg",
			StorageURL: "uploads/photo.jpg",
			UploadedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, f.images.Create(context.Background(), img))
		f.imageIDs = append(f.imageIDs, img.ID)
	}

	f.svc = NewShareLinkService(f.shares, f.events, f.images, "/files")
	return f
}

func (f *fixture) create(t *testing.T, req model.CreateShareLinkRequest) *model.ShareLinkResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), f.ownerID, req)
	require.NoError(t, err)
	return resp
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// create
// ---------------------------------------------------------------------------

func TestCreateShareLink(t *testing.T) {
	f := newFixture(t)

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})

	assert.Len(t, resp.ShareCode, 32, "code should carry 128 bits as hex")
	assert.Equal(t, "/shared/"+resp.ShareCode, resp.ShareURL)
	assert.Equal(t, 3, resp.ImageCount)
	assert.False(t, resp.HasPassword)
}

func TestCreateRequiresEventOwnership(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), uuid.New(), model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestCreateRejectsEmptySelection(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.ownerID, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
	})
	assert.ErrorIs(t, err, model.ErrEmptySelection)
}

func TestCreateRejectsForeignImages(t *testing.T) {
	f := newFixture(t)

	other := &imagemodel.Image{
		ID:         uuid.New(),
		EventID:    uuid.New(), // belongs to some other event
		GuestID:    uuid.New(),
		UploadedAt: time.Now(),
	}
	require.NoError(t, f.images.Create(context.Background(), other))

	_, err := f.svc.Create(context.Background(), f.ownerID, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   append(f.imageIDs, other.ID),
	})
	assert.ErrorIs(t, err, model.ErrImageNotInEvent)
}

func TestCreateRejectsUnknownImages(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.ownerID, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, model.ErrImageNotInEvent)
}

func TestCreateRejectsPastExpiry(t *testing.T) {
	f := newFixture(t)

	past := time.Now().Add(-time.Minute)
	_, err := f.svc.Create(context.Background(), f.ownerID, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
		ExpiresAt:  &past,
	})
	assert.ErrorIs(t, err, model.ErrInvalidExpiry)
}

func TestCreateRetriesOnCodeCollision(t *testing.T) {
	f := newFixture(t)
	f.shares.collisions = 2

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})
	assert.NotEmpty(t, resp.ShareCode)
}

// ---------------------------------------------------------------------------
// resolve
// ---------------------------------------------------------------------------

func TestResolveRoundTrip(t *testing.T) {
	f := newFixture(t)

	// pass the ids out of order; resolution returns upload order
	shuffled := []uuid.UUID{f.imageIDs[2], f.imageIDs[0], f.imageIDs[1]}
	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   shuffled,
	})

	gallery, err := f.svc.Resolve(context.Background(), resp.ShareCode, nil)
	require.NoError(t, err)

	assert.Equal(t, "Highlights", gallery.FolderName)
	assert.Equal(t, f.event.Name, gallery.EventName)
	require.Len(t, gallery.Images, 3)
	for i, img := range gallery.Images {
		assert.Equal(t, f.imageIDs[i], img.ID)
		assert.Equal(t, "/files/uploads/photo.jpg", img.URL)
	}
}

func TestResolveUnknownCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Resolve(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef", nil)
	assert.ErrorIs(t, err, model.ErrShareNotFound)
}

func TestResolvePasswordGate(t *testing.T) {
	f := newFixture(t)

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
		Password:   strPtr("abc123"),
	})
	assert.True(t, resp.HasPassword)

	// missing and wrong passwords are indistinguishable
	_, err := f.svc.Resolve(context.Background(), resp.ShareCode, nil)
	assert.ErrorIs(t, err, model.ErrSharePasswordRequired)

	_, err = f.svc.Resolve(context.Background(), resp.ShareCode, strPtr("wrong"))
	assert.ErrorIs(t, err, model.ErrSharePasswordRequired)

	gallery, err := f.svc.Resolve(context.Background(), resp.ShareCode, strPtr("abc123"))
	require.NoError(t, err)
	assert.Len(t, gallery.Images, 3)
}

func TestResolveExpiredIsTerminal(t *testing.T) {
	f := newFixture(t)

	// seeded directly: create refuses past expiries
	expired := time.Now().Add(-time.Hour)
	hash := "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"
	link := &model.ShareLink{
		ID:           uuid.New(),
		ShareCode:    "00112233445566778899aabbccddeeff",
		EventID:      f.event.ID,
		FolderName:   "Highlights",
		ImageIDs:     f.imageIDs,
		PasswordHash: &hash,
		ExpiresAt:    &expired,
		CreatedBy:    f.ownerID,
		CreatedAt:    expired.Add(-time.Hour),
	}
	require.NoError(t, f.shares.Create(context.Background(), link))

	// expiry wins over the password gate, with or without a password
	_, err := f.svc.Resolve(context.Background(), link.ShareCode, nil)
	assert.ErrorIs(t, err, model.ErrShareExpired)

	_, err = f.svc.Resolve(context.Background(), link.ShareCode, strPtr("anything"))
	assert.ErrorIs(t, err, model.ErrShareExpired)
}

func TestResolveFutureExpiryStillActive(t *testing.T) {
	f := newFixture(t)

	future := time.Now().Add(time.Hour)
	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
		ExpiresAt:  &future,
	})

	gallery, err := f.svc.Resolve(context.Background(), resp.ShareCode, nil)
	require.NoError(t, err)
	assert.Len(t, gallery.Images, 3)
}

// ---------------------------------------------------------------------------
// revoke
// ---------------------------------------------------------------------------

func TestRevokeThenResolve(t *testing.T) {
	f := newFixture(t)

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})

	require.NoError(t, f.svc.Revoke(context.Background(), f.ownerID, resp.ShareCode))

	_, err := f.svc.Resolve(context.Background(), resp.ShareCode, nil)
	assert.ErrorIs(t, err, model.ErrShareNotFound)
}

func TestRevokeTwiceReturnsNotFound(t *testing.T) {
	f := newFixture(t)

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})

	require.NoError(t, f.svc.Revoke(context.Background(), f.ownerID, resp.ShareCode))

	err := f.svc.Revoke(context.Background(), f.ownerID, resp.ShareCode)
	assert.ErrorIs(t, err, model.ErrShareNotFound)
}

func TestRevokeRequiresOwnership(t *testing.T) {
	f := newFixture(t)

	resp := f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})

	err := f.svc.Revoke(context.Background(), uuid.New(), resp.ShareCode)
	assert.ErrorIs(t, err, model.ErrForbidden)

	// the link must survive the failed revoke
	_, err = f.svc.Resolve(context.Background(), resp.ShareCode, nil)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func TestListByEventRequiresOwnership(t *testing.T) {
	f := newFixture(t)

	f.create(t, model.CreateShareLinkRequest{
		EventID:    f.event.ID,
		FolderName: "Highlights",
		ImageIDs:   f.imageIDs,
	})

	links, err := f.svc.ListByEvent(context.Background(), f.ownerID, f.event.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	_, err = f.svc.ListByEvent(context.Background(), uuid.New(), f.event.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)
}
