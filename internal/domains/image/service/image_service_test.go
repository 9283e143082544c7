package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/image/model"
	"eventgallery-backend/pkg/editwindow"
)

// ---------------------------------------------------------------------------
// fakes
// ---------------------------------------------------------------------------

type fakeImageRepo struct {
	images map[uuid.UUID]*model.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[uuid.UUID]*model.Image)}
}

func (f *fakeImageRepo) Create(_ context.Context, image *model.Image) error {
	f.images[image.ID] = image
	return nil
}

func (f *fakeImageRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Image, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, model.ErrImageNotFound
	}
	return img, nil
}

func (f *fakeImageRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*model.Image, error) {
	var out []*model.Image
	for _, id := range ids {
		if img, ok := f.images[id]; ok {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*model.ImageWithGuest, error) {
	var out []*model.ImageWithGuest
	for _, img := range f.images {
		if img.EventID == eventID {
			out = append(out, &model.ImageWithGuest{Image: *img})
		}
	}
	return out, nil
}

func (f *fakeImageRepo) ListByEventAndGuest(_ context.Context, eventID, guestID uuid.UUID) ([]*model.Image, error) {
	var out []*model.Image
	for _, img := range f.images {
		if img.EventID == eventID && img.GuestID == guestID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.images[id]; !ok {
		return model.ErrImageNotFound
	}
	delete(f.images, id)
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

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func dateDaysAgo(days int) time.Time {
	d := time.Now().AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func setup(t *testing.T, eventDate time.Time) (ImageService, *fakeImageRepo, *eventmodel.Event, uuid.UUID) {
	t.Helper()

	events := newFakeEventRepo()
	images := newFakeImageRepo()

	owner := uuid.New()
	event := &eventmodel.Event{
		ID:        uuid.New(),
		Code:      "abc123def456",
		Name:      "Spring Wedding",
		EventDate: eventDate,
		CreatedBy: owner,
		CreatedAt: time.Now(),
	}
	require.NoError(t, events.Create(context.Background(), event))

	policy, err := editwindow.NewPolicy(1)
	require.NoError(t, err)

	svc := NewImageService(images, events, policy, "/files")
	return svc, images, event, owner
}

func seedImage(t *testing.T, repo *fakeImageRepo, eventID, guestID uuid.UUID) uuid.UUID {
	t.Helper()
	img := &model.Image{
		ID:         uuid.New(),
		EventID:    eventID,
		GuestID:    guestID,
		FileName:   "photo.jpg",
		StorageURL: "uploads/photo.jpg",
		UploadedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), img))
	return img.ID
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestGuestCanDeleteOwnUploadWithinWindow(t *testing.T) {
	svc, images, event, _ := setup(t, dateDaysAgo(0))
	guestID := uuid.New()
	imageID := seedImage(t, images, event.ID, guestID)

	err := svc.DeleteAsGuest(context.Background(), guestID, imageID)
	require.NoError(t, err)

	_, err = images.GetByID(context.Background(), imageID)
	assert.ErrorIs(t, err, model.ErrImageNotFound)
}

func TestGuestCannotDeleteAfterWindowCloses(t *testing.T) {
	svc, images, event, _ := setup(t, dateDaysAgo(10))
	guestID := uuid.New()
	imageID := seedImage(t, images, event.ID, guestID)

	err := svc.DeleteAsGuest(context.Background(), guestID, imageID)
	assert.ErrorIs(t, err, model.ErrEditWindowClosed)

	// the record must still exist
	_, err = images.GetByID(context.Background(), imageID)
	assert.NoError(t, err)
}

func TestGuestCannotDeleteAnotherGuestsUpload(t *testing.T) {
	svc, images, event, _ := setup(t, dateDaysAgo(0))
	owner := uuid.New()
	imageID := seedImage(t, images, event.ID, owner)

	err := svc.DeleteAsGuest(context.Background(), uuid.New(), imageID)
	assert.ErrorIs(t, err, model.ErrNotImageOwner)
}

func TestCustomerCanDeleteAnyTime(t *testing.T) {
	// window long closed, customer deletion is not subject to it
	svc, images, event, ownerID := setup(t, dateDaysAgo(365))
	imageID := seedImage(t, images, event.ID, uuid.New())

	err := svc.DeleteAsCustomer(context.Background(), ownerID, imageID)
	require.NoError(t, err)

	_, err = images.GetByID(context.Background(), imageID)
	assert.ErrorIs(t, err, model.ErrImageNotFound)
}

func TestCustomerCannotDeleteFromForeignEvent(t *testing.T) {
	svc, images, event, _ := setup(t, dateDaysAgo(0))
	imageID := seedImage(t, images, event.ID, uuid.New())

	err := svc.DeleteAsCustomer(context.Background(), uuid.New(), imageID)
	assert.ErrorIs(t, err, eventmodel.ErrNotEventOwner)
}

func TestDeleteMissingImage(t *testing.T) {
	svc, _, _, _ := setup(t, dateDaysAgo(0))

	err := svc.DeleteAsGuest(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, model.ErrImageNotFound)
}

func TestRecordUploadBuildsPublicURL(t *testing.T) {
	svc, _, event, _ := setup(t, dateDaysAgo(0))
	guestID := uuid.New()

	resp, err := svc.RecordUpload(context.Background(), guestID, event.ID, model.RecordUploadRequest{
		FileName:   "photo.jpg",
		StorageURL: "uploads/photo.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "/files/uploads/photo.jpg", resp.URL)
	assert.Equal(t, guestID, resp.GuestID)
}
