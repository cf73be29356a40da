package appearance

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu       sync.Mutex
	mode     Mode
	has      bool
	setErr   error
	readErr  error
	setCalls int

	// beforeSave runs inside SetTheme before anything is written.
	beforeSave func(Mode)
}

func (f *fakeStore) Theme() (Mode, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode, f.has, f.readErr
}

func (f *fakeStore) SetTheme(m Mode) error {
	if f.beforeSave != nil {
		f.beforeSave(m)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.mode, f.has = m, true
	return nil
}

func (f *fakeStore) ClearTheme() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode, f.has = "", false
	return nil
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	_, err = ParseMode("sepia")
	assert.Error(t, err)

	assert.Equal(t, Light, Dark.Opposite())
	assert.Equal(t, Dark, Light.Opposite())
}

func TestResolver_StoredWins(t *testing.T) {
	store := &fakeStore{mode: Light, has: true}
	r := NewResolver(store, NewStatic(Dark), nil)
	assert.Equal(t, Light, r.Mode())
	assert.Equal(t, OriginStored, r.Origin())
}

func TestResolver_FollowsOSWhenNothingStored(t *testing.T) {
	os := NewStatic(Dark)
	r := NewResolver(&fakeStore{}, os, nil)
	r.Start()
	defer r.Close()

	assert.Equal(t, Dark, r.Mode())
	assert.Equal(t, OriginOS, r.Origin())

	var applied []Mode
	r.OnChange(func(m Mode) { applied = append(applied, m) })

	os.Set(Light)
	assert.Equal(t, Light, r.Mode())
	assert.Equal(t, []Mode{Light}, applied)
}

func TestResolver_OSChangeIgnoredAfterExplicitChoice(t *testing.T) {
	os := NewStatic(Light)
	store := &fakeStore{}
	r := NewResolver(store, os, nil)
	r.Start()
	defer r.Close()

	require.NoError(t, r.Set(Dark))
	os.Set(Light)
	os.Set(Dark)
	os.Set(Light)

	assert.Equal(t, Dark, r.Mode())
	m, ok, _ := store.Theme()
	assert.True(t, ok)
	assert.Equal(t, Dark, m)
}

func TestResolver_OSChangeNotPersisted(t *testing.T) {
	os := NewStatic(Light)
	store := &fakeStore{}
	r := NewResolver(store, os, nil)
	r.Start()
	defer r.Close()

	os.Set(Dark)
	assert.Equal(t, Dark, r.Mode())
	assert.Equal(t, 0, store.setCalls)
}

func TestResolver_SetAppliesBeforePersist(t *testing.T) {
	store := &fakeStore{setErr: errors.New("disk full")}
	r := NewResolver(store, NewStatic(Light), nil)

	var applied []Mode
	r.OnChange(func(m Mode) { applied = append(applied, m) })

	err := r.Set(Dark)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, Dark, r.Mode())
	assert.Equal(t, []Mode{Dark}, applied)
}

func TestResolver_ExplicitChoiceSurvivesPersistFailure(t *testing.T) {
	os := NewStatic(Light)
	store := &fakeStore{setErr: errors.New("disk full")}
	r := NewResolver(store, os, nil)
	r.Start()
	defer r.Close()

	require.Error(t, r.Set(Dark))
	os.Set(Dark)
	os.Set(Light)

	assert.Equal(t, Dark, r.Mode())
	assert.Equal(t, OriginStored, r.Origin())
}

func TestResolver_OSChangeDuringSaveIgnored(t *testing.T) {
	os := NewStatic(Dark)
	store := &fakeStore{}
	store.beforeSave = func(Mode) { os.Set(Light) }
	r := NewResolver(store, os, nil)
	r.Start()
	defer r.Close()

	require.NoError(t, r.Set(Dark))

	saved, ok, err := store.Theme()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Dark, saved)
	assert.Equal(t, saved, r.Mode())

	os.Set(Dark)
	os.Set(Light)
	assert.Equal(t, Dark, r.Mode())
}

func TestResolver_StartCatchesUpWithSource(t *testing.T) {
	os := NewStatic(Dark)
	r := NewResolver(&fakeStore{}, os, nil)

	var applied []Mode
	r.OnChange(func(m Mode) { applied = append(applied, m) })

	os.Set(Light)
	assert.Equal(t, Dark, r.Mode())

	r.Start()
	defer r.Close()
	assert.Equal(t, Light, r.Mode())
	assert.Equal(t, []Mode{Light}, applied)
}

func TestResolver_StartKeepsStoredChoice(t *testing.T) {
	os := NewStatic(Dark)
	r := NewResolver(&fakeStore{mode: Light, has: true}, os, nil)
	r.Start()
	defer r.Close()

	assert.Equal(t, Light, r.Mode())
	assert.Equal(t, OriginStored, r.Origin())
}

func TestResolver_Toggle(t *testing.T) {
	store := &fakeStore{}
	r := NewResolver(store, NewStatic(Light), nil)

	m, err := r.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, m)

	m, err = r.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, m)
	assert.Equal(t, 2, store.setCalls)
}

func TestResolver_ClearRefollowsOS(t *testing.T) {
	os := NewStatic(Dark)
	store := &fakeStore{mode: Light, has: true}
	r := NewResolver(store, os, nil)
	r.Start()
	defer r.Close()

	require.NoError(t, r.Clear())
	assert.Equal(t, Dark, r.Mode())
	assert.Equal(t, OriginOS, r.Origin())

	os.Set(Light)
	assert.Equal(t, Light, r.Mode())
}

func TestResolver_InvalidStoredTreatedAsAbsent(t *testing.T) {
	r := NewResolver(&fakeStore{mode: "sepia", has: true}, NewStatic(Dark), nil)
	assert.Equal(t, Dark, r.Mode())
}

func TestResolver_ReadErrorFallsBackToOS(t *testing.T) {
	r := NewResolver(&fakeStore{readErr: errors.New("boom")}, NewStatic(Dark), nil)
	assert.Equal(t, Dark, r.Mode())
}

func TestResolver_CloseUnsubscribes(t *testing.T) {
	os := NewStatic(Light)
	r := NewResolver(&fakeStore{}, os, nil)
	r.Start()
	r.Start()
	assert.Equal(t, 1, os.Subscribers())

	r.Close()
	assert.Equal(t, 0, os.Subscribers())

	os.Set(Dark)
	assert.Equal(t, Light, r.Mode())
}

func TestResolver_SetRejectsInvalid(t *testing.T) {
	r := NewResolver(&fakeStore{}, NewStatic(Light), nil)
	assert.Error(t, r.Set("sepia"))
	assert.Equal(t, Light, r.Mode())
}
