package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/ryujin/internal/domain"
)

func TestSelectServices_NewReplacesAndSaves(t *testing.T) {
	store := &fakeStore{names: []string{"redis"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	res, err := uc.Execute(SelectRequest{New: true, Services: []string{"a", "b"}})
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Equal(t, []string{"a", "b"}, store.names)
	assert.Equal(t, domain.ActionCleared, res.Events[0].Action)
}

func TestSelectServices_NewWithoutServicesClears(t *testing.T) {
	store := &fakeStore{names: []string{"redis"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	_, err := uc.Execute(SelectRequest{New: true})
	require.NoError(t, err)
	assert.Empty(t, store.names)
	assert.True(t, store.saved)
}

func TestSelectServices_UnknownDoesNotSave(t *testing.T) {
	store := &fakeStore{names: []string{"a"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	_, err := uc.Execute(SelectRequest{Add: true, Services: []string{"zzz", "b", "yyy"}})
	var us *domain.UnknownServiceError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, []string{"zzz", "yyy"}, us.Names)
	assert.False(t, store.saved)
	assert.Equal(t, []string{"a"}, store.names)
}

func TestSelectServices_AddIsIdempotent(t *testing.T) {
	store := &fakeStore{names: []string{"a"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	res, err := uc.Execute(SelectRequest{Add: true, Services: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.SelectionEvent{
		{Action: domain.ActionAlreadySelected, Service: "a"},
		{Action: domain.ActionAdded, Service: "b"},
	}, res.Events)
	assert.Equal(t, []string{"a", "b"}, store.names)
}

func TestSelectServices_DeleteEmptyFails(t *testing.T) {
	store := &fakeStore{}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	_, err := uc.Execute(SelectRequest{Delete: true})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.False(t, store.saved)
}

func TestSelectServices_RemoveThenPrint(t *testing.T) {
	store := &fakeStore{names: []string{"a", "b", "c"}}
	cat := &fakeCatalog{cat: sampleCatalog()}
	uc := NewSelectServices(cat, store)

	res, err := uc.Execute(SelectRequest{Remove: true, Print: true, Services: []string{"b", "redis"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, res.Selection)
	assert.Equal(t, []domain.SelectionEvent{
		{Action: domain.ActionRemoved, Service: "b"},
		{Action: domain.ActionNotSelected, Service: "redis"},
	}, res.Events)
	assert.Zero(t, cat.loads, "remove does not need the catalog")
}

func TestSelectServices_PrintOnlyDoesNotSave(t *testing.T) {
	store := &fakeStore{names: []string{"a"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	res, err := uc.Execute(SelectRequest{Print: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Selection)
	assert.False(t, store.saved)
}

func TestSelectServices_PrintEmptyFails(t *testing.T) {
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, &fakeStore{})
	_, err := uc.Execute(SelectRequest{Print: true})
	assert.True(t, domain.IsKind(err, domain.KindEmptySelection))
}

func TestSelectServices_StoreErrors(t *testing.T) {
	boom := errors.New("boom")

	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, &fakeStore{loadErr: boom})
	_, err := uc.Execute(SelectRequest{Print: true})
	assert.ErrorIs(t, err, boom)

	uc = NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, &fakeStore{saveErr: boom})
	res, err := uc.Execute(SelectRequest{Add: true, Services: []string{"a"}})
	assert.ErrorIs(t, err, boom)
	assert.False(t, res.Saved)
}

func TestSelectServices_Toggle(t *testing.T) {
	store := &fakeStore{names: []string{"a"}}
	uc := NewSelectServices(&fakeCatalog{cat: sampleCatalog()}, store)

	_, err := uc.Toggle("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, store.names)

	_, err = uc.Toggle("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, store.names)

	_, err = uc.Toggle("b")
	require.NoError(t, err)
	assert.Empty(t, store.names)
}
