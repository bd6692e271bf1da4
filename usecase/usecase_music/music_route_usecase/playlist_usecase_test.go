package music_route_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPlaylistUsecase() (*PlaylistUsecase, *mocks.PlaylistRepository, *mocks.SongRepository) {
	playlists := new(mocks.PlaylistRepository)
	songs := new(mocks.SongRepository)
	return NewPlaylistUsecase(playlists, songs, 5*time.Second), playlists, songs
}

func newPlaylist(owner primitive.ObjectID, private bool, songs ...primitive.ObjectID) *music_models.Playlist {
	return &music_models.Playlist{ID: primitive.NewObjectID(), Name: "Mix", CreatorUser: owner, Private: private, Songs: songs}
}

func TestCreatePlaylistKeepsKnownSongs(t *testing.T) {
	uc, playlists, songs := newPlaylistUsecase()
	owner := primitive.NewObjectID()
	known := newSong("Known")
	unknown := primitive.NewObjectID()
	songs.On("GetByIDs", mock.Anything, []primitive.ObjectID{known.ID, unknown}).Return([]*music_models.Song{known}, nil)
	playlists.On("Create", mock.Anything, mock.AnythingOfType("*music_models.Playlist")).Return(nil).Once()
	name := "Road trip"

	playlist, err := uc.Create(context.Background(), owner, &music_models.PlaylistRequest{
		Name:  &name,
		Songs: []string{known.ID.Hex(), "garbage", unknown.Hex(), known.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{known.ID}, playlist.Songs)
	assert.False(t, playlist.Private)
	assert.Equal(t, owner, playlist.CreatorUser)

	_, err = uc.Create(context.Background(), owner, &music_models.PlaylistRequest{})
	assert.True(t, music_models.IsValidationError(err, music_models.KindInvalidArgument))
}

func TestPrivatePlaylistHiddenFromOthers(t *testing.T) {
	uc, playlists, _ := newPlaylistUsecase()
	owner := primitive.NewObjectID()
	playlist := newPlaylist(owner, true)
	playlists.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)

	got, err := uc.Get(context.Background(), owner, playlist.ID.Hex())
	require.NoError(t, err)
	assert.Same(t, playlist, got)

	_, err = uc.Get(context.Background(), primitive.NewObjectID(), playlist.ID.Hex())
	assert.True(t, music_models.IsValidationError(err, music_models.KindNotFound))
}

func TestAddSongs(t *testing.T) {
	uc, playlists, songs := newPlaylistUsecase()
	owner := primitive.NewObjectID()
	playlist := newPlaylist(owner, false)
	song := newSong("Extra")
	playlists.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
	songs.On("GetByIDs", mock.Anything, []primitive.ObjectID{song.ID}).Return([]*music_models.Song{song}, nil)
	playlists.On("AddSongs", mock.Anything, playlist.ID, []primitive.ObjectID{song.ID}).Return(nil).Once()

	_, err := uc.AddSongs(context.Background(), owner, playlist.ID.Hex(), []string{song.ID.Hex()})
	require.NoError(t, err)
	playlists.AssertExpectations(t)

	_, err = uc.AddSongs(context.Background(), owner, playlist.ID.Hex(), []string{"bogus"})
	var ve *music_models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "No valid songs found", ve.Message)

	_, err = uc.AddSongs(context.Background(), primitive.NewObjectID(), playlist.ID.Hex(), []string{song.ID.Hex()})
	assert.True(t, music_models.IsValidationError(err, music_models.KindForbidden))
}

func TestGetSongsFollowsPlaylistOrder(t *testing.T) {
	uc, playlists, songs := newPlaylistUsecase()
	a, b := newSong("A"), newSong("B")
	playlist := newPlaylist(primitive.NewObjectID(), false, b.ID, a.ID)
	playlists.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
	songs.On("GetByIDs", mock.Anything, []primitive.ObjectID{b.ID, a.ID}).Return([]*music_models.Song{a, b}, nil)

	got, err := uc.GetSongs(context.Background(), primitive.NewObjectID(), playlist.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []*music_models.Song{b, a}, got)
}

func TestDeletePlaylistMissing(t *testing.T) {
	uc, playlists, _ := newPlaylistUsecase()
	id := primitive.NewObjectID()
	playlists.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	err := uc.Delete(context.Background(), primitive.NewObjectID(), id.Hex())
	assert.True(t, music_models.IsValidationError(err, music_models.KindNotFound))
}

func TestFollowOwnPlaylist(t *testing.T) {
	uc, playlists, _ := newPlaylistUsecase()
	owner := primitive.NewObjectID()
	playlist := newPlaylist(owner, false)
	playlists.On("GetByID", mock.Anything, playlist.ID).Return(playlist, nil)
	follower := primitive.NewObjectID()
	playlists.On("AddFollower", mock.Anything, playlist.ID, follower).Return(nil).Once()

	assert.Error(t, uc.Follow(context.Background(), owner, playlist.ID.Hex()))
	require.NoError(t, uc.Follow(context.Background(), follower, playlist.ID.Hex()))
	playlists.AssertExpectations(t)
}
