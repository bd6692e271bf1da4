package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeIndexView struct {
	coll    string
	created *[]string
	failOn  map[string]bool
}

func (v *fakeIndexView) CreateOne(_ context.Context, model mongo.IndexModel) (string, error) {
	name := v.coll + "." + *model.Options.Name
	*v.created = append(*v.created, name)
	if v.failOn[name] {
		return "", errors.New("index build failed")
	}
	return *model.Options.Name, nil
}

type fakeCollection struct {
	Collection
	view *fakeIndexView
}

func (c *fakeCollection) Indexes() IndexView { return c.view }

type fakeDatabase struct {
	Database
	created []string
	failOn  map[string]bool
}

func (d *fakeDatabase) Collection(name string) Collection {
	return &fakeCollection{view: &fakeIndexView{coll: name, created: &d.created, failOn: d.failOn}}
}

func TestCreateIndexes(t *testing.T) {
	t.Run("all indexes created", func(t *testing.T) {
		db := &fakeDatabase{}
		require.NoError(t, CreateIndexes(db))
		assert.Contains(t, db.created, domain.CollectionPlayGuard+".user_song_unique")
		assert.Contains(t, db.created, domain.CollectionPlayGuard+".expires_at_ttl")
	})

	t.Run("ordinary index failure is tolerated", func(t *testing.T) {
		db := &fakeDatabase{failOn: map[string]bool{domain.CollectionSong + ".genres": true}}
		assert.NoError(t, CreateIndexes(db))
	})

	t.Run("play guard unique index failure is fatal", func(t *testing.T) {
		db := &fakeDatabase{failOn: map[string]bool{domain.CollectionPlayGuard + ".user_song_unique": true}}
		err := CreateIndexes(db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.CollectionPlayGuard)
	})
}
