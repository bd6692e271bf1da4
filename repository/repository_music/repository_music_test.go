package repository_music

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rhythmiq/rhythmiq-server/mongo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection 只记录 UpdateOne 调用
type fakeCollection struct {
	mongo.Collection
	filters   []interface{}
	updates   []interface{}
	updateErr error
	deleted   []interface{}
}

func (c *fakeCollection) DeleteOne(_ context.Context, filter interface{}) (int64, error) {
	c.deleted = append(c.deleted, filter)
	return 1, nil
}

func (c *fakeCollection) UpdateOne(_ context.Context, filter, update interface{}, _ ...*options.UpdateOptions) (*driver.UpdateResult, error) {
	c.filters = append(c.filters, filter)
	c.updates = append(c.updates, update)
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	return &driver.UpdateResult{UpsertedCount: 1}, nil
}

type fakeDatabase struct {
	mongo.Database
	coll *fakeCollection
}

func (d *fakeDatabase) Collection(string) mongo.Collection { return d.coll }

func TestBuildSearchFilter(t *testing.T) {
	filter := BuildSearchFilter([]string{"love", "a+b"})
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 6)

	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: "love", Options: "i"}}, or[0])
	assert.Equal(t, bson.M{"genres": primitive.Regex{Pattern: "love", Options: "i"}}, or[2])
	assert.Equal(t, bson.M{"description": primitive.Regex{Pattern: `a\+b`, Options: "i"}}, or[4])
}

func TestPlayGuardAcquire(t *testing.T) {
	userID, songID := primitive.NewObjectID(), primitive.NewObjectID()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	newRepo := func(coll *fakeCollection) *playGuardRepository {
		repo := NewPlayGuardRepository(&fakeDatabase{coll: coll}, "guards").(*playGuardRepository)
		repo.now = func() time.Time { return now }
		return repo
	}

	t.Run("first play inside the window", func(t *testing.T) {
		coll := &fakeCollection{}
		ok, err := newRepo(coll).Acquire(context.Background(), userID, songID, 30*time.Second)
		require.NoError(t, err)
		assert.True(t, ok)

		require.Len(t, coll.filters, 1)
		assert.Equal(t, bson.M{
			"user_id":    userID,
			"song_id":    songID,
			"expires_at": bson.M{"$lte": now},
		}, coll.filters[0])
		assert.Equal(t, bson.M{"$set": bson.M{"expires_at": now.Add(30 * time.Second)}}, coll.updates[0])
	})

	t.Run("duplicate key means already recorded", func(t *testing.T) {
		coll := &fakeCollection{updateErr: driver.WriteException{
			WriteErrors: []driver.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
		}}
		ok, err := newRepo(coll).Acquire(context.Background(), userID, songID, 30*time.Second)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other failures surface", func(t *testing.T) {
		coll := &fakeCollection{updateErr: errors.New("network down")}
		_, err := newRepo(coll).Acquire(context.Background(), userID, songID, 30*time.Second)
		assert.Error(t, err)
	})
}

func TestPlayGuardRelease(t *testing.T) {
	userID, songID := primitive.NewObjectID(), primitive.NewObjectID()
	coll := &fakeCollection{}

	require.NoError(t, NewPlayGuardRepository(&fakeDatabase{coll: coll}, "guards").Release(context.Background(), userID, songID))
	require.Len(t, coll.deleted, 1)
	assert.Equal(t, bson.M{"user_id": userID, "song_id": songID}, coll.deleted[0])
}
