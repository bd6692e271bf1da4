package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayGuardRepository is a mock type for the PlayGuardRepository type
type PlayGuardRepository struct {
	mock.Mock
}

func (_m *PlayGuardRepository) Acquire(ctx context.Context, userID primitive.ObjectID, songID primitive.ObjectID, window time.Duration) (bool, error) {
	ret := _m.Called(ctx, userID, songID, window)
	r0 := ret.Get(0).(bool)
	return r0, ret.Error(1)
}

func (_m *PlayGuardRepository) Release(ctx context.Context, userID primitive.ObjectID, songID primitive.ObjectID) error {
	ret := _m.Called(ctx, userID, songID)
	return ret.Error(0)
}
