package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/yokai-server/internal/apierrors"
	"github.com/dtroode/yokai-server/internal/mocks"
	"github.com/dtroode/yokai-server/internal/model"
	"github.com/dtroode/yokai-server/internal/testutil"
)

func TestHost_Get(t *testing.T) {
	hostStore := mocks.NewHostStore(t)
	s := NewHost(hostStore, testutil.MakeNoopLogger())

	info := model.HostInfo{Hostname: "yokai.local", PrimaryColor: "#000000"}
	hostStore.On("Get", mock.Anything).Return(info, nil).Once()
	hostStore.On("Get", mock.Anything).Return(model.HostInfo{}, model.ErrNotFound).Once()

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, info, got)

	_, err = s.Get(context.Background())
	assert.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
}

func TestHost_Update(t *testing.T) {
	ctx := context.Background()
	admin := model.User{Username: "admin", IsAdmin: true}

	t.Run("admin", func(t *testing.T) {
		hostStore := mocks.NewHostStore(t)
		s := NewHost(hostStore, testutil.MakeNoopLogger())
		params := model.UpdateHostParams{PrimaryColor: testutil.Ptr("#123ABC")}
		hostStore.On("Update", mock.Anything, params).Return(nil)

		require.NoError(t, s.Update(ctx, admin, params))
	})

	t.Run("not admin", func(t *testing.T) {
		s := NewHost(mocks.NewHostStore(t), testutil.MakeNoopLogger())

		err := s.Update(ctx, model.User{Username: "alice"}, model.UpdateHostParams{PrimaryColor: testutil.Ptr("#123ABC")})
		assert.Equal(t, apierrors.KindAuthorization, apierrors.KindOf(err))
	})

	t.Run("invalid color", func(t *testing.T) {
		s := NewHost(mocks.NewHostStore(t), testutil.MakeNoopLogger())

		err := s.Update(ctx, admin, model.UpdateHostParams{TertiaryColor: testutil.Ptr("#DF00450")})
		assert.Equal(t, apierrors.KindValidation, apierrors.KindOf(err))
	})
}
