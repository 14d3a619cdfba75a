package access_test

import (
	"testing"

	"github.com/daygrid/scheduler/internal/errdef"
	"github.com/daygrid/scheduler/pkg/access"
	"github.com/daygrid/scheduler/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = &access.Actor{ID: 1}
	stranger = &access.Actor{ID: 2}
	admin    = &access.Actor{ID: 3, IsAdmin: true}
)

func TestCanView(t *testing.T) {
	public := access.Resource{AuthorID: 1, Category: model.CategoryEvent}
	private := access.Resource{AuthorID: 1, Private: true, Category: model.CategoryEvent}

	t.Run("public resource is visible to anyone", func(t *testing.T) {
		assert.NoError(t, access.CanView(nil, public))
		assert.NoError(t, access.CanView(stranger, public))
	})

	t.Run("private event is visible to its owner", func(t *testing.T) {
		assert.NoError(t, access.CanView(owner, private))
	})

	t.Run("private event is unauthorized for anonymous", func(t *testing.T) {
		err := access.CanView(nil, private)
		require.Error(t, err)
		assert.True(t, errdef.IsUnauthorized(err))
	})

	t.Run("private event is forbidden for other users", func(t *testing.T) {
		err := access.CanView(stranger, private)
		require.Error(t, err)
		assert.True(t, errdef.IsForbidden(err))
	})

	t.Run("private event is forbidden even for admins", func(t *testing.T) {
		err := access.CanView(admin, private)
		require.Error(t, err)
		assert.True(t, errdef.IsForbidden(err))
	})
}

func TestCanMutate(t *testing.T) {
	event := access.Resource{AuthorID: 1, Category: model.CategoryEvent}
	community := access.Resource{AuthorID: 1, Category: model.CategoryCommunity}
	notice := access.Resource{AuthorID: 1, Category: model.CategoryNotice}

	t.Run("owner may mutate own resources", func(t *testing.T) {
		assert.NoError(t, access.CanMutate(owner, event))
		assert.NoError(t, access.CanMutate(owner, community))
	})

	t.Run("admin may mutate resources of others", func(t *testing.T) {
		assert.NoError(t, access.CanMutate(admin, event))
		assert.NoError(t, access.CanMutate(admin, community))
		assert.NoError(t, access.CanMutate(admin, notice))
	})

	t.Run("admin may mutate private events of others", func(t *testing.T) {
		private := access.Resource{AuthorID: 1, Private: true, Category: model.CategoryEvent}
		assert.NoError(t, access.CanMutate(admin, private))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		err := access.CanMutate(stranger, event)
		require.Error(t, err)
		assert.True(t, errdef.IsForbidden(err))
	})

	t.Run("notice owned by a non-admin is still admin only", func(t *testing.T) {
		err := access.CanMutate(owner, notice)
		require.Error(t, err)
		assert.True(t, errdef.IsForbidden(err))
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		err := access.CanMutate(nil, event)
		require.Error(t, err)
		assert.True(t, errdef.IsUnauthorized(err))
	})
}

func TestCanCreate(t *testing.T) {
	t.Run("authenticated user may create events and community posts", func(t *testing.T) {
		assert.NoError(t, access.CanCreate(stranger, model.CategoryEvent))
		assert.NoError(t, access.CanCreate(stranger, model.CategoryCommunity))
	})

	t.Run("notice creation requires admin", func(t *testing.T) {
		err := access.CanCreate(stranger, model.CategoryNotice)
		require.Error(t, err)
		assert.True(t, errdef.IsForbidden(err))

		assert.NoError(t, access.CanCreate(admin, model.CategoryNotice))
	})

	t.Run("anonymous may create nothing", func(t *testing.T) {
		err := access.CanCreate(nil, model.CategoryEvent)
		require.Error(t, err)
		assert.True(t, errdef.IsUnauthorized(err))
	})
}

func TestActorFromUser(t *testing.T) {
	assert.Nil(t, access.ActorFromUser(nil))

	actor := access.ActorFromUser(&model.User{ID: 7, IsAdmin: true})
	require.NotNil(t, actor)
	assert.Equal(t, uint(7), actor.ID)
	assert.True(t, actor.IsAdmin)
}
