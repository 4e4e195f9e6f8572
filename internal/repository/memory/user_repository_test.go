package memory

import (
	"context"
	"testing"
	"time"

	"jf-travels-be/internal/entity"
	"jf-travels-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryEmailLookupIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(SeedUsers())
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "AMAKA@EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "amaka@example.com", user.Email)

	ghost, err := repo.FindByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, ghost)
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(SeedUsers())

	err := repo.Create(context.Background(), &entity.User{
		Id:    uuid.New(),
		Email: "Amaka@Example.com",
		Role:  entity.UserRoleUser,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)

	repo.Save(&store.Session{ID: "tok-1", Email: "amaka@example.com"})
	session, ok := repo.Get("tok-1")
	require.True(t, ok)
	assert.Equal(t, "amaka@example.com", session.Email)

	assert.Eventually(t, func() bool {
		_, found := repo.Get("tok-1")
		return !found
	}, time.Second, 10*time.Millisecond)

	repo.Save(&store.Session{ID: "tok-2"})
	repo.Delete("tok-2")
	_, ok = repo.Get("tok-2")
	assert.False(t, ok)
}
