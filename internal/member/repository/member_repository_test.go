package repository

import (
	"context"
	"testing"

	apperrors "kiosk/internal/errors"
	"kiosk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemberRepository(db)
	id := testutil.InsertMember(t, db, "alice")

	member, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "alice", member.Name)

	_, err = repo.FindByID(context.Background(), 999)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestListAll_OrderedByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMemberRepository(db)
	testutil.InsertMember(t, db, "alice")
	testutil.InsertMember(t, db, "bob")

	members, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].Name)
	assert.Equal(t, "bob", members[1].Name)
}
