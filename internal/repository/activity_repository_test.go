package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tareqmahmud/letterdesk/internal/model"
)

func TestActivityRepoCreateAndGet(t *testing.T) {
	repo := NewActivityRepo(newTestDB(t))
	ctx := context.Background()

	form := json.RawMessage(`{"dueAmount":"৫০০০","dueMonths":"3"}`)
	require.NoError(t, repo.Create(ctx, model.LetterActivity{
		ID:            "a1",
		AccountNumber: "12345",
		ConsumerName:  "আব্দুল করিম",
		Subject:       "বিষয়: বকেয়া বিদ্যুৎ বিল পরিশোধ এবং সংযোগ বিচ্ছিন্নকরণ নোটিশ প্রসঙ্গে।",
		CreatedBy:     "rahim@office.gov.bd",
		Date:          "2026-08-29",
		LetterType:    "due",
		FormData:      form,
	}))

	a, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "12345", a.AccountNumber)
	assert.Equal(t, "due", a.LetterType)
	// The form snapshot round-trips byte for byte.
	assert.JSONEq(t, string(form), string(a.FormData))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepoNullableColumns(t *testing.T) {
	repo := NewActivityRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.LetterActivity{
		ID:            "a1",
		AccountNumber: "1",
		ConsumerName:  "X",
		Subject:       "s",
		CreatedBy:     "u",
		Date:          "2026-08-29",
	}))

	a, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Empty(t, a.LetterType)
	assert.Nil(t, a.FormData)
}

func TestActivityRepoFindByKey(t *testing.T) {
	repo := NewActivityRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.LetterActivity{
		ID: "a1", AccountNumber: "100", ConsumerName: "X",
		Subject: "subject-a", CreatedBy: "u1", Date: "2026-08-28",
	}))

	a, err := repo.FindByKey(ctx, "100", "subject-a", "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)

	// Any component of the key differing means no match.
	_, err = repo.FindByKey(ctx, "100", "subject-a", "2026-08-29")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByKey(ctx, "100", "subject-b", "2026-08-28")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByKey(ctx, "101", "subject-a", "2026-08-28")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepoListFilters(t *testing.T) {
	repo := NewActivityRepo(newTestDB(t))
	ctx := context.Background()

	seed := []model.LetterActivity{
		{ID: "a1", AccountNumber: "1", ConsumerName: "X", Subject: "s1", CreatedBy: "u1", Date: "2026-08-28"},
		{ID: "a2", AccountNumber: "2", ConsumerName: "Y", Subject: "s2", CreatedBy: "u2", Date: "2026-08-28"},
		{ID: "a3", AccountNumber: "3", ConsumerName: "Z", Subject: "s3", CreatedBy: "u1", Date: "2026-08-29"},
	}
	for _, a := range seed {
		require.NoError(t, repo.Create(ctx, a))
	}

	all, err := repo.List(ctx, ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a3", all[0].ID) // newest first

	byUser, err := repo.List(ctx, ActivityFilter{CreatedBy: "u1"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byDay, err := repo.List(ctx, ActivityFilter{Date: "2026-08-28"})
	require.NoError(t, err)
	assert.Len(t, byDay, 2)

	both, err := repo.List(ctx, ActivityFilter{CreatedBy: "u1", Date: "2026-08-28"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "a1", both[0].ID)

	limited, err := repo.List(ctx, ActivityFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestActivityRepoDelete(t *testing.T) {
	repo := NewActivityRepo(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, model.LetterActivity{
		ID: "a1", AccountNumber: "1", ConsumerName: "X",
		Subject: "s", CreatedBy: "u", Date: "2026-08-29",
	}))
	require.NoError(t, repo.Delete(ctx, "a1"))
	assert.ErrorIs(t, repo.Delete(ctx, "a1"), ErrNotFound)
}
