// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/celebrate/models"
	"github.com/danielhkuo/celebrate/store"
	"github.com/danielhkuo/celebrate/testutil"
)

func getResults(t *testing.T, h *ResultsHandler) []models.ActivityResult {
	t.Helper()

	req := testutil.MakeRequest(http.MethodGet, "/api/anniversary-celebration-results/activities", nil, nil)
	w := httptest.NewRecorder()
	h.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.ActivityResult
	testutil.AssertJSON(t, w, &results)
	return results
}

func TestGetResults_NoVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewResultsHandler(store.New(conn))
	act := testutil.CreateTestActivity(t, conn, 1, "Best dessert?", "Cake", "Pie", "Ice cream")

	results := getResults(t, handler)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, act.ID, r.ActivityID)
	assert.Equal(t, "Best dessert?", r.Question)
	assert.Equal(t, 0, r.TotalVotes)
	require.Len(t, r.VoteCounts, 3, "options without votes are still listed")
	for i, vc := range r.VoteCounts {
		assert.Equal(t, act.OptionIDs[i], vc.OptionID)
		assert.Zero(t, vc.VoteCount)
	}
}

func TestGetResults_Tallies(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	handler := NewResultsHandler(s)

	// Inserted out of order on purpose
	act2 := testutil.CreateTestActivity(t, conn, 2, "Second?", "C", "D")
	act1 := testutil.CreateTestActivity(t, conn, 1, "First?", "A", "B")
	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")

	votes := []struct {
		user     int64
		activity testutil.TestActivity
		option   int
	}{
		{alice, act1, 0},
		{bob, act1, 0},
		{alice, act2, 1},
	}
	for _, v := range votes {
		require.NoError(t, s.SubmitVote(t.Context(), v.user, v.activity.ID, v.activity.OptionIDs[v.option], store.VoteMeta{}))
	}

	results := getResults(t, handler)
	require.Len(t, results, 2)

	assert.Equal(t, act1.ID, results[0].ActivityID)
	assert.Equal(t, 2, results[0].TotalVotes)
	assert.Equal(t, []models.VoteCount{
		{OptionID: act1.OptionIDs[0], OptionText: "A", VoteCount: 2},
		{OptionID: act1.OptionIDs[1], OptionText: "B", VoteCount: 0},
	}, results[0].VoteCounts)

	assert.Equal(t, act2.ID, results[1].ActivityID)
	assert.Equal(t, 1, results[1].TotalVotes)
	assert.Equal(t, []models.VoteCount{
		{OptionID: act2.OptionIDs[0], OptionText: "C", VoteCount: 0},
		{OptionID: act2.OptionIDs[1], OptionText: "D", VoteCount: 1},
	}, results[1].VoteCounts)
}

func TestGetResults_ChangedVoteCountsOnce(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	handler := NewResultsHandler(s)

	act := testutil.CreateTestActivity(t, conn, 1, "Best dessert?", "Cake", "Pie")
	alice := testutil.CreateTestUser(t, conn, "Alice")

	require.NoError(t, s.SubmitVote(t.Context(), alice, act.ID, act.OptionIDs[0], store.VoteMeta{}))
	require.NoError(t, s.SubmitVote(t.Context(), alice, act.ID, act.OptionIDs[1], store.VoteMeta{}))

	results := getResults(t, handler)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].TotalVotes)
	assert.Equal(t, 0, results[0].VoteCounts[0].VoteCount)
	assert.Equal(t, 1, results[0].VoteCounts[1].VoteCount)
}

func TestGetMessages(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	handler := NewResultsHandler(s)

	t.Run("empty", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/api/anniversary-celebration-results/messages", nil, nil)
		w := httptest.NewRecorder()
		handler.GetMessages(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	alice := testutil.CreateTestUser(t, conn, "Alice")
	bob := testutil.CreateTestUser(t, conn, "Bob")
	_, err := s.SubmitMessage(t.Context(), bob, "from bob")
	require.NoError(t, err)
	_, err = s.SubmitMessage(t.Context(), alice, "from alice")
	require.NoError(t, err)

	t.Run("all users oldest first", func(t *testing.T) {
		req := testutil.MakeRequest(http.MethodGet, "/api/anniversary-celebration-results/messages", nil, nil)
		w := httptest.NewRecorder()
		handler.GetMessages(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var messages []models.Message
		testutil.AssertJSON(t, w, &messages)
		require.Len(t, messages, 2)
		assert.Equal(t, bob, messages[0].UserID)
		assert.Equal(t, "from bob", messages[0].MessageText)
		assert.Equal(t, alice, messages[1].UserID)
	})
}
