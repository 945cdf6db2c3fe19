//go:build integration_test || all_tests

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtrack/server/internal/auth"
	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/cardio"
	"github.com/xtrack/server/internal/stats"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/pkg"
)

func (s *IntegrationTestSuite) TestAuthFlow() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	session := s.signUp(ctx, "flow@xtrack.app")

	// duplicate email
	status := s.do(ctx, http.MethodPost, "/auth/signup", "", auth.SignUpRequest{
		Email: "flow@xtrack.app", Password: "wod-every-day", DisplayName: "Again",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	status = s.do(ctx, http.MethodPost, "/auth/signin", "", map[string]string{
		"email": "flow@xtrack.app", "password": "nope-nope-nope",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	var signedIn auth.Session
	status = s.do(ctx, http.MethodPost, "/auth/signin", "", map[string]string{
		"email": "flow@xtrack.app", "password": "wod-every-day",
	}, &signedIn)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, session.UserID, signedIn.UserID)

	var current auth.Session
	status = s.do(ctx, http.MethodGet, "/auth/session", signedIn.Token, nil, &current)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "flow@xtrack.app", current.Email)

	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPost, "/auth/signout", signedIn.Token, nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(ctx, http.MethodGet, "/strength", signedIn.Token, nil, nil))
}

func (s *IntegrationTestSuite) TestTrackingAndStats() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := s.signUp(ctx, fmt.Sprintf("athlete-%d@xtrack.app", time.Now().UnixNano())).Token
	today := pkg.DateOf(time.Now())
	yesterday := pkg.DateOf(time.Now().AddDate(0, 0, -1))

	var catalog []benchmarks.Benchmark
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/benchmarks", token, nil, &catalog))
	var fran *benchmarks.Benchmark
	for i := range catalog {
		if catalog[i].Name == "Fran" {
			fran = &catalog[i]
		}
	}
	require.NotNil(t, fran)

	// first Fran is a PR, a slower one is not, a faster one is
	var first, slower, faster benchmarks.Result
	require.Equal(t, http.StatusCreated, s.do(ctx, http.MethodPost, "/benchmarks/results", token,
		benchmarks.Result{BenchmarkID: fran.ID, Result: "5:10", Date: yesterday}, &first))
	assert.True(t, first.IsPr)
	require.NotNil(t, first.ResultSeconds)
	assert.Equal(t, 310, *first.ResultSeconds)

	require.Equal(t, http.StatusCreated, s.do(ctx, http.MethodPost, "/benchmarks/results", token,
		benchmarks.Result{BenchmarkID: fran.ID, Result: "5:40", Date: today}, &slower))
	assert.False(t, slower.IsPr)

	require.Equal(t, http.StatusCreated, s.do(ctx, http.MethodPost, "/benchmarks/results", token,
		benchmarks.Result{BenchmarkID: fran.ID, Result: "4:55", Scale: benchmarks.ScaleRX, Date: today}, &faster))
	assert.True(t, faster.IsPr)

	assert.Equal(t, http.StatusBadRequest, s.do(ctx, http.MethodPost, "/benchmarks/results", token,
		benchmarks.Result{BenchmarkID: fran.ID, Result: "fast", Date: today}, nil))

	sets := 5
	var squat strength.Record
	require.Equal(t, http.StatusCreated, s.do(ctx, http.MethodPost, "/strength", token,
		strength.Record{Exercise: "Back Squat", Weight: 120, Reps: 5, Sets: &sets, Date: today}, &squat))
	assert.True(t, squat.IsPr)
	require.NotNil(t, squat.Estimated1RM)
	assert.InDelta(t, 140.0, *squat.Estimated1RM, 0.1)

	distance := 5.0
	var run cardio.Activity
	require.Equal(t, http.StatusCreated, s.do(ctx, http.MethodPost, "/cardio", token,
		cardio.Activity{ActivityType: cardio.TypeRun, Name: "easy 5k", Date: today, DurationMinutes: 28, DistanceKm: &distance}, &run))
	assert.True(t, run.IsPr)

	weight := 82.5
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodPut, "/body/metrics", token,
		body.Metric{Date: today, Weight: &weight}, nil))

	var report stats.Report
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/stats?range=all", token, nil, &report))
	assert.Equal(t, 4, report.Overview.TotalWorkouts)
	assert.Equal(t, 3, report.Overview.TotalPRs)
	assert.Equal(t, 82.5, report.Bodyweight)

	// a write drops the cached report
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodDelete, fmt.Sprintf("/benchmarks/results/%d", slower.ID), token, nil, nil))
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/stats?range=all", token, nil, &report))
	assert.Equal(t, 3, report.Overview.TotalWorkouts)

	var dashboard stats.Dashboard
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/stats/dashboard", token, nil, &dashboard))
	assert.Equal(t, 1, dashboard.StrengthPRs)

	var cardioSummary stats.CardioSummary
	require.Equal(t, http.StatusOK, s.do(ctx, http.MethodGet, "/stats/cardio", token, nil, &cardioSummary))
	assert.Equal(t, 1, cardioSummary.TotalActivities)
	assert.Equal(t, 5.0, cardioSummary.TotalDistanceKm)

	// records of another user stay invisible
	otherToken := s.signUp(ctx, fmt.Sprintf("other-%d@xtrack.app", time.Now().UnixNano())).Token
	assert.Equal(t, http.StatusNotFound, s.do(ctx, http.MethodGet, fmt.Sprintf("/strength/%d", squat.ID), otherToken, nil, nil))
}
