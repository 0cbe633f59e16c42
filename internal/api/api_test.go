package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shu5555/jinro-app/internal/api"
	"github.com/Shu5555/jinro-app/internal/api/response"
	"github.com/Shu5555/jinro-app/internal/factory"
)

const rolesCSV = `name,team,category,ability
Werewolf,werewolf,general,Attacks one player each night
Great Wolf,werewolf,special,Survives one divination
Villager,villager,general,
Seer,villager,divination,Divines one player each night
Hunter,villager,guard,Guards one player each night
`

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	app.WordsService.LoadDefault()

	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		DistributionService: app.DistributionService,
		RevealService:       app.RevealService,
		VoteService:         app.VoteService,
		LotteryService:      app.LotteryService,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any, gmPassphrase string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if gmPassphrase != "" {
		req.Header.Set("X-GM-Passphrase", gmPassphrase)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

// Catalog conversion

func TestConvertSurvey(t *testing.T) {
	ts := newTestServer(t)

	survey := "name,1-1 role,1-2 ability,3-1 role\nalice,Whisperer,Talks to wolves,Seer\n"
	rr := ts.request(http.MethodPost, "/api/v1/catalog/convert", map[string]string{"survey_csv": survey}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[response.ConvertResponse](t, rr)
	require.Len(t, resp.Roles, 2)
	assert.Equal(t, "Whisperer", resp.Roles[0].Name)
	assert.Equal(t, "werewolf", resp.Roles[0].Team)
}

func TestConvertSurveyBadCSV(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/catalog/convert", map[string]string{"survey_csv": ""}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Distributions

func createDistribution(t *testing.T, ts *testServer) response.Distribution {
	t.Helper()

	body := map[string]any{
		"participants": []string{"alice", "bob", "carol", "dave"},
		"counts": []map[string]any{
			{"team": "werewolf", "count": 1},
			{"team": "villager", "count": 3},
		},
		"roles_csv": rolesCSV,
	}
	rr := ts.request(http.MethodPost, "/api/v1/distributions", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Distribution](t, rr)
}

func TestCreateDistribution(t *testing.T) {
	ts := newTestServer(t)

	dist := createDistribution(t, ts)
	assert.Len(t, dist.ID, 12)
	assert.NotEmpty(t, dist.Payload)
	assert.Len(t, dist.Passwords, 4)

	// Every participant got a distinct password
	seen := map[string]bool{}
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		pw := dist.Passwords[name]
		assert.NotEmpty(t, pw, "no password for %s", name)
		assert.False(t, seen[pw], "password %s issued twice", pw)
		seen[pw] = true
	}
}

func TestCreateDistributionCountMismatch(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"participants": []string{"alice", "bob"},
		"counts":       []map[string]any{{"team": "villager", "count": 3}},
		"roles_csv":    rolesCSV,
	}
	rr := ts.request(http.MethodPost, "/api/v1/distributions", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "COUNT_MISMATCH", errorCode(t, rr))
}

func TestCreateDistributionInsufficientRoles(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"participants": []string{"alice", "bob", "carol"},
		"counts":       []map[string]any{{"team": "werewolf", "category": "general", "count": 3}},
		"roles_csv":    rolesCSV,
	}
	rr := ts.request(http.MethodPost, "/api/v1/distributions", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "INSUFFICIENT_ROLES", errorCode(t, rr))
	// The message names the short team/category
	assert.Contains(t, rr.Body.String(), "werewolf/general")
}

func TestCreateDistributionWithoutRoles(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"participants": []string{"alice"},
		"counts":       []map[string]any{{"team": "villager", "count": 1}},
	}
	rr := ts.request(http.MethodPost, "/api/v1/distributions", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetDistributionPayload(t *testing.T) {
	ts := newTestServer(t)
	dist := createDistribution(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/distributions/"+dist.ID, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	payload := decode[response.Payload](t, rr)
	assert.Equal(t, dist.Payload, payload.Payload)
}

func TestGetDistributionNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/distributions/UNKNOWN12345", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "DISTRIBUTION_NOT_FOUND", errorCode(t, rr))
}

// Reveal

func TestRevealByID(t *testing.T) {
	ts := newTestServer(t)
	dist := createDistribution(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/distributions/"+dist.ID+"/reveal",
		map[string]string{"password": dist.Passwords["alice"]}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	a := decode[response.Assignment](t, rr)
	assert.Equal(t, "alice", a.ParticipantName)
	assert.NotEmpty(t, a.Role.Name)
	assert.NotEmpty(t, a.Role.WinCondition)
}

func TestRevealWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	dist := createDistribution(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/distributions/"+dist.ID+"/reveal",
		map[string]string{"password": "definitely-not-a-word"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "WRONG_PASSWORD", errorCode(t, rr))
}

func TestRevealOfflinePayload(t *testing.T) {
	ts := newTestServer(t)
	dist := createDistribution(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/reveal",
		map[string]string{"payload": dist.Payload, "password": dist.Passwords["bob"]}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	a := decode[response.Assignment](t, rr)
	assert.Equal(t, "bob", a.ParticipantName)
}

func TestRevealBadPayload(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/reveal",
		map[string]string{"payload": "garbage!!", "password": "apple"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "DECODE_FAILED", errorCode(t, rr))
}

// Sessions

func createSession(t *testing.T, ts *testServer) response.Session {
	t.Helper()

	body := map[string]any{
		"participants":  []string{"alice", "bob", "carol"},
		"gm_passphrase": "open sesame",
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[response.Session](t, rr)
}

func TestCreateSession(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"participants":  []string{"alice", "bob", "carol"},
		"gm_passphrase": "open sesame",
	}
	rr := ts.request(http.MethodPost, "/api/v1/sessions", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	session := decode[response.Session](t, rr)
	assert.Len(t, session.ID, 8)
	assert.Equal(t, []string{"alice", "bob", "carol"}, session.Participants)

	// Neither the votes nor the passphrase hash leave the server
	assert.NotContains(t, rr.Body.String(), "open sesame")
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestCreateSessionRequiresPassphrase(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions",
		map[string]any{"participants": []string{"alice"}}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVoteAndTally(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	for voter, target := range map[string]string{"alice": "bob", "carol": "bob", "bob": "alice"} {
		rr := ts.request(http.MethodPut, "/api/v1/sessions/"+session.ID+"/votes/"+voter,
			map[string]string{"target": target}, "")
		require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())
	}

	rr := ts.request(http.MethodGet, "/api/v1/sessions/"+session.ID+"/tally", nil, "open sesame")
	require.Equal(t, http.StatusOK, rr.Code)

	tally := decode[response.Tally](t, rr)
	assert.Equal(t, map[string]int{"bob": 2, "alice": 1}, tally.Votes)
}

func TestRevoteOverwrites(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	rr := ts.request(http.MethodPut, "/api/v1/sessions/"+session.ID+"/votes/alice",
		map[string]string{"target": "bob"}, "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = ts.request(http.MethodPut, "/api/v1/sessions/"+session.ID+"/votes/alice",
		map[string]string{"target": "carol"}, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	tallyRR := ts.request(http.MethodGet, "/api/v1/sessions/"+session.ID+"/tally", nil, "open sesame")
	tally := decode[response.Tally](t, tallyRR)
	assert.Equal(t, map[string]int{"carol": 1}, tally.Votes)
}

func TestVoteValidation(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	rr := ts.request(http.MethodPut, "/api/v1/sessions/"+session.ID+"/votes/mallory",
		map[string]string{"target": "bob"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "UNKNOWN_VOTER", errorCode(t, rr))

	rr = ts.request(http.MethodPut, "/api/v1/sessions/"+session.ID+"/votes/alice",
		map[string]string{"target": "GM"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "UNKNOWN_TARGET", errorCode(t, rr))
}

func TestTallyRequiresGMPassphrase(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/"+session.ID+"/tally", nil, "wrong")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "NOT_GM", errorCode(t, rr))
}

func TestSessionNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sessions/missing0", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", errorCode(t, rr))
}

// Chat

func TestChatFlow(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+session.ID+"/chat/alice",
		map[string]string{"from": "GM", "text": "you are the seer"}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+session.ID+"/chat/alice",
		map[string]string{"from": "alice", "text": "understood"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+session.ID+"/chat/alice", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	history := decode[response.ChatHistory](t, rr)
	assert.Equal(t, "GM-alice", history.Room)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "GM", history.Messages[0].From)
	assert.Equal(t, "understood", history.Messages[1].Text)

	// bob's room stays empty
	rr = ts.request(http.MethodGet, "/api/v1/sessions/"+session.ID+"/chat/bob", nil, "")
	bobHistory := decode[response.ChatHistory](t, rr)
	assert.Empty(t, bobHistory.Messages)
}

func TestChatRejectsNonParticipants(t *testing.T) {
	ts := newTestServer(t)
	session := createSession(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/sessions/"+session.ID+"/chat/mallory",
		map[string]string{"from": "GM", "text": "hi"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "UNKNOWN_CHAT_ROOM", errorCode(t, rr))

	// players cannot write into another player's room
	rr = ts.request(http.MethodPost, "/api/v1/sessions/"+session.ID+"/chat/alice",
		map[string]string{"from": "bob", "text": "psst"}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// Lottery

func TestCoinToss(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/lottery/coin", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	toss := decode[response.CoinToss](t, rr)
	assert.Contains(t, []string{"heads", "tails"}, toss.Result)
}

func TestDraw(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/lottery/draw",
		map[string]any{"candidates": []string{"alice", "bob"}}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	result := decode[response.DrawResult](t, rr)
	assert.Contains(t, []string{"alice", "bob"}, result.Winner)
}

func TestDrawWithoutCandidates(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/lottery/draw",
		map[string]any{"candidates": []string{}}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
