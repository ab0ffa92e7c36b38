package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/skills"
	"github.com/steaphangreene/acidmud-sub001/internal/storage"
	"github.com/steaphangreene/acidmud-sub001/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv  *Server
	loop *engine.Loop
	hero world.NodeID
	orc  world.NodeID
	stop func()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := world.New()
	room, err := w.CreateNamed(world.NoNode, "a dusty room")
	require.NoError(t, err)
	hero, err := w.CreateNamed(room.ID(), "the hero")
	require.NoError(t, err)
	hero.SetSkill(skills.Strength, 4)
	hero.SetPosition(world.PosStand)
	orc, err := w.CreateNamed(room.ID(), "an orc")
	require.NoError(t, err)
	require.NoError(t, w.AddAct(orc.ID(), world.ActFight, hero.ID()))
	require.NoError(t, w.AddAct(orc.ID(), world.ActPoint, hero.ID()))

	loop := engine.NewLoop(w)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, time.Millisecond) }()

	srv := NewServer(Config{Loop: loop, Registry: prometheus.NewRegistry()})
	return &fixture{
		srv:  srv,
		loop: loop,
		hero: hero.ID(),
		orc:  orc.ID(),
		stop: func() {
			cancel()
			<-done
		},
	}
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) GenericResponse {
	t.Helper()
	var raw struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return GenericResponse{Success: raw.Success, Message: raw.Message}
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	rec := f.get(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))
}

func TestWorldStats(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	rec := f.get(t, "/api/world/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats WorldStats
	resp := decode(t, rec, &stats)
	assert.True(t, resp.Success)
	// trash, templates, room, hero, orc
	assert.Equal(t, 5, stats.Nodes)
	assert.Equal(t, 3, stats.Roots)
	assert.Equal(t, 0, stats.TrashItems)
}

func TestNodeByID(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	rec := f.get(t, "/api/nodes/"+itoa(f.hero))
	require.Equal(t, http.StatusOK, rec.Code)

	var node storage.NodeRecord
	decode(t, rec, &node)
	assert.Equal(t, uint64(f.hero), node.ID)
	assert.Equal(t, "the hero", node.Short)
	assert.Equal(t, "STAND", node.Position)
	assert.Equal(t, int32(4), node.Skills[skills.Strength.String()])

	rec = f.get(t, "/api/nodes/"+itoa(f.orc))
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &node)
	var roles []string
	for _, a := range node.Acts {
		assert.Equal(t, uint64(f.hero), a.Target)
		roles = append(roles, a.Role)
	}
	assert.ElementsMatch(t, []string{world.ActFight.String(), world.ActPoint.String()}, roles)
}

func TestNodeErrors(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/nodes/abc").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/nodes/0").Code)

	rec := f.get(t, "/api/nodes/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decode(t, rec, nil).Success)

	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/nodes/999/touching").Code)
}

func TestTouching(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	rec := f.get(t, "/api/nodes/"+itoa(f.hero)+"/touching")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []TouchingRecord
	decode(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, uint64(f.orc), out[0].ID)
	assert.Equal(t, "an orc", out[0].Short)
	assert.ElementsMatch(t, []string{world.ActFight.String(), world.ActPoint.String()}, out[0].Roles)
}

func TestStoppedLoop(t *testing.T) {
	f := newFixture(t)
	f.stop()

	rec := f.get(t, "/api/world/stats")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	f.get(t, "/health")
	f.get(t, "/api/nodes/999")

	rec := f.get(t, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "inspect_api_request_seconds"))
	assert.True(t, strings.Contains(body, `inspect_api_requests_total{class="4xx",method="GET",route="/api/nodes/:id"} 1`))
}

func TestServerStats(t *testing.T) {
	f := newFixture(t)
	defer f.stop()

	rec := f.get(t, "/api/server")
	require.Equal(t, http.StatusOK, rec.Code)
	var st ProcessStats
	decode(t, rec, &st)
	assert.Positive(t, st.Goroutines)
	assert.NotEmpty(t, st.Uptime)
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5с", formatUptime(5*time.Second))
	assert.Equal(t, "2м 5с", formatUptime(2*time.Minute+5*time.Second))
	assert.Equal(t, "1ч 0м 0с", formatUptime(time.Hour))
	assert.Equal(t, "1д 1ч 0м 0с", formatUptime(25*time.Hour))
}

func itoa(id world.NodeID) string {
	return strconv.FormatUint(uint64(id), 10)
}
