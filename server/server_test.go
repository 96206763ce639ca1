package server

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *Store) {
	t.Helper()
	store := newTestStore(t)
	return New(store, 0), store
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

// seedExampleRequests loads the textbook 8-request workload through the API.
func seedExampleRequests(t *testing.T, srv *Server) {
	t.Helper()
	tracks := []int{98, 183, 37, 122, 14, 124, 65, 67}
	for i, track := range tracks {
		body := fmt.Sprintf(`{"request_id": %d, "track_number": %d, "arrival_time": 0}`, i+1, track)
		rr := doJSON(t, srv, http.MethodPost, "/add_disk_request", body)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestAddDiskRequest_Valid_Returns201(t *testing.T) {
	srv, store := newTestServer(t)

	rr := doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 98}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 98, got.Track)
	assert.Equal(t, int64(0), got.ArrivalTime)
}

func TestAddDiskRequest_Validation(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing request_id", `{"track_number": 98}`},
		{"missing track_number", `{"request_id": 1}`},
		{"track too high", `{"request_id": 1, "track_number": 200}`},
		{"track negative", `{"request_id": 1, "track_number": -1}`},
		{"negative arrival", `{"request_id": 1, "track_number": 98, "arrival_time": -5}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, srv, http.MethodPost, "/add_disk_request", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "error")
		})
	}
}

func TestAddDiskRequest_DuplicateID_Returns400(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 98}`)

	rr := doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 37}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "already exists")
}

func TestGetDiskRequests_ReturnsOrderedList(t *testing.T) {
	srv, _ := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 2, "track_number": 37, "arrival_time": 5}`)
	doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 98, "arrival_time": 0}`)

	rr := doJSON(t, srv, http.MethodGet, "/disk_requests", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var reqs []StoredRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reqs))
	require.Len(t, reqs, 2)
	assert.Equal(t, 1, reqs[0].ID)
	assert.Equal(t, 2, reqs[1].ID)
}

func TestUpdateDiskRequest_PartialBodyKeepsStoredValues(t *testing.T) {
	srv, store := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 98, "arrival_time": 3}`)

	rr := doJSON(t, srv, http.MethodPut, "/update_disk_request/1", `{"track_number": 14}`)

	require.Equal(t, http.StatusOK, rr.Code)
	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Track)
	assert.Equal(t, int64(3), got.ArrivalTime)
}

func TestUpdateDiskRequest_Missing_Returns404(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doJSON(t, srv, http.MethodPut, "/update_disk_request/42", `{"track_number": 14}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteDiskRequest(t *testing.T) {
	srv, store := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/add_disk_request", `{"request_id": 1, "track_number": 98}`)

	rr := doJSON(t, srv, http.MethodDelete, "/delete_disk_request/1", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	_, err := store.Get(1)
	assert.True(t, IsErrNotFound(err))

	rr = doJSON(t, srv, http.MethodDelete, "/delete_disk_request/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestClearDiskRequests(t *testing.T) {
	srv, store := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/clear_disk_requests", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSimulate_FCFS_TextbookExample(t *testing.T) {
	srv, _ := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "fcfs", "initial_head_position": 53}`)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "fcfs", resp.Algorithm)
	assert.Equal(t, 640, resp.TotalSeekTime)
	assert.Equal(t, 8, resp.Statistics.TotalRequests)
	assert.Equal(t, 53, resp.InitialHeadPosition)
	assert.Len(t, resp.HeadMovement, 9) // start event + 8 services
	assert.Nil(t, resp.HeadMovement[0].RequestID)
}

func TestSimulate_SSTF_TextbookExample(t *testing.T) {
	srv, _ := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "sstf", "initial_head_position": 53}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp simulateResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 236, resp.TotalSeekTime)
}

func TestSimulate_DoesNotConsumeStoredRequests(t *testing.T) {
	// Two runs over the same persisted set must agree: the engine works on
	// private copies and the store is read-only during simulation.
	srv, store := newTestServer(t)
	seedExampleRequests(t, srv)

	first := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "scan", "initial_head_position": 53, "direction": "up"}`)
	second := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "scan", "initial_head_position": 53, "direction": "up"}`)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestSimulate_InvalidAlgorithm_Returns400(t *testing.T) {
	srv, _ := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "elevator"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid algorithm")
}

func TestSimulate_HeadOutOfRange_Returns400(t *testing.T) {
	srv, _ := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "fcfs", "initial_head_position": 200}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Initial head position")
}

func TestSimulate_ScanWithoutDirection_Returns400(t *testing.T) {
	srv, _ := newTestServer(t)
	seedExampleRequests(t, srv)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "scan", "initial_head_position": 53, "direction": "sideways"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Direction")
}

func TestSimulate_EmptyStore_Returns400(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doJSON(t, srv, http.MethodPost, "/simulate", `{"algorithm": "fcfs"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "No disk requests found")
}

func TestMetricsEndpoint_Serves(t *testing.T) {
	srv, _ := newTestServer(t)

	rr := doJSON(t, srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "disksched_pending_requests")
}
