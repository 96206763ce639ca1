// HTTP API over the pending-request store and the simulation engine. Thin
// plumbing: range validation and error shaping happen here so that the engine
// itself stays a total function over valid input.

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/seeksim/seeksim/sim"
)

// Server exposes the request CRUD and simulate endpoints.
type Server struct {
	store    *Store
	diskSize int
	mux      *http.ServeMux
}

// New builds a Server over the given store. diskSize bounds the addressable
// track range for request validation; 0 selects the 200-track default.
func New(store *Store, diskSize int) *Server {
	if diskSize <= 0 {
		diskSize = sim.DefaultDiskSize
	}
	s := &Server{store: store, diskSize: diskSize, mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /disk_requests", s.handleList)
	s.mux.HandleFunc("POST /add_disk_request", s.handleAdd)
	s.mux.HandleFunc("PUT /update_disk_request/{id}", s.handleUpdate)
	s.mux.HandleFunc("DELETE /delete_disk_request/{id}", s.handleDelete)
	s.mux.HandleFunc("POST /clear_disk_requests", s.handleClear)
	s.mux.HandleFunc("POST /simulate", s.handleSimulate)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	s.mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list requests: %v", err)
		return
	}
	if reqs == nil {
		reqs = []StoredRequest{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

type addRequestBody struct {
	RequestID   *int  `json:"request_id"`
	TrackNumber *int  `json:"track_number"`
	ArrivalTime int64 `json:"arrival_time"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var body addRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: %v", err)
		return
	}
	if body.RequestID == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: request_id")
		return
	}
	if body.TrackNumber == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: track_number")
		return
	}
	if *body.TrackNumber < 0 || *body.TrackNumber >= s.diskSize {
		writeError(w, http.StatusBadRequest, "Track number must be between 0 and %d", s.diskSize-1)
		return
	}
	if body.ArrivalTime < 0 {
		writeError(w, http.StatusBadRequest, "Arrival time must be non-negative")
		return
	}

	err := s.store.Add(StoredRequest{ID: *body.RequestID, Track: *body.TrackNumber, ArrivalTime: body.ArrivalTime})
	if _, ok := err.(*ErrDuplicateID); ok {
		writeError(w, http.StatusBadRequest, "Request ID already exists")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "add request: %v", err)
		return
	}

	observePending(s.store)
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Disk request added successfully"})
}

type updateRequestBody struct {
	TrackNumber *int   `json:"track_number"`
	ArrivalTime *int64 `json:"arrival_time"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	var body updateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: %v", err)
		return
	}

	existing, err := s.store.Get(id)
	if IsErrNotFound(err) {
		writeError(w, http.StatusNotFound, "Disk request not found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "fetch request: %v", err)
		return
	}

	// Absent fields keep their stored values.
	track := existing.Track
	if body.TrackNumber != nil {
		track = *body.TrackNumber
	}
	arrival := existing.ArrivalTime
	if body.ArrivalTime != nil {
		arrival = *body.ArrivalTime
	}
	if track < 0 || track >= s.diskSize {
		writeError(w, http.StatusBadRequest, "Track number must be between 0 and %d", s.diskSize-1)
		return
	}
	if arrival < 0 {
		writeError(w, http.StatusBadRequest, "Arrival time must be non-negative")
		return
	}

	if err := s.store.Update(id, track, arrival); err != nil {
		writeError(w, http.StatusInternalServerError, "update request: %v", err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Disk request updated successfully"})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	err = s.store.Delete(id)
	if IsErrNotFound(err) {
		writeError(w, http.StatusNotFound, "Disk request not found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, "delete request: %v", err)
		return
	}
	observePending(s.store)
	writeJSON(w, http.StatusOK, messageResponse{Message: "Disk request deleted successfully"})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "clear requests: %v", err)
		return
	}
	observePending(s.store)
	writeJSON(w, http.StatusOK, messageResponse{Message: "All disk requests cleared successfully"})
}

type simulateParams struct {
	Algorithm           string `json:"algorithm"`
	InitialHeadPosition int    `json:"initial_head_position"`
	DiskSize            int    `json:"disk_size"`
	Direction           string `json:"direction"`
}

type simulateResponse struct {
	Algorithm           string             `json:"algorithm"`
	HeadMovement        []sim.HeadMovement `json:"head_movement"`
	TotalSeekTime       int                `json:"total_seek_time"`
	Statistics          sim.Statistics     `json:"statistics"`
	InitialHeadPosition int                `json:"initial_head_position"`
	Message             string             `json:"message"`
}

func defaultSimulateParams() simulateParams {
	return simulateParams{
		Algorithm:           sim.AlgorithmFCFS,
		InitialHeadPosition: 50,
		DiskSize:            sim.DefaultDiskSize,
		Direction:           string(sim.DirectionUp),
	}
}

// validateSimulateParams applies the boundary's error taxonomy: invalid
// algorithm name, out-of-range head position, missing direction. The empty
// working set is checked separately against the store.
func (s *Server) validateSimulateParams(p simulateParams) (string, bool) {
	if !sim.IsValidAlgorithm(p.Algorithm) {
		return fmt.Sprintf("Invalid algorithm. Must be one of: %s", strings.Join(sim.Algorithms(), ", ")), false
	}
	if p.InitialHeadPosition < 0 || p.InitialHeadPosition >= p.DiskSize {
		return fmt.Sprintf("Initial head position must be between 0 and %d", p.DiskSize-1), false
	}
	if sim.NeedsDirection(p.Algorithm) {
		if _, err := sim.ParseDirection(p.Direction); err != nil {
			return `Direction must be "up" or "down" for SCAN and LOOK algorithms`, false
		}
	}
	return "", true
}

// runSimulation reads the pending set once and runs the selected policy.
// Returns a client-error message for the empty working set.
func (s *Server) runSimulation(p simulateParams) (simulateResponse, string, error) {
	stored, err := s.store.List()
	if err != nil {
		return simulateResponse{}, "", err
	}
	if len(stored) == 0 {
		return simulateResponse{}, "No disk requests found", nil
	}

	reqs := make([]sim.Request, len(stored))
	for i, sr := range stored {
		reqs[i] = sim.NewRequest(sr.ID, sr.Track, sr.ArrivalTime)
	}

	res, err := sim.Simulate(p.Algorithm, reqs, p.InitialHeadPosition, p.DiskSize, sim.Direction(p.Direction))
	if err != nil {
		return simulateResponse{}, "", err
	}

	observeSimulation(p.Algorithm, res.TotalSeekTime)
	logrus.Infof("simulated %s over %d requests: total seek %d", p.Algorithm, len(reqs), res.TotalSeekTime)

	return simulateResponse{
		Algorithm:           p.Algorithm,
		HeadMovement:        res.Trace,
		TotalSeekTime:       res.TotalSeekTime,
		Statistics:          res.Statistics,
		InitialHeadPosition: p.InitialHeadPosition,
		Message:             fmt.Sprintf("%s simulation completed successfully", strings.ToUpper(p.Algorithm)),
	}, "", nil
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	params := defaultSimulateParams()
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: %v", err)
		return
	}
	if msg, ok := s.validateSimulateParams(params); !ok {
		writeError(w, http.StatusBadRequest, "%s", msg)
		return
	}

	resp, clientErr, err := s.runSimulation(params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "simulate: %v", err)
		return
	}
	if clientErr != "" {
		writeError(w, http.StatusBadRequest, "%s", clientErr)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
