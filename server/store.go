// The pending-request store. Requests added through the HTTP API are persisted
// in buntdb (a single-file embedded key/value store) as JSON values under a
// per-collection key prefix, and read back ordered by (arrivalTime, id),
// the one capability the engine needs from its persistence collaborator.

package server

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/buntdb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const requestKeyPrefix = "request:"

// StoredRequest is one persisted pending request.
type StoredRequest struct {
	ID          int   `json:"request_id"`
	Track       int   `json:"track_number"`
	ArrivalTime int64 `json:"arrival_time"`
}

// ErrDuplicateID reports an Add with a request id that already exists.
type ErrDuplicateID struct {
	id int
}

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("request id %d already exists", e.id)
}

// ErrNotFound reports an operation on a request id that does not exist.
type ErrNotFound struct {
	id int
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("disk request %d not found", e.id)
}

// IsErrNotFound returns true if err is the store's not-found error.
func IsErrNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}

// Store persists pending disk requests across simulate calls.
type Store struct {
	db *buntdb.DB
}

// OpenStore opens (creating if necessary) the request database at path.
// Pass ":memory:" for an ephemeral store.
func OpenStore(path string) (*Store, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open request store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close syncs and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func requestKey(id int) string {
	return fmt.Sprintf("%s%012d", requestKeyPrefix, id)
}

// Add persists a new pending request. The caller-assigned id must be unique;
// a clash yields ErrDuplicateID.
func (s *Store) Add(r StoredRequest) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		key := requestKey(r.ID)
		if _, err := tx.Get(key); err == nil {
			return &ErrDuplicateID{id: r.ID}
		} else if err != buntdb.ErrNotFound {
			return err
		}
		_, _, err := tx.Set(key, string(data), nil)
		return err
	})
}

// Get returns a single pending request by id.
func (s *Store) Get(id int) (StoredRequest, error) {
	var r StoredRequest
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(requestKey(id))
		if err == buntdb.ErrNotFound {
			return &ErrNotFound{id: id}
		} else if err != nil {
			return err
		}
		return json.Unmarshal([]byte(value), &r)
	})
	return r, err
}

// Update rewrites the track and arrival time of an existing request.
func (s *Store) Update(id, track int, arrivalTime int64) error {
	data, err := json.Marshal(StoredRequest{ID: id, Track: track, ArrivalTime: arrivalTime})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *buntdb.Tx) error {
		key := requestKey(id)
		if _, err := tx.Get(key); err == buntdb.ErrNotFound {
			return &ErrNotFound{id: id}
		} else if err != nil {
			return err
		}
		_, _, err := tx.Set(key, string(data), nil)
		return err
	})
}

// Delete removes a single pending request.
func (s *Store) Delete(id int) error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		if _, err := tx.Delete(requestKey(id)); err == buntdb.ErrNotFound {
			return &ErrNotFound{id: id}
		} else if err != nil {
			return err
		}
		return nil
	})
}

// Clear removes every pending request.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *buntdb.Tx) error {
		var keys []string
		err := tx.AscendKeys(requestKeyPrefix+"*", func(key, _ string) bool {
			keys = append(keys, key)
			return true
		})
		if err != nil {
			return err
		}
		for _, key := range keys {
			if _, err := tx.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns every pending request ordered by (arrivalTime, id), the
// admission order the engine consumes.
func (s *Store) List() ([]StoredRequest, error) {
	var reqs []StoredRequest
	err := s.db.View(func(tx *buntdb.Tx) error {
		var innerErr error
		err := tx.AscendKeys(requestKeyPrefix+"*", func(key, value string) bool {
			var r StoredRequest
			if innerErr = json.Unmarshal([]byte(value), &r); innerErr != nil {
				return false
			}
			reqs = append(reqs, r)
			return true
		})
		if err != nil {
			return err
		}
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reqs, func(i, j int) bool {
		if reqs[i].ArrivalTime != reqs[j].ArrivalTime {
			return reqs[i].ArrivalTime < reqs[j].ArrivalTime
		}
		return reqs[i].ID < reqs[j].ID
	})
	return reqs, nil
}

// Count returns the number of pending requests.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(requestKeyPrefix+"*", func(_, _ string) bool {
			n++
			return true
		})
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
