// Websocket endpoint that replays a simulation result to the client one
// head-movement at a time, replacing poll-based chart feeds. The run itself is
// still a one-shot deterministic computation; only the delivery is streamed.

package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/seeksim/seeksim/sim"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The API carries no credentials; any origin may connect.
		return true
	},
}

// Client message types
type wsClientMessage struct {
	Type   string          `json:"type"`
	Params *simulateParams `json:"params,omitempty"`
}

// Server message types
type wsServerMessage struct {
	Type          string            `json:"type"`
	Error         string            `json:"error,omitempty"`
	Movement      *sim.HeadMovement `json:"movement,omitempty"`
	TotalSeekTime int               `json:"total_seek_time,omitempty"`
	Statistics    *sim.Statistics   `json:"statistics,omitempty"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Errorf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg wsClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.Debugf("websocket read: %v", err)
			}
			return
		}
		if msg.Type != "simulate" {
			s.wsError(conn, "unknown message type %q", msg.Type)
			continue
		}

		params := defaultSimulateParams()
		if msg.Params != nil {
			params = *msg.Params
		}
		if errMsg, ok := s.validateSimulateParams(params); !ok {
			s.wsError(conn, "%s", errMsg)
			continue
		}

		resp, clientErr, err := s.runSimulation(params)
		if err != nil {
			s.wsError(conn, "simulate: %v", err)
			continue
		}
		if clientErr != "" {
			s.wsError(conn, "%s", clientErr)
			continue
		}

		for i := range resp.HeadMovement {
			ev := resp.HeadMovement[i]
			if err := conn.WriteJSON(wsServerMessage{Type: "movement", Movement: &ev}); err != nil {
				logrus.Debugf("websocket write: %v", err)
				return
			}
		}
		stats := resp.Statistics
		if err := conn.WriteJSON(wsServerMessage{
			Type:          "result",
			TotalSeekTime: resp.TotalSeekTime,
			Statistics:    &stats,
		}); err != nil {
			logrus.Debugf("websocket write: %v", err)
			return
		}
	}
}

func (s *Server) wsError(conn *websocket.Conn, format string, args ...any) {
	if err := conn.WriteJSON(wsServerMessage{Type: "error", Error: fmt.Sprintf(format, args...)}); err != nil {
		logrus.Debugf("websocket write: %v", err)
	}
}
