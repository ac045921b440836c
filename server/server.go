package server

import (
	"net/http"

	"fiverow/engine"
	"fiverow/game"
	"fiverow/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Server lets browsers play against an agent over a websocket. Every
// connection is its own session with a fresh board and a fresh agent, so the
// agent's search graph carries over between moves of that game only.
type Server struct {
	addr      string
	boardSize int
	winRun    int
	newAgent  func() engine.Agent
	upgrader  websocket.Upgrader
}

func New(addr string, boardSize, winRun int, newAgent func() engine.Agent) *Server {
	return &Server{
		addr:      addr,
		boardSize: boardSize,
		winRun:    winRun,
		newAgent:  newAgent,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Run() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/play", s.handlePlay)
	log.Info().Str("addr", s.addr).Msg("server listening")
	return http.ListenAndServe(s.addr, mux)
}

type request struct {
	Type   string `json:"type"` // "move" | "reset"
	Action int    `json:"action,omitempty"`
}

type response struct {
	Type   string `json:"type"` // "state" | "error"
	Board  []int  `json:"board,omitempty"`
	Player string `json:"player,omitempty"`
	Winner string `json:"winner,omitempty"`
	Over   bool   `json:"over,omitempty"`
	Error  string `json:"error,omitempty"`
}

type session struct {
	id    uuid.UUID
	conn  *websocket.Conn
	state game.GameState
	agent engine.Agent
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := &session{
		id:    uuid.New(),
		conn:  conn,
		state: game.NewGameState(s.boardSize, s.winRun),
		agent: s.newAgent(),
	}
	log.Info().Str("session", sess.id.String()).Msg("session started")
	defer log.Info().Str("session", sess.id.String()).Msg("session closed")

	if err := sess.sendState(); err != nil {
		return
	}
	for {
		var req request
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if err := s.handleRequest(sess, req); err != nil {
			return
		}
	}
}

func (s *Server) handleRequest(sess *session, req request) error {
	switch req.Type {
	case "reset":
		sess.state = game.NewGameState(s.boardSize, s.winRun)
		sess.agent = s.newAgent()
		return sess.sendState()

	case "move":
		if sess.state.IsTerminal() {
			return sess.sendError("game is over")
		}
		if utils.FindIndex(sess.state.LegalActions(), req.Action) < 0 {
			return sess.sendError("illegal action")
		}
		sess.state = sess.state.Apply(req.Action).(game.GameState)
		if !sess.state.IsTerminal() {
			reply := sess.agent.SelectAction(sess.state)
			sess.state = sess.state.Apply(reply).(game.GameState)
			log.Info().Str("session", sess.id.String()).Int("action", reply).Msg("agent replied")
		}
		return sess.sendState()

	default:
		return sess.sendError("unknown request type: " + req.Type)
	}
}

func (sess *session) sendState() error {
	cells := sess.state.Board().Cells()
	board := make([]int, len(cells))
	for i, c := range cells {
		board[i] = int(c)
	}
	return sess.conn.WriteJSON(response{
		Type:   "state",
		Board:  board,
		Player: sess.state.Player(),
		Winner: sess.state.Winner(),
		Over:   sess.state.IsTerminal(),
	})
}

func (sess *session) sendError(message string) error {
	return sess.conn.WriteJSON(response{Type: "error", Error: message})
}
