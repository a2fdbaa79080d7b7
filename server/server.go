package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"bearing/graphics"
	"bearing/model"
)

type Server struct {
	addr     string
	path     string
	upgrader websocket.Upgrader
	state    graphics.State
	settings Settings
}

func NewServer(addr, path string, upgrader websocket.Upgrader, state graphics.State, settings Settings) *Server {
	return &Server{
		addr:     addr,
		path:     path,
		upgrader: upgrader,
		state:    state,
		settings: settings,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()
	hub := NewHub(s.state, s.settings)
	hub.conn = conn
	defer close(hub.done)

	log.WithField("remote", conn.RemoteAddr()).Info("client connected")
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("read: ", err)
			}
			log.WithField("remote", conn.RemoteAddr()).Info("client disconnected")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.path, s.serveWs)
	return mux
}

func (s *Server) Serve() {
	log.WithFields(log.Fields{"addr": s.addr, "path": s.path}).Info("listening")
	err := http.ListenAndServe(s.addr, s.Handler())
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
