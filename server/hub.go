package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"bearing/deque"
	"bearing/graphics"
	"bearing/model"
	"bearing/render"
)

// Settings 每个连接的 hub 参数
type Settings struct {
	HistorySize   int
	HistoryDeque  string // deque.Array 或 deque.List
	SweepInterval time.Duration
}

// Hub serves the plot requests of one websocket connection. Requests are
// handled one at a time by handleRequest; handleResponse is the only writer
// of the connection.
type Hub struct {
	state    graphics.State
	conn     *websocket.Conn
	settings Settings

	// 最近推送的图表
	history deque.Deque[*render.Figure]

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	stopSweep chan struct{}
	done      chan struct{}
}

func NewHub(state graphics.State, settings Settings) *Hub {
	if settings.SweepInterval <= 0 {
		settings.SweepInterval = time.Second
	}
	return &Hub{
		state:    state,
		settings: settings,
		history:  deque.New[*render.Figure](settings.HistoryDeque, settings.HistorySize),
		msg:      make(chan model.Msg, 10),
		reply:    make(chan model.Msg, 10),
		done:     make(chan struct{}),
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithField("type", reply.Type).Error("write reply: ", err)
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.dispatch(msg)
		case <-h.done:
			h.endSweep()
			return
		}
	}
}

func (h *Hub) send(msg model.Msg) {
	select {
	case h.reply <- msg:
	case <-h.done:
	}
}

func (h *Hub) sendError(err error) {
	h.send(model.Msg{Type: model.TypeError, Content: err.Error()})
}

func (h *Hub) dispatch(msg model.Msg) {
	switch msg.Type {
	case model.TypeSweep:
		var req model.SweepRequest
		if err := decode(msg.Content, &req); err != nil {
			h.sendError(err)
			return
		}
		if err := h.startSweep(req); err != nil {
			log.WithField("from", req.From).Warn(err)
			h.sendError(err)
		}
	case model.TypeStop:
		h.endSweep()
		h.send(model.Msg{Type: model.TypeStopped, Content: "stopped"})
	case model.TypeHistory:
		h.history.Traverse(func(_ int, f *render.Figure) {
			h.sendFigure(f)
		})
	default:
		kind := render.Kind(msg.Type)
		if !kind.Valid() {
			log.WithField("type", msg.Type).Warn("no such type")
			h.sendError(fmt.Errorf("no such type %q", msg.Type))
			return
		}
		var req model.PlotRequest
		if err := decode(msg.Content, &req); err != nil {
			h.sendError(err)
			return
		}
		f, err := h.buildFigure(kind, req)
		if err != nil {
			log.WithFields(log.Fields{"kind": kind, "z": req.Z, "theta": req.Theta}).Error(err)
			h.sendError(err)
			return
		}
		deque.Push(h.history, f)
		h.sendFigure(f)
	}
}

func decode(content string, v interface{}) error {
	if content == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("bad request content: %w", err)
	}
	return nil
}

// buildFigure runs the transform and turns a malformed flow state panic into
// an error so the connection survives.
func (h *Hub) buildFigure(kind render.Kind, req model.PlotRequest) (f *render.Figure, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", kind, r)
		}
	}()
	start := time.Now()
	d, err := render.Prepare(h.state, kind, req)
	if err != nil {
		return nil, err
	}
	if w := d.Fallback(); w != nil {
		log.WithFields(log.Fields{"kind": kind, "requested": w.Requested, "used": w.Used}).Warn(w)
		h.send(model.Msg{Type: model.TypeWarning, Content: w.String()})
	}
	f = d.Figure(req.Options)
	log.WithFields(log.Fields{"kind": kind, "cost": time.Since(start)}).Debug("figure built")
	return f, nil
}

func (h *Hub) sendFigure(f *render.Figure) {
	data, err := json.Marshal(f)
	if err != nil {
		log.Error("marshal figure: ", err)
		h.sendError(err)
		return
	}
	h.send(model.Msg{Type: model.TypeFigure, Content: string(data)})
}
