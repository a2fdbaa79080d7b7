package server

import (
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bearing/graphics"
	"bearing/model"
	"bearing/render"
)

// startSweep 周期性推送柱坐标压力图，z 从 From 到 To
//
// The sweep goroutine only feeds requests back into h.msg, so figures are
// still built and recorded by handleRequest.
func (h *Hub) startSweep(req model.SweepRequest) error {
	if req.From < 0 || req.From >= h.state.Nz() {
		return fmt.Errorf("sweep from=%d not in [0, %d): %w", req.From, h.state.Nz(), graphics.ErrIndexOutOfRange)
	}
	h.endSweep()
	to := req.To
	if to <= req.From || to > h.state.Nz() {
		to = h.state.Nz()
	}
	stop := make(chan struct{})
	h.stopSweep = stop
	log.WithFields(log.Fields{"from": req.From, "to": to, "interval": h.settings.SweepInterval}).Info("start sweep")
	go h.sweepRun(req.PlotRequest, req.From, to, stop)
	return nil
}

func (h *Hub) endSweep() {
	if h.stopSweep == nil {
		return
	}
	close(h.stopSweep)
	h.stopSweep = nil
	log.Info("stop sweep")
}

func (h *Hub) sweepRun(req model.PlotRequest, from, to int, stop chan struct{}) {
	ticker := time.NewTicker(h.settings.SweepInterval)
	defer ticker.Stop()
	z := from
	for {
		req.Z = z
		content, err := json.Marshal(req)
		if err != nil {
			log.Error("sweep request: ", err)
			return
		}
		select {
		case h.msg <- model.Msg{Type: string(render.KindCylindrical), Content: string(content)}:
		case <-stop:
			return
		case <-h.done:
			return
		}
		z++
		if z >= to {
			z = from
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		case <-h.done:
			return
		}
	}
}
