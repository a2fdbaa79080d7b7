package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"bearing/config"
	"bearing/flow"
	"bearing/graphics"
	"bearing/model"
	"bearing/render"
	"bearing/server"
)

var (
	confPath = flag.String("conf", config.DefaultPath, "ini config file")
	addr     = flag.String("addr", "", "listen address, overrides [server] Addr")
	export   = flag.Bool("export", false, "write every figure as png to [render] OutDir and exit")
)

func main() {
	flag.Parse()
	cfg := config.Load(*confPath)
	cfg.SetupLog()
	if *addr != "" {
		cfg.Addr = *addr
	}

	state, err := flow.Load(cfg.StateFile)
	if err != nil {
		log.WithField("file", cfg.StateFile).Fatal(err)
	}

	if *export {
		if err := exportAll(state, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
	}
	if cfg.CheckOrigin {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	s := server.NewServer(cfg.Addr, cfg.Path, upgrader, state, server.Settings{
		HistorySize:   cfg.HistorySize,
		HistoryDeque:  cfg.HistoryDeque,
		SweepInterval: cfg.SweepInterval,
	})
	s.Serve()
}

// exportAll 在中间截面导出所有图表
func exportAll(state graphics.State, cfg config.Config) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}
	req := model.PlotRequest{Z: state.Nz() / 2, Theta: state.Ntheta() / 2}
	for _, k := range render.Kinds {
		d, err := render.Prepare(state, k, req)
		if errors.Is(err, graphics.ErrMissingPressureData) {
			log.WithField("kind", k).Warn(err)
			continue
		}
		if err != nil {
			return err
		}
		if w := d.Fallback(); w != nil {
			log.WithField("kind", k).Warn(w)
		}
		plots, err := d.Plots()
		if errors.Is(err, render.ErrGridTooSmall) {
			log.WithField("kind", k).Warn(err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		for i, p := range plots {
			name := string(k) + ".png"
			if len(plots) > 1 {
				name = fmt.Sprintf("%s_%d.png", k, i)
			}
			if err := writeFile(filepath.Join(cfg.OutDir, name), func(f *os.File) error {
				return render.WritePNG(f, p, cfg.Width, cfg.Height)
			}); err != nil {
				return err
			}
			log.WithField("file", name).Info("exported")
		}
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
