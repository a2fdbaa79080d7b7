package config

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	// [server]
	Addr            string
	Path            string
	ReadBufferSize  int
	WriteBufferSize int
	CheckOrigin     bool

	// [state] 求解器输出的流场快照
	StateFile string

	// [hub]
	HistorySize   int
	HistoryDeque  string
	SweepInterval time.Duration

	// [render] PNG 输出
	Width  int // 1/100 inch
	Height int
	OutDir string

	// [log]
	LogLevel string
}

// Load reads the ini file at path. A missing or unreadable file is logged and
// every key falls back to its default.
func Load(path string) Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path":  path,
			"error": err,
		}).Warn("配置文件读取错误，使用默认配置")
		file = ini.Empty()
	}
	return loadCfg(file)
}

func loadCfg(file *ini.File) Config {
	server := file.Section("server")
	state := file.Section("state")
	hub := file.Section("hub")
	render := file.Section("render")
	return Config{
		Addr:            server.Key("Addr").MustString(":9000"),
		Path:            server.Key("Path").MustString("/ws"),
		ReadBufferSize:  server.Key("ReadBufferSize").MustInt(1024),
		WriteBufferSize: server.Key("WriteBufferSize").MustInt(1024),
		CheckOrigin:     server.Key("CheckOrigin").MustBool(false),
		StateFile:       state.Key("File").MustString("conf/state.json"),
		HistorySize:     hub.Key("HistorySize").MustInt(16),
		HistoryDeque:    hub.Key("HistoryDeque").In("array", []string{"array", "list"}),
		SweepInterval:   hub.Key("SweepInterval").MustDuration(time.Second),
		Width:           render.Key("Width").MustInt(1200),
		Height:          render.Key("Height").MustInt(900),
		OutDir:          render.Key("OutDir").MustString("out"),
		LogLevel:        file.Section("log").Key("Level").MustString("info"),
	}
}

// SetupLog applies the configured log level.
func (c Config) SetupLog() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
