package config

import (
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/ini.v1"
)

func TestLoadCfgDefaults(t *testing.T) {
	c := loadCfg(ini.Empty())
	if c.Addr != ":9000" || c.Path != "/ws" || c.HistorySize != 16 || c.HistoryDeque != "array" || c.SweepInterval != time.Second {
		t.Errorf("got %+v", c)
	}
}

func TestLoadCfg(t *testing.T) {
	file, err := ini.Load([]byte(`
[server]
Addr = :8080
CheckOrigin = true
[hub]
HistorySize = 4
HistoryDeque = list
SweepInterval = 250ms
[render]
Width = 600
`))
	if err != nil {
		t.Fatal(err)
	}
	c := loadCfg(file)
	if c.Addr != ":8080" || !c.CheckOrigin || c.HistorySize != 4 || c.SweepInterval != 250*time.Millisecond {
		t.Errorf("got %+v", c)
	}
	if c.HistoryDeque != "list" {
		t.Errorf("history deque %q", c.HistoryDeque)
	}
	if c.Width != 600 || c.Height != 900 {
		t.Errorf("render size %dx%d", c.Width, c.Height)
	}
}

func TestLoadCfgUnknownDeque(t *testing.T) {
	file, err := ini.Load([]byte("[hub]\nHistoryDeque = tree\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c := loadCfg(file); c.HistoryDeque != "array" {
		t.Errorf("got %q", c.HistoryDeque)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing.ini"))
	if c.ReadBufferSize != 1024 {
		t.Errorf("got %+v", c)
	}
}

func TestLoadRepositoryConfig(t *testing.T) {
	c := Load(filepath.Join("..", DefaultPath))
	if c.StateFile != "conf/state.json" || c.LogLevel != "info" {
		t.Errorf("got %+v", c)
	}
}
