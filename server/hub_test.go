package server

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"bearing/deque"
	"bearing/flow"
	"bearing/model"
	"bearing/render"
)

func newState(t *testing.T, numerical bool) *flow.Snapshot {
	s, err := flow.NewGeometry(flow.Geometry{
		Nz: 5, Ntheta: 10, Nradius: 6,
		Length: 1, RadiusRotor: 1, RadiusStator: 1.4,
		Eccentricity: 0.2, AttitudeAngle: 0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	p := make([][]float64, 5)
	for z := range p {
		p[z] = make([]float64, 10)
		for i := range p[z] {
			p[z][i] = math.Cos(s.GamaVal[z][i]) * float64(z+1)
		}
	}
	if numerical {
		err = s.SetNumerical(p)
	} else {
		err = s.SetAnalytical(p)
	}
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func dial(t *testing.T, state *flow.Snapshot, settings Settings) *websocket.Conn {
	s := NewServer(":0", "/ws", websocket.Upgrader{}, state, settings)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func request(t *testing.T, conn *websocket.Conn, typ string, content interface{}) {
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatal(err)
	}
	if err := conn.WriteJSON(model.Msg{Type: typ, Content: string(data)}); err != nil {
		t.Fatal(err)
	}
}

func read(t *testing.T, conn *websocket.Conn) model.Msg {
	var msg model.Msg
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func readFigure(t *testing.T, conn *websocket.Conn) render.Figure {
	msg := read(t, conn)
	if msg.Type != model.TypeFigure {
		t.Fatalf("got %s: %s", msg.Type, msg.Content)
	}
	var f render.Figure
	if err := json.Unmarshal([]byte(msg.Content), &f); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestHubFigures(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 8})
	for _, k := range render.Kinds {
		request(t, conn, string(k), model.PlotRequest{Z: 1, Theta: 2})
		f := readFigure(t, conn)
		if f.Kind != k || len(f.Data) == 0 {
			t.Errorf("%s: got kind %s with %d traces", k, f.Kind, len(f.Data))
		}
	}
}

func TestHubFallbackWarning(t *testing.T) {
	conn := dial(t, newState(t, false), Settings{HistorySize: 4})
	yes := true
	request(t, conn, string(render.KindCylindrical), model.PlotRequest{Z: 0, FromNumerical: &yes})
	msg := read(t, conn)
	if msg.Type != model.TypeWarning || !strings.Contains(msg.Content, "numerical") {
		t.Fatalf("got %+v", msg)
	}
	readFigure(t, conn)
}

func TestHubErrors(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 4})
	request(t, conn, "pie", model.PlotRequest{})
	if msg := read(t, conn); msg.Type != model.TypeError {
		t.Errorf("unknown type: %+v", msg)
	}
	request(t, conn, string(render.KindPressureTheta), model.PlotRequest{Z: 99})
	if msg := read(t, conn); msg.Type != model.TypeError {
		t.Errorf("bad index: %+v", msg)
	}
	if err := conn.WriteJSON(model.Msg{Type: string(render.KindShape), Content: "{"}); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Type != model.TypeError {
		t.Errorf("bad json: %+v", msg)
	}
}

func TestHubHistory(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 2})
	for theta := 0; theta < 3; theta++ {
		request(t, conn, string(render.KindShape), model.PlotRequest{Theta: theta})
		readFigure(t, conn)
	}
	request(t, conn, model.TypeHistory, nil)
	for i := 0; i < 2; i++ {
		f := readFigure(t, conn)
		if f.Kind != render.KindShape {
			t.Errorf("history %d: %s", i, f.Kind)
		}
	}
}

func TestHubHistoryList(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 1, HistoryDeque: deque.List})
	request(t, conn, string(render.KindShape), model.PlotRequest{})
	readFigure(t, conn)
	request(t, conn, string(render.KindEccentricity), model.PlotRequest{})
	readFigure(t, conn)
	request(t, conn, model.TypeHistory, nil)
	if f := readFigure(t, conn); f.Kind != render.KindEccentricity {
		t.Errorf("history kept %s", f.Kind)
	}
}

func TestHubSweepRejectsBadStart(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 4, SweepInterval: 10 * time.Millisecond})
	for _, from := range []int{10, -1} {
		request(t, conn, model.TypeSweep, model.SweepRequest{From: from, To: from + 2})
		if msg := read(t, conn); msg.Type != model.TypeError {
			t.Fatalf("from=%d: got %+v", from, msg)
		}
	}
	// no sweep runs, so the next reply answers the next request
	request(t, conn, string(render.KindShape), model.PlotRequest{})
	if f := readFigure(t, conn); f.Kind != render.KindShape {
		t.Errorf("got %s", f.Kind)
	}
}

func TestHubSweep(t *testing.T) {
	conn := dial(t, newState(t, true), Settings{HistorySize: 8, SweepInterval: 10 * time.Millisecond})
	request(t, conn, model.TypeSweep, model.SweepRequest{From: 1, To: 3})
	for i := 0; i < 4; i++ {
		f := readFigure(t, conn)
		if f.Kind != render.KindCylindrical {
			t.Fatalf("sweep pushed %s", f.Kind)
		}
	}
	request(t, conn, model.TypeStop, nil)
	for {
		msg := read(t, conn)
		if msg.Type == model.TypeStopped {
			break
		}
		if msg.Type != model.TypeFigure {
			t.Fatalf("got %+v", msg)
		}
	}
}
