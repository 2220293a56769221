package websocket

import "testing"

func TestParseWsURLMatrix(t *testing.T) {
	cases := []struct {
		in     string
		want   WsURL
		wantOk bool
	}{
		{"ws://127.0.0.1", WsURL{Host: "127.0.0.1", IP: "127.0.0.1", Port: 80, Path: "/", TLS: false}, true},
		{"wss://127.0.0.1", WsURL{Host: "127.0.0.1", IP: "127.0.0.1", Port: 443, Path: "/", TLS: true}, true},
		{"ws://127.0.0.1:4321", WsURL{Host: "127.0.0.1:4321", IP: "127.0.0.1", Port: 4321, Path: "/", TLS: false}, true},
		{"wss://127.0.0.1:4321", WsURL{Host: "127.0.0.1:4321", IP: "127.0.0.1", Port: 4321, Path: "/", TLS: true}, true},
		{"ws://127.0.0.1:4321/cxz/ewq", WsURL{Host: "127.0.0.1:4321", IP: "127.0.0.1", Port: 4321, Path: "/cxz/ewq", TLS: false}, true},
		{"wss://127.0.0.1:4321/cxz/ewq", WsURL{Host: "127.0.0.1:4321", IP: "127.0.0.1", Port: 4321, Path: "/cxz/ewq", TLS: true}, true},
		{"wss://127.0.0.1:4321/cxz/ewq", WsURL{Host: "127.0.0.1:4321", IP: "127.0.0.1", Port: 4321, Path: "/cxz/ewq", TLS: true}, true},
		{"wsc://127.0.0.1/cxz/ewq", WsURL{}, false},
		{"ws://1.2.3.4:10:20/", WsURL{}, false},
	}

	for _, c := range cases {
		got, ok := ParseWsURL(c.in)
		if ok != c.wantOk {
			t.Errorf("ParseWsURL(%q) ok = %v, want %v", c.in, ok, c.wantOk)
			continue
		}
		if !ok {
			continue
		}
		if got != c.want {
			t.Errorf("ParseWsURL(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
