package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/relabs-tech/imu_cursor/internal/config"
	"github.com/relabs-tech/imu_cursor/internal/cursor"
	"github.com/relabs-tech/imu_cursor/internal/pipeline"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// frameHub fans incoming frames out to connected websocket clients.
type frameHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newFrameHub() *frameHub {
	return &frameHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *frameHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("web: websocket upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// Read loop exists only to notice the client going away; all writes
	// happen on the broadcast side.
	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.conns, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *frameHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// RunWeb subscribes to the cursor frame topic and serves the viewer: a JSON
// API for the latest frame and trail, a PNG snapshot of the trail, a
// websocket pushing every frame, and static files from ./web.
func RunWeb(cfg *config.Config) error {
	var (
		mu        sync.RWMutex
		lastFrame pipeline.Frame
		haveFrame bool
	)
	trail := cursor.NewPathBuffer(cfg.PathCapacity)
	hub := newFrameHub()

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to cursor frames, keep latest frame + trail, push to
	// websocket clients
	token := client.Subscribe(cfg.TopicFrame, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var f pipeline.Frame
		if err := json.Unmarshal(msg.Payload(), &f); err != nil {
			log.Printf("web: frame unmarshal error: %v", err)
			return
		}
		mu.Lock()
		lastFrame = f
		haveFrame = true
		trail.Push(cursor.Point{X: f.X, Y: f.Y})
		mu.Unlock()

		hub.broadcast(msg.Payload())
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to %s", cfg.TopicFrame)

	// 3) JSON API endpoint: latest frame plus the retained trail
	http.HandleFunc("/api/cursor", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveFrame {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		resp := struct {
			Frame pipeline.Frame `json:"frame"`
			Path  []cursor.Point `json:"path"`
		}{Frame: lastFrame, Path: trail.Points()}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// 4) PNG snapshot of the trail
	http.HandleFunc("/api/path.png", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		points := trail.Points()
		frame := lastFrame
		have := haveFrame
		mu.RUnlock()

		w.Header().Set("Content-Type", "image/png")
		if err := writePathPNG(w, points, frame, have); err != nil {
			log.Printf("web: snapshot encode error: %v", err)
		}
	})

	// 5) Websocket push of every frame
	http.HandleFunc("/ws/cursor", hub.handle)

	// 6) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
