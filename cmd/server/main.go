package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"

	"github.com/gridforge/roomgen/internal/protocol"
	"github.com/gridforge/roomgen/internal/roomgen"
	"github.com/gridforge/roomgen/internal/style"
	"github.com/gridforge/roomgen/internal/web/views"
	"github.com/gridforge/roomgen/internal/ws"
)

// roomServer serializes regeneration and keeps the latest snapshot for
// newly connecting clients.
type roomServer struct {
	mu       sync.Mutex
	def      *style.RoomDefinition
	resolver roomgen.MeshResolver
	snapshot protocol.RoomSnapshot
}

func (s *roomServer) regenerate(seed int64) protocol.RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.def.Seed = seed
	res := roomgen.New(s.def, s.resolver).Generate()
	s.snapshot = protocol.SnapshotFromResult(s.def.Name, res)
	log.Printf("generated room %q seed=%d placements=%d", s.def.Name, seed, len(s.snapshot.Placements))
	return s.snapshot
}

func (s *roomServer) current() protocol.RoomSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *roomServer) currentSeed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.def.Seed
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	roomPath := flag.String("room", "content/rooms/vault.json", "room definition file")
	meshPath := flag.String("meshes", "content/meshes/catalog.json", "mesh catalog file")
	seed := flag.Int64("seed", 0, "override the room seed (0 keeps the file's seed)")
	flag.Parse()

	def, err := style.LoadRoomFromFile(*roomPath)
	if err != nil {
		log.Fatalf("failed to load room definition: %v", err)
	}
	catalog, err := style.LoadMeshCatalogFromFile(*meshPath)
	if err != nil {
		log.Fatalf("failed to load mesh catalog: %v", err)
	}
	if *seed != 0 {
		def.Seed = *seed
	}

	srv := &roomServer{def: def, resolver: roomgen.NewCatalogResolver(catalog)}
	srv.regenerate(def.Seed)

	hub := ws.NewHub()
	var sequence uint64

	broadcast := func(snap protocol.RoomSnapshot) {
		seq := atomic.AddUint64(&sequence, 1)
		b, err := json.Marshal(protocol.PatchEnvelope{
			Sequence: seq,
			Type:     "RoomRegenerated",
			Payload:  protocol.RoomRegenerated{Snapshot: snap},
		})
		if err != nil {
			log.Printf("failed to marshal snapshot patch: %v", err)
			return
		}
		hub.Broadcast(b)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/stream", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.Add(conn)

		hello, err := json.Marshal(protocol.PatchEnvelope{
			Sequence: atomic.AddUint64(&sequence, 1),
			Type:     "RoomRegenerated",
			Payload:  protocol.RoomRegenerated{Snapshot: srv.current()},
		})
		if err == nil {
			_ = hub.Send(conn, hello)
		}

		go func(c *websocket.Conn) {
			defer hub.Remove(c)
			defer c.Close(websocket.StatusNormalClosure, "")
			for {
				_, data, err := c.Read(context.Background())
				if err != nil {
					return
				}
				var env protocol.IntentEnvelope
				if err := json.Unmarshal(data, &env); err != nil {
					continue
				}
				switch env.Type {
				case "RequestRegenerate":
					broadcast(srv.regenerate(srv.currentSeed()))
				case "RequestSetSeed":
					var req protocol.RequestSetSeed
					if err := json.Unmarshal(env.Payload, &req); err != nil {
						continue
					}
					broadcast(srv.regenerate(req.Seed))
				case "RequestRandomizeSeed":
					broadcast(srv.regenerate(rand.Int63()))
				default:
				}
			}
		}(conn)
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.IndexPage(def.Name).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
