package feed

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	monmetrics "shopcart-go/monitor/metrics"
)

// Server 将购物车快照广播给全部 websocket 客户端。
type Server struct {
	Upgrader   websocket.Upgrader
	Broadcasts monmetrics.Counter // 可选，每次广播累加

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewServer() *Server {
	return &Server{
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP 升级连接并保持到对端关闭。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()

	// 读循环仅用于感知关闭，入站消息丢弃
	go func() {
		defer s.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast 向所有客户端写入快照，写失败的连接被剔除。
func (s *Server) Broadcast(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteJSON(snap); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
	if s.Broadcasts != nil {
		s.Broadcasts.Inc()
	}
}

// Run 消费 Publisher 的快照流并广播，直到 ctx 结束。
func (s *Server) Run(ctx context.Context, pub *Publisher) {
	ch := pub.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-ch:
			if !ok {
				return
			}
			s.Broadcast(snap)
		}
	}
}

// ClientCount 当前在线客户端数。
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close 关闭全部连接。
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
		delete(s.conns, conn)
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conn.Close()
	delete(s.conns, conn)
}
