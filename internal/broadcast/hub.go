package broadcast

import (
	"log"
	"sync"

	"traffic-info/internal/model"
)

// MessageTypeTrafficUpdate 推送给前端的消息类型
const MessageTypeTrafficUpdate = "TRAFFIC_UPDATE"

// Message 推送通道上的服务端消息
type Message struct {
	Type string               `json:"type"`
	Data *model.TrafficRecord `json:"data"`
}

// Subscriber 一个已连接的订阅者
// gorilla的*websocket.Conn满足该接口
type Subscriber interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub 订阅者注册表，把每条生成的记录扇出给所有在线连接
// 单个订阅者写失败只会把它摘除，不会影响其他订阅者和下一次推送
type Hub struct {
	mu          sync.RWMutex
	subscribers map[Subscriber]struct{}
}

// NewHub 创建订阅者注册表
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[Subscriber]struct{}),
	}
}

// Register 注册订阅者
func (h *Hub) Register(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[sub] = struct{}{}
}

// Unregister 注销订阅者
func (h *Hub) Unregister(sub Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscribers, sub)
}

// Count 当前在线订阅者数量
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Broadcast 把一条记录推送给所有订阅者，尽力而为
func (h *Hub) Broadcast(record *model.TrafficRecord) {
	message := &Message{
		Type: MessageTypeTrafficUpdate,
		Data: record,
	}

	h.mu.RLock()
	subs := make([]Subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	var failed []Subscriber
	for _, sub := range subs {
		if err := sub.WriteJSON(message); err != nil {
			// 记录错误，但不影响其他订阅者
			log.Printf("broadcast: dropping subscriber: %v", err)
			failed = append(failed, sub)
		}
	}

	// 写失败的连接直接摘除并关闭
	for _, sub := range failed {
		h.Unregister(sub)
		_ = sub.Close()
	}
}
