package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Publisher is the fire-and-forget channel the notification fan-out writes to.
// Publish returns immediately; there is no delivery confirmation and no replay
// of missed events.
type Publisher interface {
	Publish(topic string, payload interface{})
}

// Event is the wire frame pushed to subscribed clients.
type Event struct {
	Topic     string      `json:"topic"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Hub fans events out to websocket clients by topic string. Clients subscribe
// to the topics they care about; events published to a topic with no
// subscribers are dropped.
type Hub struct {
	clients    map[*Client]bool
	topics     map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan Event
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		topics:     make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan Event, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

// Publish enqueues an event for delivery. It never blocks the caller: when
// the hub's buffer is full the event is dropped.
func (h *Hub) Publish(topic string, payload interface{}) {
	event := Event{
		Topic:     topic,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.events <- event:
	default:
		log.Printf("realtime: dropping event for topic %s", topic)
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	for topic := range client.topics {
		h.removeFromTopic(client, topic)
	}
}

func (h *Hub) deliver(event Event) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	subscribers, ok := h.topics[event.Topic]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("realtime: failed to marshal event: %v", err)
		return
	}

	for client := range subscribers {
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop it rather than block the hub.
			close(client.send)
			delete(h.clients, client)
			delete(subscribers, client)
		}
	}
}

func (h *Hub) subscribe(client *Client, topic string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]bool)
	}
	h.topics[topic][client] = true
	client.topics[topic] = true
}

func (h *Hub) unsubscribe(client *Client, topic string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.removeFromTopic(client, topic)
	delete(client.topics, topic)
}

func (h *Hub) removeFromTopic(client *Client, topic string) {
	if subscribers, ok := h.topics[topic]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.topics, topic)
		}
	}
}
