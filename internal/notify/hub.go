// Package notify pushes newly stored messages to connected receivers.
package notify

import (
	"context"
	"sync"

	"github.com/dtroode/yokai-server/internal/logger"
	"github.com/dtroode/yokai-server/internal/model"
)

// DefaultBuffer is the per-subscriber queue length.
const DefaultBuffer = 16

var _ model.MessageNotifier = (*Hub)(nil)

type subscriber struct {
	username string
	send     chan model.Message
}

// Hub fans messages out to subscribers of the receiving user. All state is
// owned by the Run loop. A subscriber whose queue is full is dropped.
type Hub struct {
	subscribers map[*subscriber]struct{}

	register   chan *subscriber
	unregister chan *subscriber
	deliver    chan model.Message
	done       chan struct{}

	buffer int
	logger *logger.Logger
}

func NewHub(buffer int, logger *logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		register:    make(chan *subscriber),
		unregister:  make(chan *subscriber),
		deliver:     make(chan model.Message),
		done:        make(chan struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

// Run serves the hub until ctx is done. All subscriber channels are closed on exit.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for sub := range h.subscribers {
			close(sub.send)
			delete(h.subscribers, sub)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.register:
			h.subscribers[sub] = struct{}{}
			h.logger.Debug("Notify hub: subscriber added", "username", sub.username)
		case sub := <-h.unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.send)
			}
		case msg := <-h.deliver:
			h.fanOut(msg)
		}
	}
}

func (h *Hub) fanOut(msg model.Message) {
	for sub := range h.subscribers {
		if sub.username != msg.Receiver {
			continue
		}
		select {
		case sub.send <- msg:
		default:
			h.logger.Warn("Notify hub: dropping slow subscriber", "username", sub.username)
			close(sub.send)
			delete(h.subscribers, sub)
		}
	}
}

// Subscribe returns a channel of messages addressed to username and a
// function that ends the subscription. The channel is closed when the
// subscription ends.
func (h *Hub) Subscribe(username string) (<-chan model.Message, func()) {
	sub := &subscriber{
		username: username,
		send:     make(chan model.Message, h.buffer),
	}

	select {
	case h.register <- sub:
	case <-h.done:
		close(sub.send)
		return sub.send, func() {}
	}

	var once sync.Once
	return sub.send, func() {
		once.Do(func() {
			select {
			case h.unregister <- sub:
			case <-h.done:
			}
		})
	}
}

// NotifyMessage hands msg to the Run loop. It returns immediately once the hub has stopped.
func (h *Hub) NotifyMessage(msg model.Message) {
	select {
	case h.deliver <- msg:
	case <-h.done:
	}
}
