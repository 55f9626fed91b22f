package pricefeed

import (
	"context"
	"launchfund-server/internal/observability"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Update is one trade event pushed to subscribers of a campaign's feed.
type Update struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	Side          string    `json:"side"`
	Lamports      int64     `json:"lamports"`
	Tokens        int64     `json:"tokens"`
	PriceLamports int64     `json:"price_lamports"`
	RaisedAmount  int64     `json:"raised_amount"`
	At            time.Time `json:"at"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan Update
	// done is closed exactly once, under the hub lock, when the subscriber
	// is removed. send stays open so a publisher holding a stale snapshot
	// can never hit a closed channel.
	done chan struct{}
}

// Hub fans trade updates out to websocket subscribers, keyed by campaign.
// A slow subscriber's buffer filling up drops that subscriber rather than
// blocking publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[*subscriber]struct{}
	logger      *observability.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *observability.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[*subscriber]struct{}),
		logger:      logger,
	}
}

// PublishTrade sends an update to every subscriber of the campaign.
func (h *Hub) PublishTrade(ctx context.Context, update Update) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.subscribers[update.CampaignID]))
	for sub := range h.subscribers[update.CampaignID] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.send <- update:
		default:
			h.logger.Warn(ctx, "dropping slow price feed subscriber")
			h.remove(update.CampaignID, sub)
		}
	}
}

// Subscribe registers a connection for a campaign's feed and starts its
// writer. The writer owns the connection and closes it when the
// subscription is torn down.
func (h *Hub) Subscribe(ctx context.Context, campaignID uuid.UUID, conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan Update, 16),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	if h.subscribers[campaignID] == nil {
		h.subscribers[campaignID] = make(map[*subscriber]struct{})
	}
	h.subscribers[campaignID][sub] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(ctx, campaignID, sub)
	go h.readLoop(campaignID, sub)
}

func (h *Hub) writeLoop(ctx context.Context, campaignID uuid.UUID, sub *subscriber) {
	defer sub.conn.Close()
	for {
		select {
		case <-sub.done:
			return
		case update := <-sub.send:
			if err := sub.conn.WriteJSON(update); err != nil {
				h.logger.Debug(ctx, "price feed write failed, removing subscriber")
				h.remove(campaignID, sub)
				return
			}
		}
	}
}

// readLoop discards inbound frames and detects disconnects.
func (h *Hub) readLoop(campaignID uuid.UUID, sub *subscriber) {
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			h.remove(campaignID, sub)
			return
		}
	}
}

func (h *Hub) remove(campaignID uuid.UUID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.subscribers[campaignID]; ok {
		if _, present := subs[sub]; present {
			delete(subs, sub)
			close(sub.done)
			if len(subs) == 0 {
				delete(h.subscribers, campaignID)
			}
		}
	}
}

// SubscriberCount reports the number of open subscriptions for a campaign.
func (h *Hub) SubscriberCount(campaignID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[campaignID])
}
