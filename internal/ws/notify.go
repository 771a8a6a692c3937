package ws

import (
	"encoding/json"
	"time"
)

type DigestSentEvent struct {
	Type      string `json:"type"`
	Email     string `json:"email"`
	Jobs      int    `json:"jobs"`
	Timestamp string `json:"timestamp"`
}

// NotifyDigestSent broadcasts one digest dispatch to every open dashboard.
// Safe on a nil hub.
func (h *Hub) NotifyDigestSent(email string, jobCount int) {
	if h == nil {
		return
	}

	evt := DigestSentEvent{
		Type:      "digest_sent",
		Email:     email,
		Jobs:      jobCount,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
