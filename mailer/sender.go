package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Delivery is the rendered email handed to a sender.
type Delivery struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

// Sender delivers a rendered email to a single recipient.
type Sender interface {
	Send(Delivery) error
}

// HTTPSender posts deliveries to an external mail API.
type HTTPSender struct {
	Endpoint string
	APIKey   string
	From     string
	Client   *http.Client
}

func NewHTTPSender(endpoint, apiKey, from string) *HTTPSender {
	return &HTTPSender{
		Endpoint: endpoint,
		APIKey:   apiKey,
		From:     from,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPSender) Send(delivery Delivery) error {
	payload, err := json.Marshal(map[string]string{
		"from":    s.From,
		"to":      delivery.Recipient,
		"subject": delivery.Subject,
		"text":    delivery.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API returned status %d for %s", resp.StatusCode, delivery.Recipient)
	}
	return nil
}

// MemorySender stores deliveries in memory for inspection/testing.
type MemorySender struct {
	mu         sync.Mutex
	deliveries []Delivery
	FailFor    map[string]error
}

// NewMemorySender constructs an empty memory sender.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

// Send records the delivery, or fails if the recipient is marked to fail.
func (m *MemorySender) Send(delivery Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailFor[delivery.Recipient]; ok {
		return err
	}
	m.deliveries = append(m.deliveries, delivery)
	return nil
}

// Deliveries returns a copy of deliveries seen so far.
func (m *MemorySender) Deliveries() []Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Delivery, len(m.deliveries))
	copy(out, m.deliveries)
	return out
}
