package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateStoreRenderStockTemplates(t *testing.T) {
	store := NewTemplateStore()

	body, err := store.Render("welcome", map[string]any{"Name": "Dana"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Dana, welcome to the MomsLove newsletter!", body)

	body, err = store.Render("digest", map[string]any{
		"Body":           "Two new articles.",
		"UnsubscribeURL": "/api/newsletter/unsubscribe?token=abc",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Two new articles.")
	assert.Contains(t, body, "/api/newsletter/unsubscribe?token=abc")
}

func TestTemplateStoreRegisterOverridesAndValidates(t *testing.T) {
	store := NewTemplateStore()

	require.NoError(t, store.Register("welcome", "Hi {{.Name}}!"))
	body, err := store.Render("welcome", map[string]any{"Name": "Mia"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Mia!", body)

	err = store.Register("broken", "{{.Name")
	assert.Error(t, err)
}

func TestTemplateStoreRenderUnknownTemplate(t *testing.T) {
	store := NewTemplateStore()
	_, err := store.Render("no-such-template", nil)
	assert.Error(t, err)
}

func TestMemorySenderRecordsAndFails(t *testing.T) {
	sender := NewMemorySender()
	sender.FailFor = map[string]error{"down@example.com": errors.New("bounced")}

	require.NoError(t, sender.Send(Delivery{Recipient: "up@example.com", Subject: "hi", Body: "body"}))
	err := sender.Send(Delivery{Recipient: "down@example.com", Subject: "hi", Body: "body"})
	assert.EqualError(t, err, "bounced")

	deliveries := sender.Deliveries()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "up@example.com", deliveries[0].Recipient)
}
