package mailer

import (
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// TemplateStore compiles and renders named email templates.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
}

// NewTemplateStore seeds the store with the stock newsletter templates.
func NewTemplateStore() *TemplateStore {
	store := &TemplateStore{
		templates: make(map[string]*template.Template),
	}
	_ = store.Register("welcome", "Hello {{.Name}}, welcome to the MomsLove newsletter!")
	_ = store.Register("digest", "Hi! Here is what's new on MomsLove:\n{{.Body}}\n\nUnsubscribe: {{.UnsubscribeURL}}")
	_ = store.Register("story_approved", "Good news {{.Name}} - your story \"{{.Title}}\" was approved and will be published soon.")
	return store
}

// Register adds or replaces a template definition.
func (s *TemplateStore) Register(name, body string) error {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[name] = tmpl
	return nil
}

// Render executes the template with the provided data.
func (s *TemplateStore) Render(name string, data any) (string, error) {
	s.mu.RLock()
	tmpl, ok := s.templates[name]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return b.String(), nil
}
