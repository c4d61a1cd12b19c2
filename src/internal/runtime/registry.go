package runtime

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages all registered languages
type Registry struct {
	languages map[string]Language
	mu        sync.RWMutex
}

// Global registry instance
var globalRegistry = NewRegistry()

// NewRegistry creates a new language registry
func NewRegistry() *Registry {
	return &Registry{
		languages: make(map[string]Language),
	}
}

// Register adds a language to the registry
func (r *Registry) Register(language Language) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := language.Name()
	if _, exists := r.languages[name]; exists {
		return fmt.Errorf("language '%s' is already registered", name)
	}

	r.languages[name] = language
	return nil
}

// Get retrieves a language by name
func (r *Registry) Get(name string) (Language, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	language, exists := r.languages[name]
	if !exists {
		return nil, fmt.Errorf("unsupported language '%s'", name)
	}

	return language, nil
}

// List returns all registered language names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered languages sorted by name
func (r *Registry) GetAll() []Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := make([]Language, 0, len(r.languages))
	for _, language := range r.languages {
		languages = append(languages, language)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name() < languages[j].Name()
	})
	return languages
}

// Has checks if a language is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.languages[name]
	return exists
}

// Unregister removes a language from the registry
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.languages[name]; !exists {
		return fmt.Errorf("language '%s' not found", name)
	}

	delete(r.languages, name)
	return nil
}

// Register adds a language to the global registry
func Register(language Language) error {
	return globalRegistry.Register(language)
}

// Get retrieves a language from the global registry
func Get(name string) (Language, error) {
	return globalRegistry.Get(name)
}

// List returns all language names in the global registry
func List() []string {
	return globalRegistry.List()
}

// GetAll returns all languages in the global registry
func GetAll() []Language {
	return globalRegistry.GetAll()
}

// Has checks if a language is in the global registry
func Has(name string) bool {
	return globalRegistry.Has(name)
}
