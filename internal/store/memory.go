// internal/store/memory.go
package store

import (
	"sync"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/model"
)

// DirectoryStore holds the client directory. The directory is owned by the
// import pipeline and read-only for the engine, so writes happen only at
// seed/import time.
type DirectoryStore struct {
	mu      sync.RWMutex
	clients []model.Client
}

func NewDirectoryStore() *DirectoryStore {
	return &DirectoryStore{}
}

// Replace swaps in a freshly imported directory, keeping import order.
func (s *DirectoryStore) Replace(clients []model.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make([]model.Client, len(clients))
	copy(s.clients, clients)
}

// ListAll returns the directory in its original import order.
func (s *DirectoryStore) ListAll() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *DirectoryStore) GetByID(id string) (*model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			c := s.clients[i]
			return &c, nil
		}
	}
	return nil, appErrors.NewValidation("client_id", "unknown client "+id)
}

// CampaignStore owns campaigns and their member lists. All mutation goes
// through Update, which runs the mutator under the write lock so each
// campaign has a single logical writer and interleaved read-modify-write
// cycles cannot lose updates.
type CampaignStore struct {
	mu        sync.RWMutex
	campaigns map[string]*model.Campaign
	order     []string
}

func NewCampaignStore() *CampaignStore {
	return &CampaignStore{campaigns: make(map[string]*model.Campaign)}
}

func (s *CampaignStore) Insert(c *model.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneCampaign(c)
	s.campaigns[c.ID] = cp
	s.order = append(s.order, c.ID)
}

// Get returns a copy; callers never hold a pointer into the store.
func (s *CampaignStore) Get(id string) (*model.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return cloneCampaign(c), nil
}

// List returns all campaigns in insertion order.
func (s *CampaignStore) List() []model.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Campaign, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *cloneCampaign(s.campaigns[id]))
	}
	return out
}

// Update applies fn to the stored campaign under the write lock and returns
// a copy of the result. When fn returns an error the campaign is left
// untouched.
func (s *CampaignStore) Update(id string, fn func(*model.Campaign) error) (*model.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	scratch := cloneCampaign(c)
	if err := fn(scratch); err != nil {
		return nil, err
	}
	s.campaigns[id] = scratch
	return cloneCampaign(scratch), nil
}

func cloneCampaign(c *model.Campaign) *model.Campaign {
	cp := *c
	cp.Tags = append([]string(nil), c.Tags...)
	cp.Members = append([]model.CampaignMember(nil), c.Members...)
	if c.Stats != nil {
		st := *c.Stats
		cp.Stats = &st
	}
	if c.UpdatedAt != nil {
		ts := *c.UpdatedAt
		cp.UpdatedAt = &ts
	}
	return &cp
}

// EventStore accumulates member events for the analytics roll-up.
type EventStore struct {
	mu     sync.RWMutex
	events []model.MemberEvent
}

func NewEventStore() *EventStore {
	return &EventStore{}
}

func (s *EventStore) Append(events ...model.MemberEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// ListByCampaign returns events for one campaign in append order.
func (s *EventStore) ListByCampaign(campaignID string) []model.MemberEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.MemberEvent
	for _, e := range s.events {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out
}
