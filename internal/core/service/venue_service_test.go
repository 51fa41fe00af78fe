package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/domain"
	"github.com/jharreldesign/Gideon-Rogue-Productions/internal/core/ports"
)

type stubVenueRepo struct {
	venues map[string]*domain.Venue
	seq    int
	lists  int
}

func newStubVenueRepo() *stubVenueRepo {
	return &stubVenueRepo{venues: make(map[string]*domain.Venue)}
}

func cloneVenue(v *domain.Venue) *domain.Venue {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}

func (r *stubVenueRepo) Insert(_ context.Context, venue *domain.Venue) (*domain.Venue, error) {
	r.seq++
	copy := cloneVenue(venue)
	copy.ID = fmt.Sprintf("venue_%d", r.seq)
	r.venues[copy.ID] = cloneVenue(copy)
	return cloneVenue(copy), nil
}

func (r *stubVenueRepo) FindByID(_ context.Context, id string) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

func (r *stubVenueRepo) List(_ context.Context) ([]*domain.Venue, error) {
	r.lists++
	out := make([]*domain.Venue, 0, len(r.venues))
	for _, v := range r.venues {
		out = append(out, cloneVenue(v))
	}
	return out, nil
}

func (r *stubVenueRepo) Update(_ context.Context, venue *domain.Venue) error {
	if _, ok := r.venues[venue.ID]; !ok {
		return domain.ErrVenueNotFound
	}
	r.venues[venue.ID] = cloneVenue(venue)
	return nil
}

func (r *stubVenueRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.venues[id]; !ok {
		return domain.ErrVenueNotFound
	}
	delete(r.venues, id)
	return nil
}

// stubCache keeps entries as marshaled JSON, like the Redis-backed cache does.
type stubCache struct {
	entries map[string][]byte
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

func (c *stubCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func newVenueService(repo ports.VenueRepository, cache ports.ListCache) *VenueService {
	return NewVenueService(repo, cache, zerolog.Nop())
}

var (
	owner = domain.Principal{ID: "user_1", Username: "alice", Role: domain.RoleStaff}
	other = domain.Principal{ID: "user_2", Username: "bob", Role: domain.RoleStaff}
	admin = domain.Principal{ID: "user_9", Username: "root", Role: domain.RoleAdmin}
)

func seedVenue(t *testing.T, svc *VenueService) *domain.Venue {
	t.Helper()
	venue, err := svc.Create(context.Background(), ports.CreateVenueInput{
		VenueName:    "The Palladium",
		Location:     "Worcester",
		Capacity:     2200,
		VenueManager: "Sal",
	}, owner)
	if err != nil {
		t.Fatalf("seed venue failed: %v", err)
	}
	return venue
}

func TestVenueService_Create_RecordsOwner(t *testing.T) {
	repo := newStubVenueRepo()
	svc := newVenueService(repo, newStubCache())

	venue := seedVenue(t, svc)
	if venue.ID == "" {
		t.Fatalf("expected generated id")
	}
	if venue.UserID != owner.ID {
		t.Fatalf("expected owner %s, got %s", owner.ID, venue.UserID)
	}
}

func TestVenueService_List_CachesResult(t *testing.T) {
	repo := newStubVenueRepo()
	svc := newVenueService(repo, newStubCache())
	seedVenue(t, svc)

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("first List failed: %v", err)
	}
	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second List failed: %v", err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 venue in both reads, got %d then %d", len(first), len(second))
	}
	if repo.lists != 1 {
		t.Fatalf("expected second read to hit the cache, repo queried %d times", repo.lists)
	}
}

func TestVenueService_Mutation_InvalidatesCache(t *testing.T) {
	repo := newStubVenueRepo()
	svc := newVenueService(repo, newStubCache())
	venue := seedVenue(t, svc)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	name := "The Worcester Palladium"
	if _, err := svc.Update(context.Background(), venue.ID, ports.UpdateVenueInput{VenueName: &name}, owner); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List after update failed: %v", err)
	}
	if len(listed) != 1 || listed[0].VenueName != name {
		t.Fatalf("expected updated name in fresh list, got %+v", listed)
	}
}

func TestVenueService_Update_PartialMerge(t *testing.T) {
	svc := newVenueService(newStubVenueRepo(), newStubCache())
	venue := seedVenue(t, svc)

	capacity := 2500
	updated, err := svc.Update(context.Background(), venue.ID, ports.UpdateVenueInput{Capacity: &capacity}, owner)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Capacity != 2500 {
		t.Fatalf("expected capacity 2500, got %d", updated.Capacity)
	}
	if updated.VenueName != "The Palladium" || updated.Location != "Worcester" || updated.VenueManager != "Sal" {
		t.Fatalf("untouched fields must keep stored values, got %+v", updated)
	}
}

func TestVenueService_Update_OwnershipEnforced(t *testing.T) {
	svc := newVenueService(newStubVenueRepo(), newStubCache())
	venue := seedVenue(t, svc)

	name := "Hijacked"
	if _, err := svc.Update(context.Background(), venue.ID, ports.UpdateVenueInput{VenueName: &name}, other); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}

	// Admins may mutate anyone's records.
	if _, err := svc.Update(context.Background(), venue.ID, ports.UpdateVenueInput{VenueName: &name}, admin); err != nil {
		t.Fatalf("expected admin override to succeed, got %v", err)
	}
}

func TestVenueService_Delete(t *testing.T) {
	repo := newStubVenueRepo()
	svc := newVenueService(repo, newStubCache())
	venue := seedVenue(t, svc)

	if err := svc.Delete(context.Background(), venue.ID, other); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}

	if err := svc.Delete(context.Background(), venue.ID, owner); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), venue.ID); !errors.Is(err, domain.ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound after delete, got %v", err)
	}

	if err := svc.Delete(context.Background(), "venue_missing", owner); !errors.Is(err, domain.ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound for unknown id, got %v", err)
	}
}
