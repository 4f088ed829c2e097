package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	dbm "wanderlog/internal/models/db_models"
)

// In-memory repository doubles. They mimic the repository contract,
// including the not-found -> (nil, nil) convention, so services can be
// exercised without a database.

type mockUserRepo struct {
	users []*dbm.User
}

func (m *mockUserRepo) InsertTx(user *dbm.User, _ context.Context) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *mockUserRepo) FindById(_ context.Context, id string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.ID.String() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type mockJournalRepo struct {
	entries []*dbm.JournalEntry
}

func (m *mockJournalRepo) InsertTx(entry *dbm.JournalEntry, _ context.Context) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stored := *entry
	m.entries = append(m.entries, &stored)
	return nil
}

func (m *mockJournalRepo) FindById(_ context.Context, entryId string) (*dbm.JournalEntry, error) {
	for _, e := range m.entries {
		if e.ID.String() == entryId {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockJournalRepo) ListByUserId(_ context.Context, userId string) ([]dbm.JournalEntry, error) {
	var out []dbm.JournalEntry
	for _, e := range m.entries {
		if e.UserID.String() == userId {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (m *mockJournalRepo) UpdateTx(entry *dbm.JournalEntry, _ context.Context) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			stored := *entry
			m.entries[i] = &stored
			return nil
		}
	}
	return nil
}

func (m *mockJournalRepo) DeleteTx(entry *dbm.JournalEntry, _ context.Context) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockBucketListRepo struct {
	items   []*dbm.BucketListItem
	nextPos int64
}

func (m *mockBucketListRepo) InsertTx(item *dbm.BucketListItem, _ context.Context) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.nextPos++
	item.Position = m.nextPos
	stored := *item
	m.items = append(m.items, &stored)
	return nil
}

func (m *mockBucketListRepo) FindById(_ context.Context, itemId string) (*dbm.BucketListItem, error) {
	for _, it := range m.items {
		if it.ID.String() == itemId {
			copied := *it
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockBucketListRepo) ListByUserId(_ context.Context, userId string) ([]dbm.BucketListItem, error) {
	var out []dbm.BucketListItem
	for _, it := range m.items {
		if it.UserID.String() == userId {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (m *mockBucketListRepo) UpdateTx(item *dbm.BucketListItem, _ context.Context) error {
	for i, it := range m.items {
		if it.ID == item.ID {
			stored := *item
			m.items[i] = &stored
			return nil
		}
	}
	return nil
}

func (m *mockBucketListRepo) DeleteTx(item *dbm.BucketListItem, _ context.Context) error {
	for i, it := range m.items {
		if it.ID == item.ID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockDestinationRepo struct {
	destinations []*dbm.Destination
}

func (m *mockDestinationRepo) InsertTx(destination *dbm.Destination, _ context.Context) error {
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	stored := *destination
	m.destinations = append(m.destinations, &stored)
	return nil
}

func (m *mockDestinationRepo) FindById(_ context.Context, destinationId string) (*dbm.Destination, error) {
	for _, d := range m.destinations {
		if d.ID.String() == destinationId {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockDestinationRepo) ListAll(_ context.Context) ([]dbm.Destination, error) {
	out := make([]dbm.Destination, 0, len(m.destinations))
	for _, d := range m.destinations {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *mockDestinationRepo) DeleteTx(destination *dbm.Destination, _ context.Context) error {
	for i, d := range m.destinations {
		if d.ID == destination.ID {
			m.destinations = append(m.destinations[:i], m.destinations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockDestinationRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.destinations)), nil
}

func (m *mockDestinationRepo) SeedTx(_ context.Context, destinations []dbm.Destination) error {
	for i := range destinations {
		if destinations[i].ID == uuid.Nil {
			destinations[i].ID = uuid.New()
		}
		stored := destinations[i]
		m.destinations = append(m.destinations, &stored)
	}
	return nil
}

// Doubles whose lookups fail the way a driver fed a non-uuid id would.
// Services must short-circuit malformed ids before the repository is hit.

var errBadUuidSyntax = errors.New(`invalid input syntax for type uuid`)

type failingJournalRepo struct{ mockJournalRepo }

func (f *failingJournalRepo) FindById(context.Context, string) (*dbm.JournalEntry, error) {
	return nil, errBadUuidSyntax
}

type failingBucketListRepo struct{ mockBucketListRepo }

func (f *failingBucketListRepo) FindById(context.Context, string) (*dbm.BucketListItem, error) {
	return nil, errBadUuidSyntax
}

type failingDestinationRepo struct{ mockDestinationRepo }

func (f *failingDestinationRepo) FindById(context.Context, string) (*dbm.Destination, error) {
	return nil, errBadUuidSyntax
}
