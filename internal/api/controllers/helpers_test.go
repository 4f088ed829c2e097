package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	dbm "wanderlog/internal/models/db_models"
	"wanderlog/internal/services"
	mem "wanderlog/pkg/memcache"
	"wanderlog/pkg/middleware"
)

// newTestRouter wires real services and controllers over in-memory
// repositories, with the same route table the app registers.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := mem.NewSessions()
	sessionService := services.NewSessionService(sessions)

	accountController := NewAccountController(
		services.NewAccountService(&memUserRepo{}, sessionService), sessionService)
	journalController := NewJournalController(
		services.NewJournalService(&memJournalRepo{}))
	bucketListController := NewBucketListController(
		services.NewBucketListService(&memBucketListRepo{}))
	destinationController := NewDestinationController(
		services.NewDestinationService(&memDestinationRepo{}))

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	r.POST("/register", accountController.Register)
	r.POST("/login", accountController.Login)

	r.GET("/api/destinations", destinationController.ListDestinations)
	r.GET("/api/destination/:id", destinationController.GetDestination)
	r.POST("/api/destination", destinationController.CreateDestination)
	r.DELETE("/api/destination/:id", destinationController.DeleteDestination)
	r.GET("/seed", destinationController.SeedCatalog)

	authed := r.Group("/")
	authed.Use(middleware.SessionAuthMiddleware(sessions))

	authed.GET("/logout", accountController.Logout)
	authed.GET("/destinations", destinationController.ListDestinations)
	authed.GET("/destination/:id", destinationController.GetDestination)
	authed.GET("/journal", journalController.ListEntries)
	authed.POST("/add_journal_entry", journalController.AddEntry)
	authed.POST("/edit_journal_entry/:id", journalController.EditEntry)
	authed.POST("/delete_journal_entry/:id", journalController.DeleteEntry)
	authed.GET("/bucketlist", bucketListController.ListItems)
	authed.POST("/add_bucket_list_item", bucketListController.AddItem)
	authed.POST("/update_bucket_list_item/:id", bucketListController.UpdateItem)
	authed.POST("/delete_bucket_list_item/:id", bucketListController.DeleteItem)

	return r
}

type apiEnvelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	rec, _ := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, envelope := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"username": username,
		"password": "passw0rd",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

// --- in-memory repositories ---

type memUserRepo struct {
	users []*dbm.User
}

func (m *memUserRepo) InsertTx(user *dbm.User, _ context.Context) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	m.users = append(m.users, &stored)
	return nil
}

func (m *memUserRepo) FindById(_ context.Context, id string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.ID.String() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*dbm.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

type memJournalRepo struct {
	entries []*dbm.JournalEntry
}

func (m *memJournalRepo) InsertTx(entry *dbm.JournalEntry, _ context.Context) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	stored := *entry
	m.entries = append(m.entries, &stored)
	return nil
}

func (m *memJournalRepo) FindById(_ context.Context, entryId string) (*dbm.JournalEntry, error) {
	for _, e := range m.entries {
		if e.ID.String() == entryId {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memJournalRepo) ListByUserId(_ context.Context, userId string) ([]dbm.JournalEntry, error) {
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

func (m *memJournalRepo) UpdateTx(entry *dbm.JournalEntry, _ context.Context) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			stored := *entry
			m.entries[i] = &stored
		}
	}
	return nil
}

func (m *memJournalRepo) DeleteTx(entry *dbm.JournalEntry, _ context.Context) error {
	for i, e := range m.entries {
		if e.ID == entry.ID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type memBucketListRepo struct {
	items   []*dbm.BucketListItem
	nextPos int64
}

func (m *memBucketListRepo) InsertTx(item *dbm.BucketListItem, _ context.Context) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	m.nextPos++
	item.Position = m.nextPos
	stored := *item
	m.items = append(m.items, &stored)
	return nil
}

func (m *memBucketListRepo) FindById(_ context.Context, itemId string) (*dbm.BucketListItem, error) {
	for _, it := range m.items {
		if it.ID.String() == itemId {
			copied := *it
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memBucketListRepo) ListByUserId(_ context.Context, userId string) ([]dbm.BucketListItem, error) {
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

func (m *memBucketListRepo) UpdateTx(item *dbm.BucketListItem, _ context.Context) error {
	for i, it := range m.items {
		if it.ID == item.ID {
			stored := *item
			m.items[i] = &stored
		}
	}
	return nil
}

func (m *memBucketListRepo) DeleteTx(item *dbm.BucketListItem, _ context.Context) error {
	for i, it := range m.items {
		if it.ID == item.ID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memDestinationRepo struct {
	destinations []*dbm.Destination
}

func (m *memDestinationRepo) InsertTx(destination *dbm.Destination, _ context.Context) error {
	if destination.ID == uuid.Nil {
		destination.ID = uuid.New()
	}
	stored := *destination
	m.destinations = append(m.destinations, &stored)
	return nil
}

func (m *memDestinationRepo) FindById(_ context.Context, destinationId string) (*dbm.Destination, error) {
	for _, d := range m.destinations {
		if d.ID.String() == destinationId {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memDestinationRepo) ListAll(_ context.Context) ([]dbm.Destination, error) {
	out := make([]dbm.Destination, 0, len(m.destinations))
	for _, d := range m.destinations {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memDestinationRepo) DeleteTx(destination *dbm.Destination, _ context.Context) error {
	for i, d := range m.destinations {
		if d.ID == destination.ID {
			m.destinations = append(m.destinations[:i], m.destinations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memDestinationRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.destinations)), nil
}

func (m *memDestinationRepo) SeedTx(_ context.Context, destinations []dbm.Destination) error {
	for i := range destinations {
		if destinations[i].ID == uuid.Nil {
			destinations[i].ID = uuid.New()
		}
		stored := destinations[i]
		m.destinations = append(m.destinations, &stored)
	}
	return nil
}
