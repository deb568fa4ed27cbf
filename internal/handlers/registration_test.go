package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/config"
	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
	"github.com/cesam-goiania/encontro-api/internal/store"
	"github.com/danielgtaylor/huma/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.RosterStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Participant{}, &models.SystemConfig{}); err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return store.New(db, 50)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected a huma status error, got %v", err)
	}
	return se.GetStatus()
}

func TestHandleRegister(t *testing.T) {
	rosterStore := newTestStore(t)
	service := roster.NewService(rosterStore)
	cfg := &config.Config{ConsentFormURL: "https://example.com/autorizacao.pdf"}
	handler := NewRegistrationHandler(service, nil, cfg)
	ctx := context.Background()

	t.Run("Adult", func(t *testing.T) {
		req := &RegisterRequest{}
		req.Body.Name = "Mariana Costa"
		req.Body.Phone = "62999998888"
		req.Body.BirthDate = time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)

		resp, err := handler.HandleRegister(ctx, req)
		if err != nil {
			t.Fatalf("HandleRegister returned error: %v", err)
		}
		if resp.Body.ID == "" {
			t.Error("expected participant id in response")
		}
		if resp.Body.RequiresConsent {
			t.Error("adult must not require consent")
		}
		if resp.Body.ConsentFormURL != "" {
			t.Error("adult response must not carry the consent form link")
		}
	})

	t.Run("Minor", func(t *testing.T) {
		req := &RegisterRequest{}
		req.Body.Name = "João Pedro"
		req.Body.BirthDate = time.Now().AddDate(-15, 0, 0)

		resp, err := handler.HandleRegister(ctx, req)
		if err != nil {
			t.Fatalf("HandleRegister returned error: %v", err)
		}
		if !resp.Body.RequiresConsent {
			t.Error("15-year-old must require consent")
		}
		if resp.Body.ConsentFormURL != cfg.ConsentFormURL {
			t.Errorf("expected consent form link, got %q", resp.Body.ConsentFormURL)
		}
	})

	t.Run("FutureBirthDate", func(t *testing.T) {
		req := &RegisterRequest{}
		req.Body.Name = "Viajante"
		req.Body.BirthDate = time.Now().AddDate(1, 0, 0)

		_, err := handler.HandleRegister(ctx, req)
		if got := statusOf(t, err); got != 400 {
			t.Errorf("expected 400, got %d", got)
		}
	})
}

func TestHandleRegister_CapacityReached(t *testing.T) {
	rosterStore := newTestStore(t)
	service := roster.NewService(rosterStore)
	handler := NewRegistrationHandler(service, nil, &config.Config{})
	ctx := context.Background()

	cfg, err := rosterStore.ReadConfig(ctx)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	cfg.Capacity = 1
	if err := rosterStore.WriteConfig(ctx, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	req := &RegisterRequest{}
	req.Body.Name = "Primeira Pessoa"
	req.Body.BirthDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := handler.HandleRegister(ctx, req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	req2 := &RegisterRequest{}
	req2.Body.Name = "Segunda Pessoa"
	req2.Body.BirthDate = time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = handler.HandleRegister(ctx, req2)
	if got := statusOf(t, err); got != 409 {
		t.Errorf("expected 409 when full, got %d", got)
	}

	// The refused attempt must not have created a record.
	participants, err := rosterStore.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(participants) != 1 {
		t.Errorf("expected 1 participant, got %d", len(participants))
	}
}
