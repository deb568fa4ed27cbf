package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/models"
)

func sampleParticipants() []models.Participant {
	return []models.Participant{
		{
			Name:         "Ana Silva",
			Phone:        "(62) 99999-8888",
			BirthDate:    time.Date(2008, 3, 15, 0, 0, 0, 0, time.UTC),
			Age:          16,
			RegisteredAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
			Status:       models.StatusRegistered,
		},
		{
			Name:             "João, o Pedro",
			BirthDate:        time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
			Age:              34,
			RegisteredAt:     time.Date(2025, 1, 11, 9, 0, 0, 0, time.UTC),
			Status:           models.StatusRegistered,
			ConsentDelivered: true,
		},
	}
}

func TestToRows(t *testing.T) {
	rows := ToRows(sampleParticipants())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := []string{"Ana Silva", "(62) 99999-8888", "15/03/2008", "16", "10/01/2025", "registered", "pendente"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d: expected %q, got %q", i, cell, rows[0][i])
		}
	}
	if rows[1][6] != "entregue" {
		t.Errorf("expected delivered consent, got %q", rows[1][6])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleParticipants()); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Nome,Telefone,") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	// Input order is preserved, and the comma in the name gets quoted.
	if !strings.HasPrefix(lines[1], "Ana Silva,") {
		t.Errorf("expected Ana Silva first, got %q", lines[1])
	}
	if !strings.Contains(lines[2], `"João, o Pedro"`) {
		t.Errorf("expected quoted name, got %q", lines[2])
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleParticipants()); err != nil {
		t.Fatalf("WritePDF returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF document")
	}
}
