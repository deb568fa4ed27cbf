package export

import (
	"encoding/csv"
	"io"

	"github.com/cesam-goiania/encontro-api/internal/models"
)

// WriteCSV writes the header and one row per participant.
func WriteCSV(w io.Writer, participants []models.Participant) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return err
	}
	for _, row := range ToRows(participants) {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
