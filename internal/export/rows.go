// Package export renders a filtered participant list to CSV or PDF.
// Both formats consume the same flat rows and preserve the order the
// query engine produced.
package export

import (
	"strconv"

	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
)

// Headers are the pt-BR column titles of the original spreadsheet
// export, shared by CSV and PDF.
var Headers = []string{
	"Nome",
	"Telefone",
	"Data Nascimento",
	"Idade",
	"Data Inscrição",
	"Status",
	"Autorização",
}

// ToRows flattens participants into export rows, one per record, in the
// given order.
func ToRows(participants []models.Participant) [][]string {
	rows := make([][]string, 0, len(participants))
	for _, p := range participants {
		consent := "pendente"
		if p.ConsentDelivered {
			consent = "entregue"
		}
		rows = append(rows, []string{
			p.Name,
			p.Phone,
			p.BirthDate.Format(roster.DateLayout),
			strconv.Itoa(p.Age),
			p.RegisteredAt.Format(roster.DateLayout),
			p.Status,
			consent,
		})
	}
	return rows
}
