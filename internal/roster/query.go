package roster

import (
	"sort"
	"strings"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DateLayout is the pt-BR calendar date format used for the registration
// date filter, the aggregates and the exports.
const DateLayout = "02/01/2006"

// minSearchLen: name search stays inert below three characters, but a
// one or two character string deliberately matches nothing (the UI rule
// from the admin panel).
const minSearchLen = 3

// AgeClass is the tri-state age filter. Selecting both checkboxes in the
// admin UI cancels the filter, which is the All state here.
type AgeClass int

const (
	AgeAll AgeClass = iota
	AgeMinor
	AgeAdult
)

// ConsentClass is the tri-state consent filter, same convention.
type ConsentClass int

const (
	ConsentAll ConsentClass = iota
	ConsentDelivered
	ConsentPending
)

// Criteria composes the admin panel filters with AND semantics. Zero
// value means no filtering.
type Criteria struct {
	NameContains  string
	RegisteredOn  string // DateLayout-formatted calendar date
	AgeClass      AgeClass
	ConsentClass  ConsentClass
	PhoneLastFour string
}

// Result is one page of the filtered, sorted roster.
type Result struct {
	Rows       []models.Participant
	Total      int
	TotalPages int
}

// Filter applies the criteria in the fixed order name, date, age class,
// consent class, phone and returns the matches sorted by name using
// pt-BR collation. It is pure: the input slice is not modified and order
// ties keep the original roster order.
func Filter(participants []models.Participant, c Criteria) []models.Participant {
	out := make([]models.Participant, 0, len(participants))
	out = append(out, participants...)

	if c.NameContains != "" {
		if len([]rune(c.NameContains)) < minSearchLen {
			out = out[:0]
		} else {
			needle := strings.ToLower(c.NameContains)
			out = keep(out, func(p models.Participant) bool {
				return strings.Contains(strings.ToLower(p.Name), needle)
			})
		}
	}

	if c.RegisteredOn != "" {
		out = keep(out, func(p models.Participant) bool {
			return p.RegisteredAt.Format(DateLayout) == c.RegisteredOn
		})
	}

	switch c.AgeClass {
	case AgeMinor:
		out = keep(out, func(p models.Participant) bool { return IsMinor(p.Age) })
	case AgeAdult:
		out = keep(out, func(p models.Participant) bool { return !IsMinor(p.Age) })
	}

	switch c.ConsentClass {
	case ConsentDelivered:
		out = keep(out, func(p models.Participant) bool { return p.ConsentDelivered })
	case ConsentPending:
		out = keep(out, func(p models.Participant) bool { return !p.ConsentDelivered })
	}

	if len(onlyDigits(c.PhoneLastFour)) == 4 {
		last := onlyDigits(c.PhoneLastFour)
		out = keep(out, func(p models.Participant) bool {
			return LastFourDigits(p.Phone) == last
		})
	}

	col := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})

	return out
}

// Query filters and paginates the roster. Pages are 1-based; a page
// outside 1..TotalPages yields empty rows with no error and no clamping.
func Query(participants []models.Participant, c Criteria, page, pageSize int) Result {
	filtered := Filter(participants, c)

	res := Result{Total: len(filtered)}
	if pageSize <= 0 {
		return res
	}
	res.TotalPages = (len(filtered) + pageSize - 1) / pageSize

	if page < 1 || page > res.TotalPages {
		res.Rows = []models.Participant{}
		return res
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	res.Rows = filtered[start:end]
	return res
}

func keep(in []models.Participant, pred func(models.Participant) bool) []models.Participant {
	out := in[:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// DateCount is one row of the registration-date summary.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// RegistrationDates returns the distinct registration dates of the whole
// roster with per-date counts, newest date first.
func RegistrationDates(participants []models.Participant) []DateCount {
	counts := make(map[string]int)
	for _, p := range participants {
		counts[p.RegisteredAt.Format(DateLayout)]++
	}

	out := make([]DateCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DateCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		di, _ := time.Parse(DateLayout, out[i].Date)
		dj, _ := time.Parse(DateLayout, out[j].Date)
		return di.After(dj)
	})
	return out
}

// PhoneGroup is one row of the phone-suffix summary.
type PhoneGroup struct {
	LastFour string `json:"last_four"`
	Count    int    `json:"count"`
}

// PhoneGroups buckets the roster by the last four phone digits, most
// populous group first. Records without a full four digits have no group
// and are skipped. Equal counts order by suffix so the output is stable.
func PhoneGroups(participants []models.Participant) []PhoneGroup {
	counts := make(map[string]int)
	for _, p := range participants {
		last := LastFourDigits(p.Phone)
		if len(last) == 4 {
			counts[last]++
		}
	}

	out := make([]PhoneGroup, 0, len(counts))
	for last, n := range counts {
		out = append(out, PhoneGroup{LastFour: last, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastFour < out[j].LastFour
	})
	return out
}
