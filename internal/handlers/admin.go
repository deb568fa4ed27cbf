package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/auth"
	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
	"github.com/danielgtaylor/huma/v2"
)

// AdminHandler exposes the roster management panel operations. Every
// operation re-reads the full roster; the store is the only source of
// truth between user actions.
type AdminHandler struct {
	store       roster.Store
	service     *roster.Service
	authHandler *auth.AuthHandler
}

func NewAdminHandler(store roster.Store, service *roster.Service, authHandler *auth.AuthHandler) *AdminHandler {
	return &AdminHandler{store: store, service: service, authHandler: authHandler}
}

func mapRosterError(err error) error {
	switch {
	case err == nil:
		return nil
	case roster.IsValidation(err):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, roster.ErrCapacityExceeded):
		return huma.Error409Conflict("Limite de participantes atingido. Inscrições encerradas.")
	case errors.Is(err, roster.ErrNotFound):
		return huma.Error404NotFound("Participant not found")
	default:
		return huma.Error500InternalServerError("Store operation failed: " + err.Error())
	}
}

func parseAgeClass(s string) roster.AgeClass {
	switch s {
	case "minor":
		return roster.AgeMinor
	case "adult":
		return roster.AgeAdult
	default:
		return roster.AgeAll
	}
}

func parseConsentClass(s string) roster.ConsentClass {
	switch s {
	case "delivered":
		return roster.ConsentDelivered
	case "pending":
		return roster.ConsentPending
	default:
		return roster.ConsentAll
	}
}

type ListParticipantsInput struct {
	auth.AuthInput
	Search       string `query:"search" doc:"Name substring, ignored below 3 characters"`
	Date         string `query:"date" doc:"Registration date filter, dd/mm/yyyy"`
	AgeClass     string `query:"age_class" enum:"all,minor,adult" default:"all"`
	ConsentClass string `query:"consent_class" enum:"all,delivered,pending" default:"all"`
	PhoneLast4   string `query:"phone_last4" doc:"Exact last four phone digits"`
	Page         int    `query:"page" default:"1" minimum:"1"`
	PageSize     int    `query:"page_size" default:"10" minimum:"1" maximum:"100"`
}

type ListParticipantsOutput struct {
	Body struct {
		Rows       []models.Participant `json:"rows"`
		Total      int                  `json:"total"`
		TotalPages int                  `json:"total_pages"`
		Capacity   int                  `json:"capacity"`
	}
}

func (h *AdminHandler) HandleList(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	participants, err := h.store.ListParticipants(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load participants: " + err.Error())
	}
	cfg, err := h.store.ReadConfig(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load config: " + err.Error())
	}

	result := roster.Query(participants, roster.Criteria{
		NameContains:  input.Search,
		RegisteredOn:  input.Date,
		AgeClass:      parseAgeClass(input.AgeClass),
		ConsentClass:  parseConsentClass(input.ConsentClass),
		PhoneLastFour: input.PhoneLast4,
	}, input.Page, input.PageSize)

	out := &ListParticipantsOutput{}
	out.Body.Rows = result.Rows
	out.Body.Total = result.Total
	out.Body.TotalPages = result.TotalPages
	out.Body.Capacity = cfg.Capacity
	return out, nil
}

type CreateParticipantInput struct {
	auth.AuthInput
	Body struct {
		Name      string    `json:"name" required:"true"`
		Phone     string    `json:"phone,omitempty"`
		BirthDate time.Time `json:"birth_date" required:"true"`
	}
}

type CreateParticipantOutput struct {
	Body models.Participant
}

func (h *AdminHandler) HandleCreate(ctx context.Context, input *CreateParticipantInput) (*CreateParticipantOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	p, err := h.service.AdminCreate(ctx, roster.Candidate{
		Name:      input.Body.Name,
		Phone:     input.Body.Phone,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, mapRosterError(err)
	}

	return &CreateParticipantOutput{Body: p}, nil
}

type UpdateParticipantInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		Name             string    `json:"name" required:"true"`
		Phone            string    `json:"phone,omitempty"`
		BirthDate        time.Time `json:"birth_date" required:"true"`
		ConsentDelivered bool      `json:"consent_delivered"`
	}
}

type MessageOutput struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AdminHandler) HandleUpdate(ctx context.Context, input *UpdateParticipantInput) (*MessageOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	err := h.service.AdminUpdate(ctx, input.ID, roster.Update{
		Name:             input.Body.Name,
		Phone:            input.Body.Phone,
		BirthDate:        input.Body.BirthDate,
		ConsentDelivered: input.Body.ConsentDelivered,
	})
	if err != nil {
		return nil, mapRosterError(err)
	}

	res := &MessageOutput{}
	res.Body.Message = "Participant updated"
	return res, nil
}

type DeleteParticipantInput struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *AdminHandler) HandleDelete(ctx context.Context, input *DeleteParticipantInput) (*struct{}, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	if err := h.service.AdminDelete(ctx, input.ID); err != nil {
		return nil, mapRosterError(err)
	}
	return nil, nil
}

type SetConsentInput struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		Delivered bool `json:"delivered"`
	}
}

func (h *AdminHandler) HandleSetConsent(ctx context.Context, input *SetConsentInput) (*MessageOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	if err := h.service.SetConsent(ctx, input.ID, input.Body.Delivered); err != nil {
		return nil, mapRosterError(err)
	}

	res := &MessageOutput{}
	res.Body.Message = "Consent status updated"
	return res, nil
}

type SetCapacityInput struct {
	auth.AuthInput
	Body struct {
		Capacity int `json:"capacity" required:"true"`
	}
}

func (h *AdminHandler) HandleSetCapacity(ctx context.Context, input *SetCapacityInput) (*MessageOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	if err := h.service.SetCapacity(ctx, input.Body.Capacity); err != nil {
		return nil, mapRosterError(err)
	}

	res := &MessageOutput{}
	res.Body.Message = "Capacity updated"
	return res, nil
}

type SummaryInput struct {
	auth.AuthInput
}

type SummaryOutput struct {
	Body struct {
		Dates       []roster.DateCount  `json:"dates"`
		PhoneGroups []roster.PhoneGroup `json:"phone_groups"`
	}
}

// HandleSummary serves the two aggregate views of the unfiltered roster
// used by the admin panel filter chips.
func (h *AdminHandler) HandleSummary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	if err := h.authHandler.Authorize(input.Cookie); err != nil {
		return nil, err
	}

	participants, err := h.store.ListParticipants(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load participants: " + err.Error())
	}

	out := &SummaryOutput{}
	out.Body.Dates = roster.RegistrationDates(participants)
	out.Body.PhoneGroups = roster.PhoneGroups(participants)
	return out, nil
}
