package handlers

import (
	"context"
	"log"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/config"
	"github.com/cesam-goiania/encontro-api/internal/notifier"
	"github.com/cesam-goiania/encontro-api/internal/roster"
)

type RegistrationHandler struct {
	service  *roster.Service
	notifier notifier.Notifier
	cfg      *config.Config
}

func NewRegistrationHandler(service *roster.Service, notifier notifier.Notifier, cfg *config.Config) *RegistrationHandler {
	return &RegistrationHandler{service: service, notifier: notifier, cfg: cfg}
}

type RegisterRequest struct {
	Body struct {
		Name      string    `json:"name" doc:"Full name" required:"true"`
		Phone     string    `json:"phone,omitempty" doc:"Contact phone, any formatting"`
		BirthDate time.Time `json:"birth_date" doc:"Date of birth" required:"true"`
	}
}

type RegisterResponse struct {
	Body struct {
		ID              string `json:"id"`
		Message         string `json:"message"`
		RequiresConsent bool   `json:"requires_consent"`
		ConsentFormURL  string `json:"consent_form_url,omitempty"`
	}
}

// HandleRegister is the public self-service registration. Minors get the
// guardian-consent instructions and the form download link back.
func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegisterResponse, error) {
	result, err := h.service.Admit(ctx, roster.Candidate{
		Name:      input.Body.Name,
		Phone:     input.Body.Phone,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, mapRosterError(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyAdmission(result.Participant); err != nil {
			log.Printf("Failed to notify admission: %v", err)
			// Registration already persisted; don't fail the request.
		}
	}

	res := &RegisterResponse{}
	res.Body.ID = result.Participant.ID
	res.Body.RequiresConsent = result.RequiresConsent
	if result.RequiresConsent {
		res.Body.Message = "Inscrição realizada! Como você é menor de idade, compareça ao evento com a autorização dos pais/responsáveis em mãos."
		res.Body.ConsentFormURL = h.cfg.ConsentFormURL
	} else {
		res.Body.Message = "Inscrição realizada com sucesso!"
	}
	return res, nil
}
