package handlers

import (
	"context"
)

// Landing-page content. Static by design: the site copy changes once per
// edition, together with the code.

type InfoCard struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ScheduleItem struct {
	Time    string `json:"time"`
	Name    string `json:"name"`
	Details string `json:"details"`
}

type ScheduleDay struct {
	Label string         `json:"label"`
	Items []ScheduleItem `json:"items"`
}

type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type EventInfo struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Dates    string         `json:"dates"`
	Venue    string         `json:"venue"`
	About    []InfoCard     `json:"about"`
	Schedule []ScheduleDay  `json:"schedule"`
	Info     []InfoCard     `json:"info"`
	Glossary []GlossaryTerm `json:"glossary"`
}

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

type EventInfoOutput struct {
	Body EventInfo
}

// HandleEventInfo serves the public landing-page content consumed by the
// frontend sections.
func (h *EventHandler) HandleEventInfo(ctx context.Context, input *struct{}) (*EventInfoOutput, error) {
	return &EventInfoOutput{Body: eventInfo}, nil
}

var eventInfo = EventInfo{
	Title:    "2º Encontro Pastoral",
	Subtitle: "Festa de Dom Bosco Lá no Céu!",
	Dates:    "06, 07 e 08 de Fevereiro de 2025",
	Venue:    "CESAM Goiânia - Alameda dos Buritis, 485, Setor Oeste - Goiânia/GO",
	About: []InfoCard{
		{Title: "Objetivo Geral", Content: "Promover a integração e formação pastoral da comunidade através de atividades espirituais e educativas."},
		{Title: "Participantes", Content: "Membros da comunidade, líderes pastorais, jovens e famílias interessadas."},
	},
	Schedule: []ScheduleDay{
		{
			Label: "06/02",
			Items: []ScheduleItem{
				{Time: "18h", Name: "Chegada e Recepção", Details: "Equipe de Animação e Acolhida"},
				{Time: "19h30", Name: "Jantar", Details: "Equipe de Cozinha"},
				{Time: "20h30", Name: "Acolhida e Orientações", Details: "Coordenação Geral"},
				{Time: "21h", Name: "Louvor Noturno", Details: "Equipe de Oração"},
				{Time: "22h", Name: "Recolhimento", Details: "Coordenação Geral"},
			},
		},
		{
			Label: "07/02",
			Items: []ScheduleItem{
				{Time: "07h", Name: "Despertar", Details: "Sineteiro"},
				{Time: "08h", Name: "Oração da Manhã", Details: "Equipe de Oração"},
				{Time: "09h", Name: "1ª Oficina - Experiências Salesianas", Details: "Convidado"},
				{Time: "10h40", Name: "2ª Oficina - Protagonismo Juvenil na Pastoral Salesiana", Details: "Robert Trajano"},
				{Time: "12h", Name: "Almoço", Details: "Equipe de Cozinha"},
				{Time: "13h30", Name: "3ª Oficina - Liturgia", Details: "Wallison da Silva"},
				{Time: "18h", Name: "Momento Mariano - Santo Terço", Details: "Equipe de Oração"},
				{Time: "19h30", Name: "Festa à Fantasia com jantar", Details: "Equipe da Festa"},
			},
		},
		{
			Label: "08/02",
			Items: []ScheduleItem{
				{Time: "07h", Name: "Santa Missa na Paróquia Dom Bosco", Details: "Liturgia paroquial"},
				{Time: "09h", Name: "4ª Oficina - Servos do Senhor como Dom Bosco", Details: "Karlla Khristine"},
				{Time: "10h", Name: "Plenária eletiva", Details: "Wallison e Jeniffer"},
				{Time: "10h30", Name: "Nomeações dos Agentes de Pastoral", Details: "Coordenação Geral"},
				{Time: "13h", Name: "Despedida e Encerramento", Details: "Coordenação Geral"},
			},
		},
	},
	Info: []InfoCard{
		{Title: "Inscrições", Content: "As inscrições podem ser feitas pelo site ou presencialmente na secretaria. A taxa inclui material, alimentação e certificado de participação."},
		{Title: "Alimentação", Content: "Todas as refeições estão incluídas na inscrição. Informar previamente sobre restrições alimentares ou necessidades especiais."},
		{Title: "Transporte", Content: "Haverá transporte coletivo saindo da matriz às 7h30. Estacionamento gratuito e monitorado durante todo o evento."},
		{Title: "Material Necessário", Content: "Trazer Bíblia, caderno para anotações e caneta. Recomenda-se roupa confortável."},
	},
	Glossary: []GlossaryTerm{
		{Term: "Pastoral", Definition: "Atividade da Igreja voltada para o cuidado espiritual e material dos fiéis."},
		{Term: "Catequese", Definition: "Processo de educação na fé cristã."},
		{Term: "Liturgia", Definition: "Conjunto de cerimônias e ritos oficiais da Igreja."},
		{Term: "Pastoral da Juventude", Definition: "Ministério voltado para o acompanhamento e formação dos jovens."},
	},
}
