package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/cesam-goiania/encontro-api/internal/models"
	"github.com/cesam-goiania/encontro-api/internal/roster"
)

// Notifier tells the organizers about roster changes. Failures are
// logged, never surfaced to the registrant.
type Notifier interface {
	NotifyAdmission(p models.Participant) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyAdmission(p models.Participant) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	consentStr := ""
	if roster.IsMinor(p.Age) {
		consentStr = "\n**Menor de idade:** aguardando autorização dos responsáveis"
	}

	message := fmt.Sprintf("🎉 **Nova Inscrição**\n**Nome:** %s\n**Idade:** %d\n**Data:** %s%s",
		p.Name,
		p.Age,
		p.RegisteredAt.Format(roster.DateLayout),
		consentStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
