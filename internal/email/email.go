package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/kletskov/flightbooking/config"
	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/sirupsen/logrus"
)

// Sender delivers booking notification email. Without an SMTP host it only
// logs the message, which keeps local setups working.
type Sender struct {
	from     string
	smtpAddr string
}

func NewSender(cfg config.NotificationsConfig) *Sender {
	addr := ""
	if cfg.SMTPHost != "" {
		addr = fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	return &Sender{from: cfg.From, smtpAddr: addr}
}

func (s *Sender) Send(ctx context.Context, event domain.BookingEvent) error {
	if event.ContactEmail == "" {
		return nil
	}

	subject := subjectFor(event)
	body := bodyFor(event)

	if s.smtpAddr == "" {
		logrus.WithFields(logrus.Fields{
			"to":      event.ContactEmail,
			"subject": subject,
		}).Info("smtp not configured, logging notification instead")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.from, event.ContactEmail, subject, body)
	return smtp.SendMail(s.smtpAddr, nil, s.from, []string{event.ContactEmail}, []byte(msg))
}

func subjectFor(event domain.BookingEvent) string {
	switch event.EventType {
	case domain.BookingEventCancelled:
		return "Ticket cancelled - PNR " + event.PNROutbound
	default:
		return "Ticket booked - PNR " + event.PNROutbound
	}
}

func bodyFor(event domain.BookingEvent) string {
	headline := "Your ticket is booked."
	if event.EventType == domain.BookingEventCancelled {
		headline = "Your ticket is cancelled."
	}
	returnPNR := "N/A"
	if event.PNRReturn != "" {
		returnPNR = event.PNRReturn
	}
	returnFlight := "N/A"
	if event.ReturnFlightID != "" {
		returnFlight = event.ReturnFlightID
	}

	return fmt.Sprintf("%s\nPNR: %s\nReturn PNR: %s\nOutbound flight: %s\nReturn flight: %s\nPassengers: %d\nStatus: %s\n",
		headline, event.PNROutbound, returnPNR, event.OutboundFlightID, returnFlight, event.TotalPassengers, event.Status)
}
