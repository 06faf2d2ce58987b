package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"rentx/internal/entities"
)

// Notifier tells a user their reservation was recorded.
type Notifier interface {
	NotifyScheduleCreated(user entities.UserResponse, schedule entities.ScheduleByUser, total int64)
}

type SenderConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

// SenderService sends confirmation e-mails through SendGrid and SMS through
// Twilio. A channel without credentials is skipped.
type SenderService struct {
	cfg       SenderConfig
	sendEmail func(toEmail, toName, subject, plainText, html string) error
	sendSMS   func(toNumber, body string) error
	async     bool
}

func NewSenderService(cfg SenderConfig) *SenderService {
	s := &SenderService{cfg: cfg, async: true}
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		s.sendEmail = s.sendEmailWithSendGrid
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromNumber != "" {
		s.sendSMS = s.sendSMSWithTwilio
	}
	return s
}

var reservationEmailTemplate = template.Must(template.New("reservation_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #47474D;">
  <h2>Carro alugado!</h2>
  <p>Olá {{.UserName}},</p>
  <p>Sua reserva #{{.ScheduleID}} foi confirmada.</p>
  <table>
    <tr><td>Carro</td><td>{{.CarBrand}} {{.CarName}}</td></tr>
    <tr><td>De</td><td>{{.StartDate}}</td></tr>
    <tr><td>Até</td><td>{{.EndDate}}</td></tr>
    <tr><td>Total</td><td>R$ {{.Total}}</td></tr>
  </table>
  <p>Agora você só precisa ir até a concessionária da RENTX pegar o seu automóvel.</p>
  <p style="font-size: 12px;">&copy; {{.CurrentYear}} RentX</p>
</body>
</html>`))

func (s *SenderService) NotifyScheduleCreated(user entities.UserResponse, schedule entities.ScheduleByUser, total int64) {
	data := entities.ReservationEmailData{
		UserName:    user.Name,
		ScheduleID:  schedule.ID,
		CarBrand:    schedule.Car.Brand,
		CarName:     schedule.Car.Name,
		StartDate:   schedule.StartDate,
		EndDate:     schedule.EndDate,
		Total:       total,
		CurrentYear: time.Now().Year(),
	}

	if s.sendEmail != nil && user.Email != "" {
		subject, plain, html, err := renderReservationEmail(data)
		if err != nil {
			zap.S().Errorw("could not render reservation e-mail", "schedule_id", schedule.ID, "error", err)
		} else {
			s.run(func() {
				if err := s.sendEmail(user.Email, user.Name, subject, plain, html); err != nil {
					zap.S().Errorw("reservation e-mail failed", "schedule_id", schedule.ID, "error", err)
				}
			})
		}
	}

	if s.sendSMS != nil && user.Phone != "" {
		body := fmt.Sprintf("RentX: reserva %d confirmada! %s %s de %s até %s.",
			schedule.ID, data.CarBrand, data.CarName, data.StartDate, data.EndDate)
		s.run(func() {
			if err := s.sendSMS(user.Phone, body); err != nil {
				zap.S().Errorw("reservation SMS failed", "schedule_id", schedule.ID, "phone", user.Phone, "error", err)
			}
		})
	}
}

func (s *SenderService) run(fn func()) {
	if s.async {
		go fn()
		return
	}
	fn()
}

func renderReservationEmail(data entities.ReservationEmailData) (subject, plain, html string, err error) {
	subject = fmt.Sprintf("Sua reserva RentX #%d está confirmada", data.ScheduleID)
	plain = fmt.Sprintf(
		"Olá %s,\n\nSua reserva #%d foi confirmada.\n\n"+
			"Carro: %s %s\n"+
			"De: %s\n"+
			"Até: %s\n"+
			"Total: R$ %d\n\n"+
			"RentX %d",
		data.UserName, data.ScheduleID, data.CarBrand, data.CarName, data.StartDate, data.EndDate, data.Total, data.CurrentYear,
	)

	var buf bytes.Buffer
	if err := reservationEmailTemplate.Execute(&buf, data); err != nil {
		return "", "", "", err
	}
	return subject, plain, buf.String(), nil
}

func (s *SenderService) sendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s failed: %w", toEmailAddress, err)
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		zap.S().Infow("e-mail sent", "to", toEmailAddress, "subject", subject, "status", response.StatusCode)
		return nil
	}
	return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
}

func (s *SenderService) sendSMSWithTwilio(toNumber, messageBody string) error {
	if !strings.HasPrefix(toNumber, "+") {
		zap.S().Warnw("destination number is not E.164, SMS may fail", "to", toNumber)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   s.cfg.TwilioAccountSID,
		Password:   s.cfg.TwilioAuthToken,
		AccountSid: s.cfg.TwilioAccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send to %s failed: %w", toNumber, err)
	}
	if resp != nil && resp.Sid != nil {
		zap.S().Infow("SMS sent", "to", toNumber, "sid", *resp.Sid)
	}
	return nil
}
