package notification

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"myMarketHub/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type MailerConfig struct {
	MailerBaseURL           string
	MailerBasicAuthUsername string
	MailerBasicAuthPassword string
	MailerSenderEmail       string
	MailerSenderName        string
}

// MailerRepository sends transactional email through an HTTP mailer API
// authenticated with basic auth.
type MailerRepository struct {
	mailerConfig MailerConfig
}

func NewMailerRepository(cfg MailerConfig) *MailerRepository {
	return &MailerRepository{
		cfg,
	}
}

type payloadSendEmail struct {
	Messages []message `json:"Messages"`
}

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	HTMLPart string    `json:"HTMLPart"`
}

func (r MailerRepository) SendEmail(toName, toEmail, subject, body string) (err error) {
	url := r.mailerConfig.MailerBaseURL + "/v3.1/send"

	payload := payloadSendEmail{
		Messages: []message{{
			To: []address{{
				Email: toEmail,
				Name:  toName,
			}},
			From: address{
				Email: r.mailerConfig.MailerSenderEmail,
				Name:  r.mailerConfig.MailerSenderName,
			},
			Subject:  subject,
			TextPart: body,
			HTMLPart: body,
		}},
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	basicAuth := goshortcute.StringtoBase64Encode(r.mailerConfig.MailerBasicAuthUsername + ":" + r.mailerConfig.MailerBasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+basicAuth)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Warn("Mailer returned negative response", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("mailer service returned status %v", res.StatusCode)
}
