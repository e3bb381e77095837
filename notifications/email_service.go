package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/lataberna/reservations-backend/configs"
)

const brevoURL = "https://api.brevo.com/v3/smtp/email"

// EmailService delivers transactional email through the Brevo HTTP API.
type EmailService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	APIURL      string

	client *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewEmailService reads the mail account settings from the environment.
// The service is still returned when they are missing; sends then fail
// with a configuration error, which the booking endpoint surfaces.
func NewEmailService() *EmailService {
	svc := &EmailService{
		APIKey:      config.Config("BREVO_API_KEY"),
		SenderEmail: config.Config("EMAIL_SENDER"),
		SenderName:  config.Config("EMAIL_SENDER_NAME"),
		APIURL:      brevoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
	if svc.APIKey == "" || svc.SenderEmail == "" {
		log.Println("⚠️ Email service not configured. Missing API key or sender address.")
	} else {
		log.Println("✅ Email service initialized successfully.")
	}
	return svc
}

// Send delivers one HTML email. No retry is attempted; the error goes
// straight back to the caller.
func (s *EmailService) Send(toName, toEmail, subject, htmlContent string) error {
	if s.APIKey == "" || s.SenderEmail == "" {
		return fmt.Errorf("email service not configured")
	}
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", s.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := s.client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send email: %s", string(bodyBytes))
	}

	log.Printf("✅ Email sent successfully to %s", toEmail)
	return nil
}
