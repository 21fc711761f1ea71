package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"saas-dashboard-backend/internal/config"
	"saas-dashboard-backend/internal/database/models"
)

const resendAPIURL = "https://api.resend.com/emails"

// EmailService sends transactional email through the Resend API
type EmailService struct {
	cfg        *config.Config
	httpClient *http.Client
	baseURL    string
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    resendAPIURL,
	}
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

var invitationEmailTemplate = template.Must(template.New("invitation").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>You've been invited to join {{.OrgName}}</h2>
  <p>{{.InviterName}} has invited you to join <strong>{{.OrgName}}</strong> as <strong>{{.Role}}</strong>.</p>
  <p>
    <a href="{{.AcceptURL}}" style="display: inline-block; padding: 12px 24px; background-color: #4f46e5; color: #ffffff; text-decoration: none; border-radius: 6px;">
      Accept invitation
    </a>
  </p>
  <p style="color: #6b7280; font-size: 14px;">This invitation expires in 7 days. If you weren't expecting it, you can ignore this email.</p>
</div>
`))

// SendInvitationEmail sends an organization invitation to the given address.
// The recipient does not need an account yet; the accept link carries the token.
func (s *EmailService) SendInvitationEmail(email, orgName, inviterName string, role models.MembershipRole, token string) error {
	if s.cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not configured")
	}

	acceptURL := strings.TrimRight(s.cfg.FrontendURL, "/") + "/invitations?token=" + token

	var body bytes.Buffer
	err := invitationEmailTemplate.Execute(&body, map[string]interface{}{
		"OrgName":     orgName,
		"InviterName": inviterName,
		"Role":        role,
		"AcceptURL":   acceptURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render invitation email: %w", err)
	}

	from := s.cfg.MailFrom
	if s.cfg.MailFromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.MailFromName, s.cfg.MailFrom)
	}
	payload, err := json.Marshal(resendEmailRequest{
		From:    from,
		To:      []string{email},
		Subject: fmt.Sprintf("You've been invited to join %s", orgName),
		HTML:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email send failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}
	return nil
}
