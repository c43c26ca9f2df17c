package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ayane-kurokawa/waggle/api/internal/model"
)

// ResendClient sends reminder emails via the Resend API.
type ResendClient struct {
	apiKey   string
	from     string
	fromName string
	http     *http.Client
}

func NewResendClient() *ResendClient {
	return &ResendClient{
		apiKey:   os.Getenv("RESEND_API_KEY"),
		from:     os.Getenv("RESEND_FROM_EMAIL"),
		fromName: os.Getenv("RESEND_FROM_NAME"),
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *ResendClient) Enabled() bool {
	return r != nil && r.apiKey != "" && r.from != ""
}

// ReminderItem is one line of the reminder email.
type ReminderItem struct {
	ActivityTitle string
	Pillar        model.Pillar
	Notes         *string
}

// SendReminder emails a dog owner the activities scheduled for date that were
// flagged with a reminder.
func (r *ResendClient) SendReminder(ctx context.Context, to string, dog *model.Dog, date string, items []ReminderItem) error {
	if !r.Enabled() {
		log.Printf("resend disabled (missing RESEND_API_KEY or RESEND_FROM_EMAIL), skip reminder to %s", to)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	subject := fmt.Sprintf("%s's enrichment plan for %s", dog.Name, date)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Here's what %s has lined up for %s:</p><ul>", html.EscapeString(dog.Name), date))
	for _, it := range items {
		b.WriteString("<li><strong>")
		b.WriteString(html.EscapeString(it.ActivityTitle))
		b.WriteString("</strong> (")
		b.WriteString(html.EscapeString(string(it.Pillar)))
		b.WriteString(")")
		if it.Notes != nil && strings.TrimSpace(*it.Notes) != "" {
			b.WriteString(" — ")
			b.WriteString(html.EscapeString(*it.Notes))
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul><p>Have fun out there!</p>")

	return r.send(ctx, to, subject, b.String())
}

func (r *ResendClient) send(ctx context.Context, to, subject, htmlBody string) error {
	from := r.from
	if r.fromName != "" {
		from = fmt.Sprintf("%s <%s>", r.fromName, r.from)
	}
	payload := map[string]any{
		"from":    from,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend: status %d", resp.StatusCode)
	}
	return nil
}
