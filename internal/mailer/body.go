package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// htmlBody escapes the submitted fields via html/template, so a message
// containing markup renders as text in the recipient's client.
var htmlBody = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 10px 0;"><strong>Name:</strong> {{.Name}}</p>
    <p style="margin: 10px 0;"><strong>Email:</strong> {{.Email}}</p>
  </div>
  <div style="margin: 20px 0;">
    <h3 style="color: #333;">Message:</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
  </div>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
  <p style="color: #666; font-size: 12px;">
    This email was sent from the Wanderlust Bites contact form.
  </p>
</div>`))

func renderHTMLBody(msg ContactMessage) (string, error) {
	var sb strings.Builder
	if err := htmlBody.Execute(&sb, msg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderTextBody(msg ContactMessage) string {
	return fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s

Message:
%s

---
This email was sent from the Wanderlust Bites contact form.
`, msg.Name, msg.Email, msg.Message)
}
