package relay

import (
	"bytes"
	"html/template"
)

var notificationTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap; background: white; padding: 15px; border-radius: 4px;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 12px;">This message was sent from your portfolio contact form.</p>
</div>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Thank you for your message, {{.Sub.Name}}!</h2>
  <p>I've received your message and will get back to you as soon as possible.</p>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Your message:</strong></p>
    <p style="white-space: pre-wrap;">{{.Sub.Message}}</p>
  </div>
  <p>Best regards,<br>{{.Owner}}</p>
</div>
`))

func notificationHTML(sub Submission) (string, error) {
	var b bytes.Buffer
	if err := notificationTmpl.Execute(&b, sub); err != nil {
		return "", err
	}
	return b.String(), nil
}

func confirmationHTML(sub Submission, owner string) (string, error) {
	var b bytes.Buffer
	err := confirmationTmpl.Execute(&b, struct {
		Sub   Submission
		Owner string
	}{sub, owner})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
