package email

import (
	"bytes"
	"fmt"
	"go-marketplace-backend/config"
	"go-marketplace-backend/internal/domain"
	"html/template"
	"net/smtp"
)

// Service sends lifecycle emails via SMTP. One outbound send per lifecycle
// event; no retry, no queue, no delivery tracking.
type Service struct {
	host       string
	port       string
	username   string
	password   string
	fromEmail  string
	adminEmail string
}

// NewService creates an email service from SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		fromEmail:  cfg.SMTPFromEmail,
		adminEmail: cfg.AdminEmail,
	}
}

const baseStyle = `
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .button { display: inline-block; background: #0066cc; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }`

var applicationReceivedTmpl = template.Must(template.New("application_received").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Received</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Application Received</h1></div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Thanks for applying to join ServiceHub as a professional. Our team
            reviews every application and you will hear from us by email once a
            decision is made.</p>
        </div>
        <div class="footer"><p>ServiceHub — connecting customers with trusted professionals.</p></div>
    </div>
</body>
</html>`))

var adminAlertTmpl = template.Must(template.New("admin_alert").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Professional Application</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>New Professional Application</h1></div>
        <div class="content">
            <div class="field"><span class="label">Name:</span> {{.Name}}</div>
            <div class="field"><span class="label">Email:</span> {{.Email}}</div>
            <div class="field"><span class="label">Phone:</span> {{.Phone}}</div>
            <div class="field"><span class="label">Profession:</span> {{.Profession}}</div>
            <div class="field"><span class="label">Experience:</span> {{.YearsExperience}} years</div>
            <div class="field"><span class="label">Service area:</span> {{.ServiceArea}}</div>
        </div>
        <div class="footer"><p>Review the application in the admin dashboard.</p></div>
    </div>
</body>
</html>`))

var approvalTmpl = template.Must(template.New("approval").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your Application Was Approved</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Welcome to ServiceHub</h1></div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Your application has been approved. Finish creating your account
            using the link below. The link is valid for 7 days and can only be
            used once.</p>
            <p style="text-align: center;"><a class="button" href="{{.SignupURL}}">Complete your signup</a></p>
        </div>
        <div class="footer"><p>If you did not apply, you can safely ignore this email.</p></div>
    </div>
</body>
</html>`))

var rejectionTmpl = template.Must(template.New("rejection").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Update on Your Application</title>
    <style>` + baseStyle + `</style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Update on Your Application</h1></div>
        <div class="content">
            <p>Hi {{.Name}},</p>
            <p>Thank you for your interest in joining ServiceHub. After review,
            we are unable to approve your application at this time. You are
            welcome to apply again in the future.</p>
        </div>
        <div class="footer"><p>ServiceHub — connecting customers with trusted professionals.</p></div>
    </div>
</body>
</html>`))

type applicantData struct {
	Name      string
	SignupURL string
}

type adminAlertData struct {
	Name            string
	Email           string
	Phone           string
	Profession      string
	YearsExperience int
	ServiceArea     string
}

// SendApplicationReceived confirms submission to the applicant.
func (s *Service) SendApplicationReceived(to, name string) error {
	return s.send(to, "We received your application", applicationReceivedTmpl, applicantData{Name: name})
}

// SendAdminAlert notifies the admin inbox about a new application.
func (s *Service) SendAdminAlert(app *domain.ProfessionalApplication) error {
	return s.send(s.adminEmail, "New professional application: "+app.FullName(), adminAlertTmpl, adminAlertData{
		Name:            app.FullName(),
		Email:           app.Email,
		Phone:           app.Phone,
		Profession:      app.Profession,
		YearsExperience: app.YearsExperience,
		ServiceArea:     app.ServiceArea,
	})
}

// SendApprovalEmail sends the approval email with the one-time signup link.
func (s *Service) SendApprovalEmail(to, name, signupURL string) error {
	return s.send(to, "Your application was approved", approvalTmpl, applicantData{Name: name, SignupURL: signupURL})
}

// SendRejectionEmail informs the applicant about a rejection.
func (s *Service) SendRejectionEmail(to, name string) error {
	return s.send(to, "Update on your application", rejectionTmpl, applicantData{Name: name})
}

func (s *Service) send(to, subject string, tmpl *template.Template, data interface{}) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
