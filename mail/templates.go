package mail

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gotx/contact-service/model"
)

//Email bodies. Form fields are user supplied, so bodies are rendered with
//html/template for contextual escaping.

const inquiryHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { margin: 0; padding: 0; background-color: #121212; font-family: 'Arial', sans-serif; color: #e0e0e0; }
        .container { max-width: 600px; margin: 0 auto; background-color: #1e1e1e; border: 1px solid #333; }
        .header { background-color: #121212; padding: 30px; text-align: center; border-bottom: 3px solid #00f2ff; }
        .header img { height: 50px; }
        .content { padding: 40px 30px; }
        .h1 { color: #ffffff; font-size: 24px; margin-bottom: 20px; font-weight: bold; }
        .field-row { margin-bottom: 20px; border-bottom: 1px solid #333; padding-bottom: 15px; }
        .label { color: #00f2ff; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; margin-bottom: 5px; display: block; }
        .value { color: #ffffff; font-size: 16px; line-height: 1.5; }
        .footer { background-color: #121212; padding: 20px; text-align: center; font-size: 12px; color: #666; border-top: 1px solid #333; }
        .highlight { background: rgba(0, 242, 255, 0.1); border-left: 4px solid #00f2ff; padding: 15px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <img src="https://raw.githubusercontent.com/markotuisk/logos/ce8bf7fa8baff3acc97aac35d8733f7c9122af1c/GOTX.png" alt="GOTX Managed IT">
        </div>
        <div class="content">
            <div class="h1">New Mission Inquiry: {{.TaskID}}</div>
            <p style="color: #aaaaaa; margin-bottom: 30px;">A new contact request has been received from the website.</p>
            <div class="field-row"><span class="label">Client Name</span><div class="value">{{.Fields.FullName}}</div></div>
            <div class="field-row"><span class="label">Contact Info</span><div class="value">{{.Fields.Email}}<br>{{if .Fields.Phone}}{{.Fields.Phone}}{{else}}N/A{{end}}</div></div>
            <div class="field-row"><span class="label">Profile &amp; Urgency</span><div class="value">
                <span style="background: #333; padding: 4px 8px; border-radius: 4px; font-size: 14px;">{{.Fields.UserType}}</span>
                <span style="background: #333; padding: 4px 8px; border-radius: 4px; font-size: 14px; margin-left: 10px;">{{.Fields.ContactTime}}</span>
            </div></div>
            <div class="field-row"><span class="label">Location</span><div class="value">{{.Fields.Postcode}}</div></div>
            <div class="highlight"><span class="label">Mission Brief</span><div class="value">{{.Fields.Description}}</div></div>
        </div>
        <div class="footer">&copy; 2026 GOTX Connect Ltd. Secure Transmission.<br>Sent from gotx-managed-it.co.uk</div>
    </div>
</body>
</html>`

const verificationHTML = `
      <div style="font-family: sans-serif; padding: 20px; background: #121212; color: white;">
        <h2 style="color: {{.Color}}">Verification Log</h2>
        <p>User Email: {{.Email}}</p>
        <p>Task ID: {{.TaskID}}</p>
        <p>Status: <strong>{{.Status}}</strong></p>
        <p>Timestamp: {{.Timestamp}}</p>
      </div>
    `

const subscriberAlertHTML = `
                <div style="font-family: sans-serif; padding: 20px; background: #121212; color: white;">
                    <h2 style="color: #00f2ff;">New Subscriber Logged</h2>
                    <p>A user has signed up for the "Stay Involved" list via the Media page.</p>
                    <p><strong>Email:</strong> {{.Email}}</p>
                    <p><strong>Timestamp:</strong> {{.Timestamp}}</p>
                </div>
            `

const welcomeHTML = `
                <div style="font-family: sans-serif; padding: 40px; background: #121212; color: #e0e0e0; max-width: 600px; margin: 0 auto; border: 1px solid #333;">
                    <h1 style="color: #ffffff; text-align: center;">Mission Acknowledged</h1>
                    <p>Thank you for subscribing to GOTX Media. You are now on the list to receive our latest News Media &amp; Public Communication updates.</p>
                    <p>We're hard at work building out our services and can't wait to share our progress with you.</p>
                    <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #333; font-size: 12px; color: #666; text-align: center;">
                        &copy; 2026 GOTX Connect Ltd. Reading, RG2.
                    </div>
                </div>
            `

var (
	inquiryTmpl         = template.Must(template.New("inquiry").Parse(inquiryHTML))
	verificationTmpl    = template.Must(template.New("verification").Parse(verificationHTML))
	subscriberAlertTmpl = template.Must(template.New("subscriberAlert").Parse(subscriberAlertHTML))
)

//RenderInquiry renders the operator notification of a new inquiry
func RenderInquiry(taskId string, fields model.FormFields) (string, error) {
	return render(inquiryTmpl, struct {
		TaskID string
		Fields model.FormFields
	}{TaskID: taskId, Fields: fields})
}

//RenderVerification renders the operator alert of a verification status change
func RenderVerification(email, taskId, status string, at time.Time) (string, error) {
	color := "#ff0000"
	if status == model.CONFIRMED {
		color = "#00ff00"
	}
	return render(verificationTmpl, struct {
		Email     string
		TaskID    string
		Status    string
		Timestamp string
		Color     string
	}{Email: email, TaskID: taskId, Status: status, Timestamp: at.Format(time.RFC3339), Color: color})
}

//RenderSubscriberAlert renders the operator alert of a newsletter sign-up
func RenderSubscriberAlert(email string, at time.Time) (string, error) {
	return render(subscriberAlertTmpl, struct {
		Email     string
		Timestamp string
	}{Email: email, Timestamp: at.Format(time.RFC3339)})
}

//WelcomeBody returns the static welcome email sent to new subscribers
func WelcomeBody() string {
	return welcomeHTML
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
