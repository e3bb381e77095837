package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/lataberna/reservations-backend/models"
)

// ReservationEmailData feeds the two booking emails: the notice to the
// restaurant and the confirmation to the customer.
type ReservationEmailData struct {
	Name            string
	Phone           string
	Email           string
	GuestText       string
	LargeGroup      bool
	FormattedDate   string
	Time            string
	AdminURL        string
	RestaurantEmail string
	SentAt          string
}

// NewReservationEmailData formats a reservation for email rendering.
func NewReservationEmailData(r models.Reservation, baseURL, restaurantEmail string) ReservationEmailData {
	formattedDate := r.Date
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		formattedDate = t.Format("Monday, January 2, 2006")
	}

	guestText := fmt.Sprintf("%d guests", r.Guests.Count())
	if r.Guests.Count() == 1 {
		guestText = "1 guest"
	}
	if r.Guests.IsLargeGroup() {
		guestText = "Large group (10+ guests)"
	}

	return ReservationEmailData{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		GuestText:       guestText,
		LargeGroup:      r.Guests.IsLargeGroup(),
		FormattedDate:   formattedDate,
		Time:            r.Time,
		AdminURL:        baseURL + "/admin",
		RestaurantEmail: restaurantEmail,
		SentAt:          time.Now().Format("2006-01-02 15:04"),
	}
}

func RestaurantEmailSubject(d ReservationEmailData) string {
	subject := "🍽️ New Reservation - " + d.Name
	if d.LargeGroup {
		subject += " [LARGE GROUP]"
	}
	return subject
}

func CustomerEmailSubject(d ReservationEmailData) string {
	return fmt.Sprintf("✅ Reservation Confirmed - %s at %s", d.FormattedDate, d.Time)
}

func RestaurantEmailBody(d ReservationEmailData) (string, error) {
	return render(restaurantTmpl, d)
}

func CustomerEmailBody(d ReservationEmailData) (string, error) {
	return render(customerTmpl, d)
}

func render(tmpl *template.Template, d ReservationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var restaurantTmpl = template.Must(template.New("restaurant").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #8B6F47, #D4A574); color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
    .large-group-badge { background: #ff6b6b; color: white; padding: 8px 16px; border-radius: 20px; display: inline-block; margin-top: 10px; font-weight: bold; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-box { background: white; border-left: 4px solid #D4A574; padding: 15px; margin: 15px 0; border-radius: 5px; }
    .info-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: #8B6F47; }
    .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 5px; }
    .admin-link { background: #8B6F47; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block; margin-top: 20px; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>🍽️ New Reservation Received</h1>
    {{if .LargeGroup}}<div class="large-group-badge">⚠️ LARGE GROUP (10+)</div>{{end}}
  </div>
  <div class="content">
    <h2>Reservation Details</h2>
    <div class="info-box">
      <div class="info-row"><span class="label">📅 Date:</span> <span>{{.FormattedDate}}</span></div>
      <div class="info-row"><span class="label">⏰ Time:</span> <span>{{.Time}}</span></div>
      <div class="info-row"><span class="label">👥 Guests:</span> <span>{{.GuestText}}</span></div>
    </div>
    <h3>Customer Details</h3>
    <div class="info-box">
      <div class="info-row"><span class="label">👤 Name:</span> <span>{{.Name}}</span></div>
      <div class="info-row"><span class="label">📞 Phone:</span> <span>{{.Phone}}</span></div>
      <div class="info-row"><span class="label">📧 Email:</span> <span>{{.Email}}</span></div>
    </div>
    <div class="warning">
      <strong>⚠️ Reminders:</strong>
      <ul>
        <li>The customer should arrive 5 minutes before the reserved time</li>
        <li>Changes or cancellations require 4 hours notice</li>
        <li>If the customer is more than 10 minutes late, the table may be given away</li>
      </ul>
    </div>
    <div style="text-align: center;">
      <a href="{{.AdminURL}}" class="admin-link">Open Admin Panel</a>
    </div>
  </div>
  <div class="footer">
    <p>This email was generated automatically by the reservation system</p>
    <p>Sent at: {{.SentAt}}</p>
  </div>
</body>
</html>`))

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: linear-gradient(135deg, #8B6F47, #D4A574); color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .success-icon { text-align: center; font-size: 48px; margin: 20px 0; }
    .info-box { background: white; border-left: 4px solid #5B8C5A; padding: 15px; margin: 15px 0; border-radius: 5px; }
    .info-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #eee; }
    .label { font-weight: bold; color: #8B6F47; }
    .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 5px; }
    .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>Reservation Confirmed!</h1>
  </div>
  <div class="content">
    <div class="success-icon">✅</div>
    <p>Hi <strong>{{.Name}}</strong>,</p>
    <p>Your reservation has been received. We look forward to seeing you.</p>
    <h3>Your Reservation</h3>
    <div class="info-box">
      <div class="info-row"><span class="label">📅 Date:</span> <span>{{.FormattedDate}}</span></div>
      <div class="info-row"><span class="label">⏰ Time:</span> <span>{{.Time}}</span></div>
      <div class="info-row"><span class="label">👥 Guests:</span> <span>{{.GuestText}}</span></div>
    </div>
    <div class="warning">
      <strong>⚠️ Please read:</strong>
      <ul>
        <li><strong>Arrive 5 minutes early</strong></li>
        <li>For <strong>changes or cancellations</strong>, let us know <strong>4 hours in advance</strong></li>
        <li>If you are <strong>more than 10 minutes late</strong>, the table may be given to other customers</li>
      </ul>
    </div>
    <p>Need to make a change? Contact us at {{.RestaurantEmail}}</p>
    <p style="text-align: center; font-size: 18px;"><strong>See you soon! 🍽️</strong></p>
  </div>
  <div class="footer">
    <p>Thank you for choosing us</p>
  </div>
</body>
</html>`))
