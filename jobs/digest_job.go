package jobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	config "github.com/lataberna/reservations-backend/configs"
	"github.com/lataberna/reservations-backend/notifications"
	"github.com/lataberna/reservations-backend/services"
	"github.com/lataberna/reservations-backend/state"
)

// SendDailyDigest emails the restaurant a summary of today's bookings. It
// runs from cron every morning; a send failure is logged and dropped.
func SendDailyDigest(app *state.App, mail *notifications.EmailService) {
	log.Println("Running job: SendDailyDigest...")

	restaurantEmail := config.Config("RESTAURANT_EMAIL")
	if restaurantEmail == "" {
		log.Println("⚠️ RESTAURANT_EMAIL not set, skipping daily digest")
		return
	}

	today := time.Now().Format("2006-01-02")
	cfg, reservations := app.Snapshot()
	stats := services.ComputeDayStats(today, reservations, cfg)

	var rows strings.Builder
	for _, r := range reservations {
		if r.Date != today {
			continue
		}
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			r.Time, r.Name, r.Phone, string(r.Guests), r.Status,
		))
	}
	if rows.Len() == 0 {
		rows.WriteString(`<tr><td colspan="5">No reservations yet</td></tr>`)
	}

	body := fmt.Sprintf(
		`<h1>Reservations for %s</h1>
<p>%d reservations, %d guests (%d%% of capacity), %d confirmed, %d large groups.</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Time</th><th>Name</th><th>Phone</th><th>Guests</th><th>Status</th></tr>
%s
</table>`,
		today,
		stats.TotalReservations,
		stats.TotalGuests,
		stats.CapacityUsed,
		stats.ConfirmedReservations,
		stats.LargeGroups,
		rows.String(),
	)

	subject := fmt.Sprintf("📋 Daily Reservations Digest - %s", today)
	if err := mail.Send("", restaurantEmail, subject, body); err != nil {
		log.Printf("🔥 Failed to send daily digest: %v", err)
		return
	}
	log.Println("✅ Daily digest sent")
}
