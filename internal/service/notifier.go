package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/500AN/rental-system/internal/domain"
	"github.com/500AN/rental-system/internal/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type notifier struct {
	sendgridKey  string
	fromEmail    string
	fromName     string
	adminEmail   string
	twilioClient *twilio.RestClient
	twilioFrom   string
}

// NewNotifier builds the notification dispatcher. Either channel may be left
// unconfigured (empty key/SID); unconfigured channels are skipped silently.
func NewNotifier(sendgridKey, fromEmail, fromName, adminEmail, twilioSID, twilioToken, twilioFrom string) Notifier {
	n := &notifier{
		sendgridKey: sendgridKey,
		fromEmail:   fromEmail,
		fromName:    fromName,
		adminEmail:  adminEmail,
		twilioFrom:  twilioFrom,
	}
	if twilioSID != "" && twilioToken != "" {
		n.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: twilioSID,
			Password: twilioToken,
		})
	}
	return n
}

func (n *notifier) SendBookingNotification(ctx context.Context, event BookingEvent) error {
	body := n.bookingMessage(event)
	subject := n.bookingSubject(event)

	var email, name, phone string
	if event.Customer != nil {
		name = event.Customer.CustomerName
		phone = event.Customer.PhoneNumber
		if event.Customer.Email != nil {
			email = *event.Customer.Email
		}
	}
	if err := n.sendEmail(email, name, subject, body); err != nil {
		return err
	}
	return n.sendWhatsApp(phone, body)
}

func (n *notifier) SendWashingAlert(ctx context.Context, items []domain.WashingItem) error {
	if len(items) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("The following items have been in washing for too long:\n\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "- %s x %d (sent %s, %d days ago)\n",
			it.ProductName, it.Quantity, it.DateSent.Format("2006-01-02"), it.DaysInWashing)
	}
	return n.sendEmail(n.adminEmail, "", fmt.Sprintf("Washing overdue: %d item(s)", len(items)), sb.String())
}

func (n *notifier) SendReturnReminder(ctx context.Context, booking *domain.Booking) error {
	body := fmt.Sprintf("Dear %s,\n\nThis is a reminder that your rental %s is due for return today (%s).\n\nThank you!",
		booking.CustomerName, booking.BookingNumber, booking.RentalEndDate)
	if err := n.sendEmail("", booking.CustomerName, fmt.Sprintf("Return Reminder - %s", booking.BookingNumber), body); err != nil {
		return err
	}
	return n.sendWhatsApp(booking.PhoneNumber, body)
}

func (n *notifier) bookingSubject(event BookingEvent) string {
	switch event.Type {
	case EventPickup:
		return fmt.Sprintf("Pickup Confirmed - %s", event.Booking.BookingNumber)
	case EventReturn:
		return fmt.Sprintf("Return Confirmed - %s", event.Booking.BookingNumber)
	default:
		return fmt.Sprintf("Booking Confirmed - %s", event.Booking.BookingNumber)
	}
}

func (n *notifier) bookingMessage(event BookingEvent) string {
	b := event.Booking
	var sb strings.Builder

	name := b.CustomerName
	if event.Customer != nil {
		name = event.Customer.CustomerName
	}
	fmt.Fprintf(&sb, "Dear %s,\n\n", name)

	switch event.Type {
	case EventPickup:
		sb.WriteString("Your rental items have been picked up successfully.\n\n")
	case EventReturn:
		sb.WriteString("Thank you for returning the rental items.\n\n")
	default:
		sb.WriteString("Your booking has been confirmed.\n\n")
	}

	fmt.Fprintf(&sb, "Booking Number: %s\n", b.BookingNumber)
	fmt.Fprintf(&sb, "Rental Period: %s to %s\n", b.RentalStartDate, b.RentalEndDate)

	if len(b.Items) > 0 {
		sb.WriteString("\nItems:\n")
		for i, it := range b.Items {
			fmt.Fprintf(&sb, "- %s x %d @ %s/day = %s",
				it.ProductName, it.Quantity, it.AgreedRentalPrice.String(), it.ItemTotalAmount.String())
			if event.Type == EventReturn && i < len(event.ItemsAction) {
				fmt.Fprintf(&sb, " [%s]", event.ItemsAction[i].Action)
			}
			sb.WriteString("\n")
		}
	}

	fmt.Fprintf(&sb, "\nTotal Amount: %s\n", b.TotalAmount.String())
	fmt.Fprintf(&sb, "Advance Paid: %s\n", b.AdvanceAmount.String())
	if event.Type == EventPickup {
		fmt.Fprintf(&sb, "Final Payment: %s\n", b.FinalAmount.String())
		fmt.Fprintf(&sb, "Remaining Balance: %s\n", b.RemainingBalance.String())
		fmt.Fprintf(&sb, "\nPlease return the items by %s\n", b.RentalEndDate)
	}
	sb.WriteString("\nThank you for choosing our service!")
	return sb.String()
}

func (n *notifier) sendEmail(to, toName, subject, body string) error {
	if n.sendgridKey == "" || to == "" {
		logger.Debug("Email channel not configured or recipient missing, skipping", "to", to)
		return nil
	}
	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(n.sendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (n *notifier) sendWhatsApp(phone, body string) error {
	if n.twilioClient == nil || phone == "" {
		logger.Debug("WhatsApp channel not configured or phone missing, skipping", "phone", phone)
		return nil
	}
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom("whatsapp:" + n.twilioFrom)
	params.SetTo("whatsapp:" + phone)
	params.SetBody(body)

	if _, err := n.twilioClient.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	return nil
}
