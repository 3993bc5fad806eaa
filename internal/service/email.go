package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendApplicationReceivedNotification(ctx context.Context, managerEmail, applicantName, propertyName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has applied to rent %s. Review the application in your dashboard.\n\nBest regards,\nThe Rentora Team", applicantName, propertyName)
	return s.send(managerEmail, fmt.Sprintf("New application for %s", propertyName), body)
}

func (s *emailService) SendApplicationDecisionNotification(ctx context.Context, applicantEmail, propertyName string, approved bool, notes string) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	body := fmt.Sprintf("Hello,\n\nYour application for %s has been %s.", propertyName, decision)
	if notes != "" {
		body += fmt.Sprintf("\n\nNotes: %s", notes)
	}
	body += "\n\nBest regards,\nThe Rentora Team"
	return s.send(applicantEmail, fmt.Sprintf("Application %s - %s", decision, propertyName), body)
}

func (s *emailService) SendLeaseSentNotification(ctx context.Context, tenantEmail, managerName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has sent you a lease agreement. Please review and sign it in the app.\n\nBest regards,\nThe Rentora Team", managerName)
	return s.send(tenantEmail, "Your lease agreement is ready", body)
}

func (s *emailService) SendLeaseSignedNotification(ctx context.Context, managerEmail, tenantName string) error {
	body := fmt.Sprintf("Hello,\n\n%s has signed the lease agreement. Please acknowledge it to complete the process.\n\nBest regards,\nThe Rentora Team", tenantName)
	return s.send(managerEmail, "Lease signed by tenant", body)
}

func (s *emailService) SendMaintenanceAssignmentNotification(ctx context.Context, caretakerEmail, propertyName, description, urgency string) error {
	body := fmt.Sprintf("Hello,\n\nYou have been assigned a maintenance request at %s (urgency: %s):\n\n%s\n\nBest regards,\nThe Rentora Team", propertyName, urgency, description)
	return s.send(caretakerEmail, fmt.Sprintf("Maintenance assignment - %s", propertyName), body)
}

func (s *emailService) SendMaintenanceEscalationNotification(ctx context.Context, managerEmail, propertyName, description string, pendingDays int) error {
	body := fmt.Sprintf("Hello,\n\nA maintenance request at %s has been pending for %d days without a caretaker:\n\n%s\n\nBest regards,\nThe Rentora Team", propertyName, pendingDays, description)
	return s.send(managerEmail, fmt.Sprintf("Unassigned maintenance request - %s", propertyName), body)
}
