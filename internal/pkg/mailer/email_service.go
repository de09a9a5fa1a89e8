package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendApprovalNotice(toEmail, code string) error
	SendRejectionNotice(toEmail, reason string) error
	SendPayoutReceipt(toEmail, amount, reference string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendApprovalNotice(toEmail, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Ambassador Application Was Approved")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to the Ambassador Program!</h2>
			<p>Your application has been approved. Your referral code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>Share it with your audience to start earning commissions.</p>
			<p>Track your referrals and earnings on your <a href="%s/ambassador">dashboard</a>.</p>
		</div>
	`, code, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send approval notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Approval notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendRejectionNotice(toEmail, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Update on Your Ambassador Application")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Ambassador Application Update</h2>
			<p>Thank you for applying to the ambassador program. Unfortunately we are not able to approve your application at this time.</p>
			<p>Reason: %s</p>
			<p>You are welcome to apply again in the future.</p>
		</div>
	`, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send rejection notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Rejection notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendPayoutReceipt(toEmail, amount, reference string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Commission Payout Has Been Sent")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Payout Sent</h2>
			<p>Your commission payout of <strong>%s</strong> has been processed.</p>
			<p>Payment reference: %s</p>
			<p>See the full breakdown on your <a href="%s/ambassador">dashboard</a>.</p>
		</div>
	`, amount, reference, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send payout receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Payout receipt sent to %s\n", toEmail)
	return nil
}
