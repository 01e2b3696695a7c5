package usecases

import "context"

// EmailService is the slice of the mailer ticket use cases need.
type EmailService interface {
	SendTicketResolvedEmail(to, ticketNumber, resolution string) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
