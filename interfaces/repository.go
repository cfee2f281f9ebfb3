package interfaces

import (
	"context"

	"crmviewer/domain"
)

// Repository is the data-access layer behind the screen. Every method returns
// a flat, display-ready list of strings or a typed service.MyError.
//
// Implemented by service.Repository.
//
//go:generate moq -stub -out mock/repository.go -pkg mock . Repository
type Repository interface {
	// RecordNames runs a SOQL query and returns the Name field of every record, in backend order.
	RecordNames(ctx context.Context, soql string) ([]string, error)
	// ContactNames returns the names of all contacts.
	ContactNames(ctx context.Context) ([]string, error)
	// AccountNames returns the names of all accounts.
	AccountNames(ctx context.Context) ([]string, error)
	// DescribeObjects returns the sorted, deduplicated plural labels of the object types the user can work with.
	DescribeObjects(ctx context.Context) ([]string, error)
}

// SessionManager receives the session produced by the host login flow and
// keeps the ClientProvider in sync with it.
//
// Implemented by service.SessionManager.
//
//go:generate moq -stub -out mock/session_manager.go -pkg mock . SessionManager
type SessionManager interface {
	// Login stores session and makes a client for it available.
	Login(ctx context.Context, session domain.Session) error
	// Logout forgets the client and the stored session.
	Logout(ctx context.Context) error
	// Current returns the active session or entity_not_found.
	Current(ctx context.Context) (domain.Session, error)
}
