package interfaces

import "time"

// ITokenIssuer signs access tokens for the studio admin.
type ITokenIssuer interface {
	Issue(subject string) (token string, expiresAt time.Time, err error)
}
