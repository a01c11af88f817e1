package interfaces

import "time"

// IClock supplies the current time in the studio timezone.
type IClock interface {
	Now() time.Time
}
