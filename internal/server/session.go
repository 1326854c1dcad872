package server

import "github.com/google/uuid"

// GeneratePlayerID creates a unique player identity. Clients keep it in
// local storage so a dropped connection can rejoin the same seat.
func GeneratePlayerID() string {
	return uuid.NewString()
}
