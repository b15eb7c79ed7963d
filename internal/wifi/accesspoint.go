// Package wifi models the simulated access points the player hunts for:
// their reach, how fast they transfer at a given distance, and what it
// takes to join them.
package wifi

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomz197/wifihunt/internal/physics"
)

// Sentinel errors returned when joining a network fails.
var (
	ErrInsufficientFunds = errors.New("wifi: not enough money to afford this network")
	ErrWrongPassword     = errors.New("wifi: incorrect password")
)

// Encryption is the security scheme an access point advertises.
type Encryption int

const (
	EncryptionNone Encryption = iota
	EncryptionWEP
	EncryptionWPA
	EncryptionWPA2
)

// String returns the name shown in password prompts.
func (e Encryption) String() string {
	switch e {
	case EncryptionWEP:
		return "WEP"
	case EncryptionWPA:
		return "WPA"
	case EncryptionWPA2:
		return "WPA2"
	default:
		return "open"
	}
}

// Direction selects which half of a link a speed applies to.
type Direction int

const (
	Download Direction = iota
	Upload
)

// String returns "download" or "upload".
func (d Direction) String() string {
	if d == Upload {
		return "upload"
	}
	return "download"
}

// Payer is charged when the player buys access to a paid network.
type Payer interface {
	Balance() int
	Deduct(amount int)
}

// AccessPoint is a simulated Wi-Fi source. Only Cost and the password
// change after construction: both are cleared once the player has paid or
// authenticated.
type AccessPoint struct {
	SSID       string
	Position   physics.Point
	Range      float64 // Broadcast radius in plane units
	Encryption Encryption
	Hint       string // Shown alongside the password prompt, may be empty
	Cost       int    // 0 for free networks
	Download   SpeedProfile
	Upload     SpeedProfile

	passwordHash []byte
}

// SetPassword protects the access point with the given scheme and password.
// Only the bcrypt hash of the password is kept.
func (ap *AccessPoint) SetPassword(enc Encryption, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash password for %q: %w", ap.SSID, err)
	}
	ap.Encryption = enc
	ap.passwordHash = hash
	return nil
}

// HasPassword reports whether joining requires a password.
func (ap *AccessPoint) HasPassword() bool {
	return len(ap.passwordHash) > 0
}

// IsPaid reports whether joining still costs money.
func (ap *AccessPoint) IsPaid() bool {
	return ap.Cost > 0
}

// InRange reports whether p is within the broadcast radius (edge inclusive).
func (ap *AccessPoint) InRange(p physics.Point) bool {
	return physics.PointInCircle(p.X, p.Y, ap.Position.X, ap.Position.Y, ap.Range)
}

// SpeedAt returns the transfer speed in MiB/s available at p. It is zero
// outside the broadcast radius.
func (ap *AccessPoint) SpeedAt(p physics.Point, dir Direction) float64 {
	if !ap.InRange(p) {
		return 0
	}
	profile := ap.Download
	if dir == Upload {
		profile = ap.Upload
	}
	return profile.At(ap.Position.DistanceTo(p), ap.Range)
}

// Purchase charges the payer for a paid network and marks it as paid.
// Free networks succeed without touching the payer.
func (ap *AccessPoint) Purchase(p Payer) error {
	if !ap.IsPaid() {
		return nil
	}
	if p.Balance() < ap.Cost {
		return ErrInsufficientFunds
	}
	p.Deduct(ap.Cost)
	ap.Cost = 0
	return nil
}

// Authenticate checks attempt against the stored password. On success the
// password is cleared so later reconnects skip the prompt.
func (ap *AccessPoint) Authenticate(attempt string) error {
	if !ap.HasPassword() {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(ap.passwordHash, []byte(attempt)); err != nil {
		return ErrWrongPassword
	}
	ap.passwordHash = nil
	return nil
}

// Available returns the access points in range of p, in catalog order.
func Available(aps []*AccessPoint, p physics.Point) []*AccessPoint {
	var inRange []*AccessPoint
	for _, ap := range aps {
		if ap.InRange(p) {
			inRange = append(inRange, ap)
		}
	}
	return inRange
}
