package wifi

import "github.com/tomz197/wifihunt/internal/physics"

// protected describes a password to set on a catalog entry.
type protected struct {
	enc      Encryption
	password string
}

type catalogEntry struct {
	ap   AccessPoint
	lock *protected
}

var defaultEntries = []catalogEntry{
	{ap: AccessPoint{
		SSID:     "FreePublicWiFi",
		Position: physics.Point{X: 0, Y: 40},
		Range:    30,
		Download: SpeedProfile{Max: 2, Falloff: Linear},
		Upload:   SpeedProfile{Max: 0.5, Falloff: Linear},
	}},
	{ap: AccessPoint{
		SSID:     "CoffeeShop_Guest",
		Position: physics.Point{X: -120, Y: 90},
		Range:    45,
		Cost:     50,
		Download: SpeedProfile{Max: 8, Falloff: Quadratic},
		Upload:   SpeedProfile{Max: 3, Falloff: Quadratic},
	}},
	{ap: AccessPoint{
		SSID:     "NETGEAR42",
		Position: physics.Point{X: 150, Y: 160},
		Range:    60,
		Hint:     "The router sticker reads: admin1234",
		Download: SpeedProfile{Max: 12, Falloff: Linear},
		Upload:   SpeedProfile{Max: 6, Falloff: Linear},
	}, lock: &protected{enc: EncryptionWPA2, password: "admin1234"}},
	{ap: AccessPoint{
		SSID:     "Library-Public",
		Position: physics.Point{X: -40, Y: -150},
		Range:    70,
		Download: SpeedProfile{Max: 4, Falloff: Flat},
		Upload:   SpeedProfile{Max: 4, Falloff: Flat},
	}},
	{ap: AccessPoint{
		SSID:     "HotelLobby",
		Position: physics.Point{X: 260, Y: -60},
		Range:    50,
		Cost:     150,
		Hint:     "A sign at the front desk says: welcome",
		Download: SpeedProfile{Max: 16, Falloff: Quadratic},
		Upload:   SpeedProfile{Max: 8, Falloff: Quadratic},
	}, lock: &protected{enc: EncryptionWPA, password: "welcome"}},
	{ap: AccessPoint{
		SSID:     "xfinitywifi",
		Position: physics.Point{X: -260, Y: -220},
		Range:    80,
		Cost:     300,
		Download: SpeedProfile{Max: 25, Falloff: Quadratic},
		Upload:   SpeedProfile{Max: 12, Falloff: Quadratic},
	}},
	{ap: AccessPoint{
		SSID:     "FBI Surveillance Van",
		Position: physics.Point{X: 320, Y: 300},
		Range:    40,
		Hint:     "Somebody scrawled on the van door: letmein",
		Download: SpeedProfile{Max: 30, Falloff: Linear},
		Upload:   SpeedProfile{Max: 20, Falloff: Linear},
	}, lock: &protected{enc: EncryptionWEP, password: "letmein"}},
	{ap: AccessPoint{
		SSID:     "Airport_Free",
		Position: physics.Point{X: -400, Y: 380},
		Range:    120,
		Download: SpeedProfile{Max: 6, Falloff: Linear},
		Upload:   SpeedProfile{Max: 2, Falloff: Linear},
	}},
}

// DefaultCatalog returns a fresh copy of the built-in access points.
// Each call returns independent values, so purchases and logins made in one
// game never leak into another.
func DefaultCatalog() []*AccessPoint {
	aps := make([]*AccessPoint, 0, len(defaultEntries))
	for _, entry := range defaultEntries {
		ap := entry.ap
		if entry.lock != nil {
			if err := ap.SetPassword(entry.lock.enc, entry.lock.password); err != nil {
				panic(err)
			}
		}
		aps = append(aps, &ap)
	}
	return aps
}
