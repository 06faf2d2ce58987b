// Package accessory maps car accessory types to the icon shown next to them.
package accessory

// Icon is the name of an icon asset.
type Icon string

const (
	SpeedIcon        Icon = "speed.svg"
	AccelerationIcon Icon = "acceleration.svg"
	ForceIcon        Icon = "force.svg"
	GasolineIcon     Icon = "gasoline.svg"
	EnergyIcon       Icon = "energy.svg"
	HybridIcon       Icon = "hybrid.svg"
	ExchangeIcon     Icon = "exchange.svg"
	PeopleIcon       Icon = "people.svg"
	CarIcon          Icon = "car.svg"
)

var icons = map[string]Icon{
	"speed":            SpeedIcon,
	"acceleration":     AccelerationIcon,
	"turning_diameter": ForceIcon,
	"gasoline_motor":   GasolineIcon,
	"electric_motor":   EnergyIcon,
	"hybrid_motor":     HybridIcon,
	"exchange":         ExchangeIcon,
	"seats":            PeopleIcon,
}

// IconFor returns the icon of an accessory type, CarIcon for unknown types.
func IconFor(accessoryType string) Icon {
	if icon, ok := icons[accessoryType]; ok {
		return icon
	}
	return CarIcon
}

// Known reports whether accessoryType has a dedicated icon.
func Known(accessoryType string) bool {
	_, ok := icons[accessoryType]
	return ok
}
