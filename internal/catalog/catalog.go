// Package catalog holds the static configuration the ranking pipeline runs
// against: the vehicle specs, the gas station directory and the fallback
// price table. All of it is fixed at compile time and never mutated.
package catalog

import "github.com/rubiojr/gascost/pkg/geo"

// DefaultFallbackPrice is the per-gallon price assumed when a live price
// lookup fails and the station has no entry in the fallback table.
const DefaultFallbackPrice = 10.00

// Vehicle describes the fuel economy and tank size of a selectable vehicle.
type Vehicle struct {
	Name        string
	MPG         float64
	TankGallons float64
}

// Station is one entry of the station directory. GasBuddyID is the station
// identifier used for live price lookups.
type Station struct {
	Name       string
	GasBuddyID string
	Address    string
	Coords     geo.Coordinates
}

var vehicles = map[string]Vehicle{
	"audi": {Name: "2012 Audi A6", MPG: 22, TankGallons: 19.8},
	"bmw":  {Name: "2022 BMW 425i", MPG: 28, TankGallons: 15.6},
}

// Slice, not map: ranking ties are broken by directory order.
var stations = []Station{
	{Name: "WAWA", GasBuddyID: "202167", Address: "5600 State Rte 100, Palm Coast, FL 32164", Coords: geo.Coordinates{Lat: 29.4763476, Lng: -81.2089708}},
	{Name: "RaceTrac", GasBuddyID: "192722", Address: "5893 100 Blvd E, Palm Coast, FL 32164", Coords: geo.Coordinates{Lat: 29.4756055, Lng: -81.2258978}},
	{Name: "BJ's", GasBuddyID: "211766", Address: "5857 State Rte 100, Palm Coast, FL 32164", Coords: geo.Coordinates{Lat: 29.4734432, Lng: -81.1975036}},
	{Name: "Buc-ee's", GasBuddyID: "203711", Address: "2330 Gateway N Dr, Daytona Beach, FL 32117", Coords: geo.Coordinates{Lat: 29.223603, Lng: -81.1034819}},
	{Name: "Sam's Club", GasBuddyID: "199941", Address: "1460 Cornerstone Blvd, Daytona Beach, FL 32117", Coords: geo.Coordinates{Lat: 29.220019, Lng: -81.1010839}},
	{Name: "Love's US-1", GasBuddyID: "46108", Address: "1657 US-1, Ormond Beach, FL 32174", Coords: geo.Coordinates{Lat: 29.3394279, Lng: -81.1375444}},
	{Name: "Bunnel Gas", GasBuddyID: "87397", Address: "6700 US-1, Bunnell, FL 32110", Coords: geo.Coordinates{Lat: 29.3905715, Lng: -81.1898412}},
	{Name: "Shell (2557 Moody Blvd)", GasBuddyID: "45616", Address: "2557 Moody Blvd, Flagler Beach, FL 32136", Coords: geo.Coordinates{Lat: 29.4761307, Lng: -81.1516109}},
	{Name: "Shell (1900 LPGA)", GasBuddyID: "45556", Address: "1900 LPGA Blvd, Daytona Beach, FL 32117", Coords: geo.Coordinates{Lat: 29.2272291, Lng: -81.0899191}},
	{Name: "Shell (5 Old Kings Rd, Palm Coast)", GasBuddyID: "46134", Address: "5 Old Kings Rd, Palm Coast, FL 32137", Coords: geo.Coordinates{Lat: 29.5164252, Lng: -81.2508059}},
	{Name: "Buc-ee's St. Augustine", GasBuddyID: "203473", Address: "200 World Commerce Pkwy, St. Augustine, FL 32092", Coords: geo.Coordinates{Lat: 29.983727, Lng: -81.4666229}},
	{Name: "Costco St. Augustine", GasBuddyID: "207162", Address: "215 World Commerce Pkwy, St. Augustine, FL 32092", Coords: geo.Coordinates{Lat: 29.9815517, Lng: -81.4660102}},
	{Name: "Costco Daytona", GasBuddyID: "210257", Address: "150 Pit Rd, Daytona Beach, FL 32114", Coords: geo.Coordinates{Lat: 29.1930838, Lng: -81.0754555}},
}

var fallbackPrices = map[string]float64{
	"202167": 10.00, // WAWA
	"192722": 10.00, // RaceTrac
	"211766": 10.00, // BJ's
	"210257": 10.00, // Costco Daytona
	"203711": 10.00, // Buc-ee's
	"199941": 10.00, // Sam's Club
	"46108":  10.00, // Love's US-1
	"87397":  10.00, // Bunnel Gas
	"45616":  10.00, // Shell (Moody)
	"45556":  10.00, // Shell (LPGA)
	"46134":  10.00, // Shell (Old Kings)
	"203473": 10.00, // Buc-ee's St. Augustine
	"207162": 10.00, // Costco St. Augustine
}

// Stations returns the station directory in ranking order. Callers must not
// modify the returned slice.
func Stations() []Station {
	return stations
}

// VehicleByKey returns the vehicle specs for a form/CLI selector such as
// "audi" or "bmw".
func VehicleByKey(key string) (Vehicle, bool) {
	v, ok := vehicles[key]
	return v, ok
}

// VehicleKeys returns the available vehicle selectors in a fixed order
// suitable for rendering a form.
func VehicleKeys() []string {
	return []string{"audi", "bmw"}
}

// FallbackPrice returns the placeholder per-gallon price for a station id,
// or DefaultFallbackPrice when the id is unknown.
func FallbackPrice(stationID string) float64 {
	if price, ok := fallbackPrices[stationID]; ok {
		return price
	}
	return DefaultFallbackPrice
}
