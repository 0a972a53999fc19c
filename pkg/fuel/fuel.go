// Package fuel implements the cost model used to compare gas stations: the
// round-trip fuel cost of driving to a station plus the cost of filling the
// car tank and the portable gas cans at that station's price.
package fuel

// GasCansVolume is the total capacity, in gallons, of the portable gas cans
// brought along on a fill-up trip. It is independent of the vehicle.
const GasCansVolume = 7.75

// TravelCost returns the fuel cost of a round trip of distanceMiles each way,
// at pricePerGallon, for a vehicle doing mpg miles per gallon.
func TravelCost(distanceMiles, pricePerGallon, mpg float64) float64 {
	gallonsNeeded := distanceMiles * 2 / mpg
	return gallonsNeeded * pricePerGallon
}

// CarFillCost returns the cost of filling the car tank from empty.
func CarFillCost(pricePerGallon, tankGallons float64) float64 {
	return pricePerGallon * tankGallons
}

// CansFillCost returns the cost of filling the portable gas cans.
func CansFillCost(pricePerGallon, cansGallons float64) float64 {
	return pricePerGallon * cansGallons
}

// CombinedFillCost returns the cost of filling the car tank and the gas cans
// in a single visit.
func CombinedFillCost(pricePerGallon, tankGallons, cansGallons float64) float64 {
	return pricePerGallon * (tankGallons + cansGallons)
}
