package utils

const (
	// Helper pricing: per-floor charge band plus a flat amount per helper.
	HelperFloorChargeMin = 2.00
	HelperFloorChargeMax = 5.00
	HelperFlatCharge     = 10.00

	// Flat charge applied when the route touches a congestion zone.
	CongestionCharge = 15.00

	// Night surcharge band.
	NightSurchargeMin = 3.50
	NightSurchargeMax = 5.00

	// Share of each role's component sum paid out to the driver; the platform
	// retains the remainder.
	DriverShare = 0.80

	OTPLength = 6
)
