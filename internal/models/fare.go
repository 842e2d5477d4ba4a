package models

// Fare is the itemized breakdown embedded on a ride request. It is computed
// once at request creation; role totals are derived from the component sums
// with the platform retaining a fixed 20% of each side.
type Fare struct {
	InitialServiceFee float64 `json:"initial_service_fee" bson:"initial_service_fee"`
	ServiceFee        float64 `json:"service_fee" bson:"service_fee"`
	TimeFare          float64 `json:"time_fare" bson:"time_fare"`
	ItemBasedPricing  float64 `json:"item_based_pricing" bson:"item_based_pricing"`
	HelpersCharge     float64 `json:"helpers_charge" bson:"helpers_charge"`
	CongestionCharge  float64 `json:"congestion_charge" bson:"congestion_charge"`
	Surcharge         float64 `json:"surcharge" bson:"surcharge"`

	// CarBaseFare is the car-side component of a combined ride-and-move job;
	// zero when the request has no car role.
	CarBaseFare float64 `json:"car_base_fare" bson:"car_base_fare"`

	VehicleDriverTotal float64 `json:"vehicle_driver_total" bson:"vehicle_driver_total"`
	CarDriverTotal     float64 `json:"car_driver_total" bson:"car_driver_total"`
	Total              float64 `json:"total" bson:"total"`
}

// VehicleSideSum is the sum of the cargo-role components.
func (f *Fare) VehicleSideSum() float64 {
	return f.InitialServiceFee + f.ServiceFee + f.TimeFare + f.ItemBasedPricing +
		f.HelpersCharge + f.CongestionCharge + f.Surcharge
}

// CarSideSum is the sum of the passenger-role components.
func (f *Fare) CarSideSum() float64 {
	return f.CarBaseFare
}
