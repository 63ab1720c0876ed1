package entity

// BikeProduct is the vehicle model a booking refers to. Its price is one
// half of the completion total (see usecase.CostService).
type BikeProduct struct {
	Base
	BikeName  string  `db:"bike_name"`
	BikeModel string  `db:"bike_model"`
	BikePrice float64 `db:"bike_price"`
}
