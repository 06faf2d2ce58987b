package entities

// Accessory is one item of a car's feature list.
type Accessory struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Rent is the pricing cadence and price of a car.
type Rent struct {
	Period string `json:"period"`
	Price  int64  `json:"price" validate:"gt=0"`
}

// CarDTO is the car representation exchanged with the catalog API.
type CarDTO struct {
	ID          string      `json:"id"`
	Brand       string      `json:"brand" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Rent        Rent        `json:"rent"`
	Accessories []Accessory `json:"accessories"`
	Photos      []string    `json:"photos"`
}
