package catalog

import (
	"fmt"

	"rentx/internal/accessory"
	"rentx/internal/entities"
	"rentx/internal/navigation"
)

type AccessoryView struct {
	Name string
	Icon accessory.Icon
}

// CarDetails shows one car before its rental period is picked.
type CarDetails struct {
	Car         entities.CarDTO
	Accessories []AccessoryView

	nav navigation.Navigator
}

func NewCarDetails(params navigation.CarDetailsParams, nav navigation.Navigator) (*CarDetails, error) {
	if err := navigation.Validate(navigation.CarDetails, params); err != nil {
		return nil, err
	}
	views := make([]AccessoryView, 0, len(params.Car.Accessories))
	for _, a := range params.Car.Accessories {
		views = append(views, AccessoryView{Name: a.Name, Icon: accessory.IconFor(a.Type)})
	}
	return &CarDetails{Car: params.Car, Accessories: views, nav: nav}, nil
}

func (c *CarDetails) PriceLabel() string {
	return fmt.Sprintf("R$ %d", c.Car.Rent.Price)
}

func (c *CarDetails) ChooseRentalPeriod() error {
	return c.nav.Navigate(navigation.Scheduling, navigation.SchedulingParams{Car: c.Car})
}

func (c *CarDetails) GoBack() {
	c.nav.GoBack()
}
