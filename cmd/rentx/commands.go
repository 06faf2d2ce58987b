package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"rentx/internal/catalog"
	"rentx/internal/entities"
	"rentx/internal/navigation"
	"rentx/internal/scheduling"
)

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *app) navigator() *navigation.Stack {
	nav := navigation.NewStack(navigation.WithAlertHandler(func(msg string) {
		fmt.Fprintln(a.errOut, "!", msg)
	}))
	_ = nav.Navigate(navigation.Home, nil)
	return nav
}

func (a *app) session() (entities.Session, error) {
	if a.cfg.Token == "" || a.cfg.UserID == 0 {
		return entities.Session{}, errors.New("not logged in: set RENTX_TOKEN and RENTX_USER_ID (see rentx login)")
	}
	return entities.Session{UserID: a.cfg.UserID, Token: a.cfg.Token}, nil
}

func (a *app) cars(ctx context.Context) error {
	home := catalog.LoadHome(ctx, a.api, a.navigator())
	if home.FetchErr != nil {
		return fmt.Errorf("could not load cars: %w", home.FetchErr)
	}
	fmt.Fprintf(a.out, "Total de %d carros\n", home.TotalCars())
	for _, car := range home.Cars {
		fmt.Fprintf(a.out, "%-38s %-12s %-20s %s R$ %d\n", car.ID, car.Brand, car.Name, strings.ToUpper(car.Rent.Period), car.Rent.Price)
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	var req entities.RegisterRequest
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "e-mail")
	fs.StringVar(&req.Phone, "phone", "", "phone in E.164 format, for SMS confirmations")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	user, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "user %d created, now run rentx login\n", user.ID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "e-mail")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	resp, err := a.api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "export RENTX_TOKEN=%s\nexport RENTX_USER_ID=%d\n", resp.Token, resp.UserID)
	return nil
}

// book walks the same screens as the app: car details, calendar, then the
// confirmation screen.
func (a *app) book(ctx context.Context, args []string) error {
	fs := a.newFlagSet("book")
	carID := fs.String("car", "", "car id")
	from := fs.String("from", "", "first day, yyyy-mm-dd")
	to := fs.String("to", "", "last day, yyyy-mm-dd")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *carID == "" || *from == "" {
		return errors.New("book needs -car and -from")
	}
	if *to == "" {
		*to = *from
	}
	session, err := a.session()
	if err != nil {
		return err
	}

	nav := a.navigator()
	car, err := a.api.GetCar(ctx, *carID)
	if err != nil {
		return err
	}
	if err := nav.Navigate(navigation.CarDetails, navigation.CarDetailsParams{Car: *car}); err != nil {
		return err
	}
	details, err := catalog.NewCarDetails(navigation.CarDetailsParams{Car: *car}, nav)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s  %s %s\n", car.Brand, car.Name, car.Rent.Period, details.PriceLabel())
	for _, acc := range details.Accessories {
		fmt.Fprintf(a.out, "  [%s] %s\n", acc.Icon, acc.Name)
	}
	if err := details.ChooseRentalPeriod(); err != nil {
		return err
	}

	calendar, err := scheduling.NewCalendar(ctx, navigation.SchedulingParams{Car: *car}, a.api, nav)
	if err != nil {
		return err
	}
	for _, day := range []string{*from, *to} {
		if err := calendar.Select(day); err != nil {
			return err
		}
	}
	if err := calendar.Confirm(); err != nil {
		return err
	}

	params, ok := nav.Current().Params.(navigation.SchedulingDetailsParams)
	if !ok {
		return fmt.Errorf("unexpected screen %s", nav.Current().Route)
	}
	confirm, err := scheduling.NewDetails(params, session, a.api, nav)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "De %s até %s: %d diárias, total R$ %d\n",
		confirm.Period.Start, confirm.Period.End, len(confirm.Dates), confirm.RentTotal)

	if err := confirm.Confirm(ctx); err != nil {
		return err
	}
	if nav.Current().Route == navigation.SchedulingComplete {
		fmt.Fprintln(a.out, "Carro alugado! Agora você só precisa ir até a concessionária da RENTX pegar o seu automóvel.")
	}
	return nil
}

func (a *app) mine(ctx context.Context) error {
	session, err := a.session()
	if err != nil {
		return err
	}
	myCars := catalog.LoadMyCars(ctx, a.api, session, a.navigator())
	if myCars.FetchErr != nil {
		return fmt.Errorf("could not load your reservations: %w", myCars.FetchErr)
	}
	fmt.Fprintf(a.out, "Você tem %d agendamentos\n", myCars.Total())
	for _, r := range myCars.Reservations {
		line := fmt.Sprintf("#%-5d %s %s  %s - %s  %s", r.ID, r.Car.Brand, r.Car.Name, r.StartDate, r.EndDate, r.Status)
		if r.PaymentStatus != "" {
			line += " (" + r.PaymentStatus + ")"
		}
		if r.CheckoutURL != "" && r.PaymentStatus != "paid" {
			line += " " + r.CheckoutURL
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}
