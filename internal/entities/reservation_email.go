package entities

type ReservationEmailData struct {
	UserName    string
	ScheduleID  int64
	CarBrand    string
	CarName     string
	StartDate   string
	EndDate     string
	Total       int64
	CurrentYear int
}
