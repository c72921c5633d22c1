package domain

// TravelPackage is a bookable trip offering.
type TravelPackage struct {
	ID           string
	Name         string
	Description  string
	Price        float64
	Destination  string
	DurationDays int
	ImageURL     string
}

// PackageDraft is the input for creating a package. Price is a whole amount
// here because that is what the create endpoint accepts.
type PackageDraft struct {
	Name         string
	Description  string
	Destination  string
	Price        int
	DurationDays int
}
