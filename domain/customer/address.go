package customer

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip string, city string) (Address, error) {
	a := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}

	if err := a.validate(); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) validate() error {
	if a.street == "" {
		return ErrStreetRequired
	}

	if a.number <= 0 {
		return ErrNumberRequired
	}

	if a.zip == "" {
		return ErrZipRequired
	}

	if a.city == "" {
		return ErrCityRequired
	}

	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Street string `json:"street"`
		Number int    `json:"number"`
		Zip    string `json:"zip"`
		City   string `json:"city"`
	}{a.street, a.number, a.zip, a.city})
}
