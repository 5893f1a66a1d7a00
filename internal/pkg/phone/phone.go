package phone

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalid = errors.New("invalid phone number")

// DefaultRegion is used when the customer omits the country prefix.
const DefaultRegion = "BR"

// Normalize validates a customer phone and returns it in E.164 form.
func Normalize(raw string) (string, error) {
	parsed, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", ErrInvalid
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalid
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
