package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifiers travel as canonical uuid strings in JSON and URLs.

func parseID(kind string, text []byte) (uuid.UUID, error) {
	id, err := uuid.ParseBytes(text)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrIDInvalid, kind)
	}

	return id, nil
}

// ParseID parses a uuid string into any of the identifier types.
func ParseID[T ~[16]byte](kind, s string) (T, error) {
	id, err := parseID(kind, []byte(s))

	return T(id), err
}

func (id TenantID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *TenantID) UnmarshalText(b []byte) error {
	v, err := parseID("tenant id", b)
	*id = TenantID(v)

	return err
}

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error {
	v, err := parseID("user id", b)
	*id = UserID(v)

	return err
}

func (id GalleryID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *GalleryID) UnmarshalText(b []byte) error {
	v, err := parseID("gallery id", b)
	*id = GalleryID(v)

	return err
}

func (id PhotoID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *PhotoID) UnmarshalText(b []byte) error {
	v, err := parseID("photo id", b)
	*id = PhotoID(v)

	return err
}

func (id ProductID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProductID) UnmarshalText(b []byte) error {
	v, err := parseID("product id", b)
	*id = ProductID(v)

	return err
}

func (id OrderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *OrderID) UnmarshalText(b []byte) error {
	v, err := parseID("order id", b)
	*id = OrderID(v)

	return err
}

func (id OrderItemID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id PaymentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
