package models

import (
	"time"
)

const dateLayout = "2006-01-02"

type Account struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:64;not null"         json:"name"`
	Email       string    `gorm:"size:64;not null"         json:"email"`
	Address     string    `gorm:"size:256;not null"        json:"address"`
	PhoneNumber *string   `gorm:"size:32"                  json:"phone_number"`
	DateJoined  time.Time `gorm:"type:date;not null"       json:"date_joined"`
}

func (a *Account) PrimaryKey() uint      { return a.ID }
func (a *Account) SetPrimaryKey(id uint) { a.ID = id }
func (a *Account) DisplayName() string   { return a.Name }

// Serialize converts an Account into a plain mapping. The id is nil while
// the account has not been persisted yet.
func (a *Account) Serialize() map[string]any {
	var id any
	if a.ID != 0 {
		id = a.ID
	}
	var phone any
	if a.PhoneNumber != nil {
		phone = *a.PhoneNumber
	}
	return map[string]any{
		"id":           id,
		"name":         a.Name,
		"email":        a.Email,
		"address":      a.Address,
		"phone_number": phone,
		"date_joined":  a.DateJoined.Format(dateLayout),
	}
}

// Deserialize populates an Account from a plain mapping. It never touches
// the id and never persists; the populated account is returned so calls can
// be chained.
func (a *Account) Deserialize(data any) (*Account, error) {
	fields, ok := data.(map[string]any)
	if !ok {
		return nil, NewDataValidationError("invalid Account: body contained bad or no data")
	}

	var err error
	if a.Name, err = stringField(fields, "Account", "name"); err != nil {
		return nil, err
	}
	if a.Email, err = stringField(fields, "Account", "email"); err != nil {
		return nil, err
	}
	if a.Address, err = stringField(fields, "Account", "address"); err != nil {
		return nil, err
	}

	a.PhoneNumber = nil
	if raw, ok := fields["phone_number"]; ok && raw != nil {
		phone, ok := raw.(string)
		if !ok {
			return nil, NewDataValidationError("invalid Account: phone_number must be a string")
		}
		a.PhoneNumber = &phone
	}

	a.DateJoined = today()
	if raw, ok := fields["date_joined"]; ok && raw != nil && raw != "" {
		joined, ok := raw.(string)
		if !ok {
			return nil, NewDataValidationError("invalid Account: date_joined must be a string")
		}
		parsed, err := time.Parse(dateLayout, joined)
		if err != nil {
			return nil, NewDataValidationError("invalid Account: date_joined [%s] is not a YYYY-MM-DD date", joined)
		}
		a.DateJoined = parsed
	}

	return a, nil
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
