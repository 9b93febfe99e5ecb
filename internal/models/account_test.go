package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSerializeAccount(t *testing.T) {
	account := Account{
		ID:          7,
		Name:        "John Reese",
		Email:       "john@example.com",
		Address:     "123 Main St",
		PhoneNumber: strPtr("555-1212"),
		DateJoined:  time.Date(2020, 5, 17, 0, 0, 0, 0, time.UTC),
	}

	serial := account.Serialize()
	require.Equal(t, uint(7), serial["id"])
	require.Equal(t, "John Reese", serial["name"])
	require.Equal(t, "john@example.com", serial["email"])
	require.Equal(t, "123 Main St", serial["address"])
	require.Equal(t, "555-1212", serial["phone_number"])
	require.Equal(t, "2020-05-17", serial["date_joined"])
}

func TestSerializeTransientAccount(t *testing.T) {
	account := Account{Name: "new", Email: "e", Address: "a", DateJoined: time.Now()}
	serial := account.Serialize()
	require.Nil(t, serial["id"])
	require.Nil(t, serial["phone_number"])
}

func TestAccountRoundTrip(t *testing.T) {
	original := Account{
		Name:        "Harold Finch",
		Email:       "admin@machine.io",
		Address:     "Library, NYC",
		PhoneNumber: strPtr("555-0000"),
		DateJoined:  time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	restored, err := new(Account).Deserialize(original.Serialize())
	require.NoError(t, err)
	require.Equal(t, original.Name, restored.Name)
	require.Equal(t, original.Email, restored.Email)
	require.Equal(t, original.Address, restored.Address)
	require.Equal(t, original.PhoneNumber, restored.PhoneNumber)
	require.Equal(t, original.DateJoined, restored.DateJoined)
	require.Zero(t, restored.ID)
}

func TestDeserializeAccountOptionalFields(t *testing.T) {
	restored, err := new(Account).Deserialize(map[string]any{
		"name":    "Sam",
		"email":   "sam@example.com",
		"address": "somewhere",
	})
	require.NoError(t, err)
	require.Nil(t, restored.PhoneNumber)

	// date_joined defaults to the day of the call, not the zero time
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), restored.DateJoined.Format("2006-01-02"))
}

func TestDeserializeAccountMissingRequired(t *testing.T) {
	var verr *DataValidationError

	_, err := new(Account).Deserialize(map[string]any{})
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Message, "missing name")

	_, err = new(Account).Deserialize(map[string]any{"name": "n"})
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Message, "missing email")

	_, err = new(Account).Deserialize(map[string]any{"name": "n", "email": "e"})
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Message, "missing address")
}

func TestDeserializeAccountBadData(t *testing.T) {
	var verr *DataValidationError

	_, err := new(Account).Deserialize([]any{"not", "a", "mapping"})
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Message, "bad or no data")

	_, err = new(Account).Deserialize(nil)
	require.ErrorAs(t, err, &verr)
}

func TestDeserializeAccountBadDate(t *testing.T) {
	var verr *DataValidationError
	_, err := new(Account).Deserialize(map[string]any{
		"name":        "n",
		"email":       "e",
		"address":     "a",
		"date_joined": "17-05-2020",
	})
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Message, "date_joined")
}

func TestDeserializeIsChainable(t *testing.T) {
	account := &Account{}
	same, err := account.Deserialize(map[string]any{
		"name": "n", "email": "e", "address": "a",
	})
	require.NoError(t, err)
	require.Same(t, account, same)
}
