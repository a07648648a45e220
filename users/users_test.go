package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSetFieldsPartial(t *testing.T) {
	in := editUserInput{FirstName: "Ada"}
	assert.Equal(t, bson.M{"firstName": "Ada"}, in.SetFields())
}

func TestSetFieldsAll(t *testing.T) {
	in := editUserInput{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "5550001111"}
	set := in.SetFields()

	assert.Equal(t, bson.M{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"phoneNumber": "5550001111",
	}, set)
}

func TestSetFieldsEmptyInputKeepsStoredValues(t *testing.T) {
	assert.Empty(t, editUserInput{}.SetFields())
}

func TestNewUserInputValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      newUserInput
		wantErr bool
	}{
		{
			name: "valid",
			in: newUserInput{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				PhoneNumber: "5550001111",
				Password:    "s3cretpw",
			},
		},
		{
			name: "bad email",
			in: newUserInput{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "not-an-email",
				PhoneNumber: "5550001111",
				Password:    "s3cretpw",
			},
			wantErr: true,
		},
		{
			name: "short password",
			in: newUserInput{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				PhoneNumber: "5550001111",
				Password:    "pw",
			},
			wantErr: true,
		},
		{
			name: "short phone",
			in: newUserInput{
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada@example.com",
				PhoneNumber: "123",
				Password:    "s3cretpw",
			},
			wantErr: true,
		},
		{
			name:    "missing everything",
			in:      newUserInput{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
