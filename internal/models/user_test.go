package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{Email: "owner@example.com", FirstName: "Dana", LastName: "Owner"},
			wantErr: false,
		},
		{
			name:    "missing email",
			user:    User{FirstName: "Dana", LastName: "Owner"},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "invalid email",
			user:    User{Email: "invalid-email", FirstName: "Dana", LastName: "Owner"},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "missing last name",
			user:    User{Email: "owner@example.com", FirstName: "Dana"},
			wantErr: true,
			errMsg:  "first and last name are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUser_BeforeCreate(t *testing.T) {
	user := &User{Email: "owner@example.com", FirstName: "Dana", LastName: "Owner"}

	require.NoError(t, user.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestUser_FullName(t *testing.T) {
	user := User{FirstName: "Dana", LastName: "Owner"}
	assert.Equal(t, "Dana Owner", user.FullName())
}
