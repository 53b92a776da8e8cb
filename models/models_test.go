package models

import (
	"encoding/json"
	"strings"
	"testing"

	"food-order-api/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("User")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, r)

	for _, bad := range []string{"", "admin", "superuser", "USER"} {
		_, err := ParseRole(bad)
		assert.ErrorIs(t, err, apperr.ErrValidation, "role %q", bad)
	}
}

func TestRole_JSON(t *testing.T) {
	var payload struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"Admin"}`), &payload))
	assert.Equal(t, RoleAdmin, payload.Role)

	err := json.Unmarshal([]byte(`{"role":"root"}`), &payload)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"Admin"}`, string(b))
}

func TestRole_ScanValue(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan([]byte("User")))
	assert.Equal(t, RoleUser, r)

	assert.ErrorIs(t, r.Scan("Owner"), apperr.ErrValidation)
	assert.Error(t, r.Scan(42))

	v, err := RoleAdmin.Value()
	require.NoError(t, err)
	assert.Equal(t, "Admin", v)

	_, err = Role("ghost").Value()
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUser_BeforeCreate(t *testing.T) {
	u := &User{Name: "  Model Test User ", Email: "Modeltest@Example.COM", Password: "password123"}
	require.NoError(t, u.BeforeCreate(nil))

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "model test user", u.Name)
	assert.Equal(t, "modeltest@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.Password)
	assert.Greater(t, len(u.Password), 20)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("password124"))
	assert.False(t, u.IsAdmin())
}

func TestUser_BeforeCreate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		user  User
		field string
	}{
		{"invalid email", User{Name: "a", Email: "invalidemail", Password: "password123"}, "email"},
		{"short password", User{Name: "a", Email: "a@x.com", Password: "123"}, "password"},
		{"missing name", User{Email: "a@x.com", Password: "password123"}, "name"},
		{"unknown role", User{Name: "a", Email: "a@x.com", Password: "password123", Role: "Owner"}, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			err := u.BeforeCreate(nil)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestUser_PasswordLengthBoundary(t *testing.T) {
	short := &User{Name: "a", Email: "a@x.com", Password: strings.Repeat("p", MinPasswordLength-1)}
	err := short.BeforeCreate(nil)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
	assert.Equal(t, "must be at least 6 characters", ve.Reason)

	exact := &User{Name: "a", Email: "a@x.com", Password: strings.Repeat("p", MinPasswordLength)}
	require.NoError(t, exact.BeforeCreate(nil))
	assert.True(t, exact.CheckPassword(strings.Repeat("p", MinPasswordLength)))
}

func TestUser_AdminRoleKept(t *testing.T) {
	u := &User{Name: "Admin", Email: "admin@x.com", Password: "adminpass123", Role: RoleAdmin}
	require.NoError(t, u.BeforeCreate(nil))
	assert.True(t, u.IsAdmin())
}

func TestMenuAndOrder_Required(t *testing.T) {
	m := &Menu{Restaurant: "   ", Food: "pizza"}
	assert.ErrorIs(t, m.BeforeSave(nil), apperr.ErrValidation)

	m.Restaurant = " Luigi's "
	require.NoError(t, m.BeforeSave(nil))
	assert.Equal(t, "Luigi's", m.Restaurant)

	o := &Order{Restaurant: "Luigi's"}
	assert.ErrorIs(t, o.BeforeSave(nil), apperr.ErrValidation)

	o.Owner = "Order Test User"
	require.NoError(t, o.BeforeSave(nil))
	require.NoError(t, o.BeforeCreate(nil))
	assert.NotEmpty(t, o.ID)
}
