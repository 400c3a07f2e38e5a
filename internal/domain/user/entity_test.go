//go:build unit

package user_test

import (
	"testing"

	"beach-reserve/internal/domain/user"
	"beach-reserve/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a valid user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		role, _ := user.NewRole("customer")
		expected := user.NewUser(email, "hashed_password", role, "Test User", nil)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Nil(t, actual.VendorID())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "well-formed address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "vendor role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("vendor") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("manager") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "uppercase role is not normalized",
				mutate: func(b *builder.UserBuilder) { b.WithRole("VENDOR") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestUserOperatesVendor(t *testing.T) {
	vendorID := uuid.New()

	staff, err := builder.NewUserBuilder().WithRole("vendor").WithVendorID(&vendorID).BuildDomain()
	require.NoError(t, err)
	assert.True(t, staff.OperatesVendor(vendorID))
	assert.False(t, staff.OperatesVendor(uuid.New()))

	customer, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	assert.False(t, customer.OperatesVendor(vendorID))
}

func TestUserUpdateProfile(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	u.UpdateProfile("Maria da Silva")
	assert.Equal(t, "Maria da Silva", u.DisplayName())

	u.SetAvatarURL("https://cdn.example.com/avatars/maria.jpg")
	require.NotNil(t, u.AvatarURL())
	assert.Equal(t, "https://cdn.example.com/avatars/maria.jpg", *u.AvatarURL())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
