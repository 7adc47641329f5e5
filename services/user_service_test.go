package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/QuantumLuke/QuantumShopsBE/models"
	"github.com/QuantumLuke/QuantumShopsBE/shoperr"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	user, err := users.CreateUser(CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse battery")))
	require.Equal(t, models.RoleUser, user.Role)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	req := CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse battery",
	}
	_, err := users.CreateUser(req)
	require.NoError(t, err)

	_, err = users.CreateUser(req)
	require.Equal(t, shoperr.KindAlreadyExists, shoperr.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error)
	require.EqualValues(t, 1, count, "no duplicate row may be created")
}

func TestCreateUserDuplicateEmailRace(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	// A second signup lands between the duplicate check and the insert.
	// The unique email index catches it and the caller still sees a
	// conflict, not an internal error.
	err := db.Callback().Create().Before("gorm:create").
		Register("racing_signup", func(tx *gorm.DB) {
			if _, ok := tx.Statement.Dest.(*models.User); !ok {
				return
			}
			_, execErr := tx.Statement.ConnPool.ExecContext(context.Background(),
				"INSERT INTO users (first_name, last_name, email, password, role) VALUES (?, ?, ?, ?, ?)",
				"Grace", "Hopper", "dup@example.com", "not-a-real-hash", "user")
			require.NoError(t, execErr)
		})
	require.NoError(t, err)

	_, err = users.CreateUser(CreateUserRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "dup@example.com",
		Password:  "correct horse battery",
	})
	require.Equal(t, shoperr.KindAlreadyExists, shoperr.KindOf(err))
}

func TestUpdateUserChangesNamesOnly(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	user, err := users.CreateUser(CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct horse battery",
	})
	require.NoError(t, err)

	updated, err := users.UpdateUser(user.ID, UpdateUserRequest{FirstName: "Augusta", LastName: "King"})
	require.NoError(t, err)
	require.Equal(t, "Augusta", updated.FirstName)
	require.Equal(t, "King", updated.LastName)
	require.Equal(t, user.Email, updated.Email)
	require.Equal(t, user.Password, updated.Password)
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.GetUserByID(123)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	user := createTestUser(t, db, "gone@example.com")
	require.NoError(t, users.DeleteUser(user.ID))

	_, err := users.GetUserByID(user.ID)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))

	err = users.DeleteUser(user.ID)
	require.Equal(t, shoperr.KindNotFound, shoperr.KindOf(err))
}
