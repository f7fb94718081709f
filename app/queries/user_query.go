package queries

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/app/models"
)

type UserQueries struct {
	DB *sql.DB
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	user := models.User{}

	query := `SELECT uid, username, email, avatar, password_hash, verified, reminder_time, reminder_enabled, created_at, updated_at
			  FROM users WHERE uid = $1`

	err := q.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Avatar,
		&user.PasswordHash,
		&user.Verified,
		&user.ReminderTime,
		&user.ReminderEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}

	return user, nil
}

func (q *UserQueries) GetUserByEmail(email string) (models.User, error) {
	user := models.User{}

	query := `SELECT uid, username, email, avatar, password_hash, verified, reminder_time, reminder_enabled, created_at, updated_at
			  FROM users WHERE email = $1`

	err := q.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Avatar,
		&user.PasswordHash,
		&user.Verified,
		&user.ReminderTime,
		&user.ReminderEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}

	return user, nil
}

func (q *UserQueries) GetUserByUsername(username string) (models.User, error) {
	user := models.User{}

	query := `SELECT uid, username, email, avatar, password_hash, verified, reminder_time, reminder_enabled, created_at, updated_at
			  FROM users WHERE username = $1`

	err := q.DB.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Avatar,
		&user.PasswordHash,
		&user.Verified,
		&user.ReminderTime,
		&user.ReminderEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return user, errors.New("user not found")
		}
		return user, errors.New("unable to get user, DB error")
	}

	return user, nil
}

func (q *UserQueries) CreateUser(u *models.User) error {
	query := `INSERT INTO users (uid, username, email, avatar, password_hash, verified, otp, reminder_time, reminder_enabled, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := q.DB.Exec(query,
		u.ID,
		u.Username,
		u.Email,
		u.Avatar,
		u.PasswordHash,
		u.Verified,
		u.OTP,
		u.ReminderTime,
		u.ReminderEnabled,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		println(err.Error())
		return errors.New("unable to create user, DB error")
	}

	return nil
}

func (q *UserQueries) VerifyOTPByEmail(email string, otp string) error {
	query := `UPDATE users SET verified = TRUE, updated_at = now() WHERE email = $1 AND otp = $2 AND verified = FALSE`
	res, err := q.DB.Exec(query, email, otp)
	if err != nil {
		return errors.New("unable to verify OTP, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("invalid otp or already verified")
	}
	return nil
}

// UpdateOTPByEmail updates the OTP for a user identified by email
func (q *UserQueries) UpdateOTPByEmail(email string, otp string) error {
	query := `UPDATE users SET otp = $1, updated_at = now() WHERE email = $2`
	res, err := q.DB.Exec(query, otp, email)
	if err != nil {
		return errors.New("unable to update otp, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateUser(userID uuid.UUID, req *models.UpdateUserRequest) error {
	setClauses := []string{}
	args := []interface{}{}
	argID := 1

	if req.Username != nil {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argID))
		args = append(args, *req.Username)
		argID++
	}
	if req.Avatar != nil {
		setClauses = append(setClauses, fmt.Sprintf("avatar = $%d", argID))
		args = append(args, *req.Avatar)
		argID++
	}

	if len(setClauses) == 0 {
		return errors.New("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`UPDATE users SET %s WHERE uid = $%d`, strings.Join(setClauses, ", "), argID)

	args = append(args, userID)

	res, err := q.DB.Exec(query, args...)
	if err != nil {
		return errors.New("unable to update user, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

func (q *UserQueries) UpdateReminder(userID uuid.UUID, reminderTime string, enabled bool) error {
	query := `UPDATE users SET reminder_time = $1, reminder_enabled = $2, updated_at = now() WHERE uid = $3`
	res, err := q.DB.Exec(query, reminderTime, enabled, userID)
	if err != nil {
		return errors.New("unable to update reminder settings, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return errors.New("no user updated")
	}
	return nil
}

// GetReminderUsers returns users that have the daily reminder enabled.
func (q *UserQueries) GetReminderUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT uid, username, email, reminder_time FROM users WHERE reminder_enabled = TRUE`
	rows, err := q.DB.Query(query)
	if err != nil {
		return users, errors.New("unable to get reminder users, DB error")
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.ReminderTime); err != nil {
			return users, errors.New("error scanning user row")
		}
		user.ReminderEnabled = true
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return users, errors.New("error iterating user rows")
	}

	return users, nil
}

func (q *UserQueries) DeleteUser(id uuid.UUID) error {
	query := `DELETE FROM users WHERE uid = $1`

	res, err := q.DB.Exec(query, id)
	if err != nil {
		return errors.New("unable to delete user, DB error")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("no user deleted")
	}

	return nil
}
