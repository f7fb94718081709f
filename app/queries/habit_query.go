package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/habitflow/habitflow-backend/app/models"
)

type HabitQueries struct {
	DB *sql.DB
}

func (q *HabitQueries) CreateHabit(h *models.Habit) error {
	query := `INSERT INTO habits (id, user_id, name, target_days, start_date, streak, highest_streak, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.DB.Exec(query, h.ID, h.UserID, h.Name, pq.Array(h.TargetDays), h.StartDate, h.Streak, h.HighestStreak, h.CreatedAt, h.UpdatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create habit, DB error")
	}
	return nil
}

func (q *HabitQueries) GetHabitsByUser(userID uuid.UUID) ([]models.Habit, error) {
	var habits []models.Habit
	query := `SELECT id, user_id, name, target_days, start_date, streak, highest_streak, created_at, updated_at
			  FROM habits WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		println(err.Error())
		return habits, errors.New("unable to query habits")
	}
	defer rows.Close()
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, pq.Array(&h.TargetDays), &h.StartDate, &h.Streak, &h.HighestStreak, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return habits, errors.New("error scanning habit row")
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return habits, errors.New("error iterating habit rows")
	}

	for i := range habits {
		dates, stamps, err := q.GetCompletions(habits[i].ID)
		if err != nil {
			return habits, err
		}
		habits[i].CompletedDates = dates
		habits[i].CompletionTimestamps = stamps
	}
	return habits, nil
}

func (q *HabitQueries) GetHabitByID(id, userID uuid.UUID) (models.Habit, error) {
	h := models.Habit{}
	query := `SELECT id, user_id, name, target_days, start_date, streak, highest_streak, created_at, updated_at
			  FROM habits WHERE id = $1 AND user_id = $2`
	err := q.DB.QueryRow(query, id, userID).Scan(&h.ID, &h.UserID, &h.Name, pq.Array(&h.TargetDays), &h.StartDate, &h.Streak, &h.HighestStreak, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return h, errors.New("habit not found")
		}
		println(err.Error())
		return h, errors.New("unable to get habit")
	}

	dates, stamps, err := q.GetCompletions(h.ID)
	if err != nil {
		return h, err
	}
	h.CompletedDates = dates
	h.CompletionTimestamps = stamps
	return h, nil
}

func (q *HabitQueries) UpdateHabit(id, userID uuid.UUID, req *models.UpdateHabitRequest) error {
	h, err := q.GetHabitByID(id, userID)
	if err != nil {
		return err
	}

	name := h.Name
	if req.Name != nil {
		name = *req.Name
	}
	targetDays := h.TargetDays
	if len(req.TargetDays) > 0 {
		targetDays = req.TargetDays
	}

	query := `UPDATE habits SET name = $1, target_days = $2, updated_at = now() WHERE id = $3 AND user_id = $4`
	_, err = q.DB.Exec(query, name, pq.Array(targetDays), id, userID)
	if err != nil {
		return errors.New("unable to update habit, DB error")
	}
	return nil
}

// DeleteHabit removes the habit and its completion history. Deletion is
// permanent, there is no soft delete.
func (q *HabitQueries) DeleteHabit(id, userID uuid.UUID) error {
	tx, err := q.DB.Begin()
	if err != nil {
		return errors.New("unable to start transaction")
	}

	if _, err = tx.Exec(`DELETE FROM habit_completions WHERE habit_id = $1`, id); err != nil {
		tx.Rollback()
		return errors.New("unable to delete habit completions, DB error")
	}

	res, err := tx.Exec(`DELETE FROM habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		tx.Rollback()
		return errors.New("unable to delete habit, DB error")
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		tx.Rollback()
		return errors.New("habit not found")
	}

	if err := tx.Commit(); err != nil {
		return errors.New("unable to commit transaction")
	}
	return nil
}

func (q *HabitQueries) GetCompletions(habitID uuid.UUID) ([]string, map[string]time.Time, error) {
	query := `SELECT completed_on, completed_at FROM habit_completions WHERE habit_id = $1 ORDER BY completed_on ASC`
	rows, err := q.DB.Query(query, habitID)
	if err != nil {
		return nil, nil, errors.New("unable to query habit completions")
	}
	defer rows.Close()

	var dates []string
	stamps := map[string]time.Time{}
	for rows.Next() {
		var on time.Time
		var at time.Time
		if err := rows.Scan(&on, &at); err != nil {
			return nil, nil, errors.New("error scanning completion row")
		}
		ds := on.Format("2006-01-02")
		dates = append(dates, ds)
		stamps[ds] = at
	}
	if err := rows.Err(); err != nil {
		return nil, nil, errors.New("error iterating completion rows")
	}
	return dates, stamps, nil
}

func (q *HabitQueries) AddCompletion(habitID uuid.UUID, date string, at time.Time) error {
	query := `INSERT INTO habit_completions (id, habit_id, completed_on, completed_at) VALUES ($1, $2, $3, $4)
			  ON CONFLICT (habit_id, completed_on) DO NOTHING`
	_, err := q.DB.Exec(query, uuid.New(), habitID, date, at)
	if err != nil {
		return errors.New("unable to insert completion, DB error")
	}
	return nil
}

func (q *HabitQueries) RemoveCompletion(habitID uuid.UUID, date string) error {
	query := `DELETE FROM habit_completions WHERE habit_id = $1 AND completed_on = $2`
	_, err := q.DB.Exec(query, habitID, date)
	if err != nil {
		return errors.New("unable to delete completion, DB error")
	}
	return nil
}

// UpdateStreaks stores the recomputed streak cache for a habit.
func (q *HabitQueries) UpdateStreaks(habitID uuid.UUID, streak, highest int) error {
	query := `UPDATE habits SET streak = $1, highest_streak = $2, updated_at = now() WHERE id = $3`
	_, err := q.DB.Exec(query, streak, highest, habitID)
	if err != nil {
		return errors.New("unable to update habit streaks, DB error")
	}
	return nil
}
