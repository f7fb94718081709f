package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-backend/app/models"
)

type EventQueries struct {
	DB *sql.DB
}

func (q *EventQueries) CreateEvent(e *models.Event) error {
	query := `INSERT INTO events (id, user_id, name, event_date, event_time, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.DB.Exec(query, e.ID, e.UserID, e.Name, e.EventDate, e.EventTime, e.CreatedAt)
	if err != nil {
		println(err.Error())
		return errors.New("unable to create event, DB error")
	}
	return nil
}

func (q *EventQueries) GetEventsByUser(userID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	query := `SELECT id, user_id, name, event_date, event_time, created_at FROM events WHERE user_id = $1 ORDER BY event_date ASC, event_time ASC`
	rows, err := q.DB.Query(query, userID)
	if err != nil {
		return events, errors.New("unable to query events")
	}
	defer rows.Close()
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.EventDate, &e.EventTime, &e.CreatedAt); err != nil {
			return events, errors.New("error scanning event row")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return events, errors.New("error iterating event rows")
	}
	return events, nil
}

func (q *EventQueries) GetEventsByDate(userID uuid.UUID, date string) ([]models.Event, error) {
	var events []models.Event
	query := `SELECT id, user_id, name, event_date, event_time, created_at FROM events WHERE user_id = $1 AND event_date = $2 ORDER BY event_time ASC`
	rows, err := q.DB.Query(query, userID, date)
	if err != nil {
		return events, errors.New("unable to query events")
	}
	defer rows.Close()
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.EventDate, &e.EventTime, &e.CreatedAt); err != nil {
			return events, errors.New("error scanning event row")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return events, errors.New("error iterating event rows")
	}
	return events, nil
}

func (q *EventQueries) DeleteEvent(id, userID uuid.UUID) error {
	res, err := q.DB.Exec(`DELETE FROM events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return errors.New("unable to delete event, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("event not found")
	}
	return nil
}
