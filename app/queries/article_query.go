package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/habitflow/habitflow-backend/app/models"
)

// GetAllArticles retrieves all articles ordered by created_at desc
func GetAllArticles(db *sql.DB) ([]models.Article, error) {
	query := `SELECT id, title, subtitle, author, read_minutes, content, created_at FROM articles ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		var createdAt time.Time
		if err := rows.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Author, &a.ReadMinutes, &a.Content, &createdAt); err != nil {
			return nil, err
		}
		a.CreatedAt = createdAt
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticleByID retrieves a single article.
func GetArticleByID(db *sql.DB, id string) (models.Article, error) {
	var a models.Article
	query := `SELECT id, title, subtitle, author, read_minutes, content, created_at FROM articles WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&a.ID, &a.Title, &a.Subtitle, &a.Author, &a.ReadMinutes, &a.Content, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, errors.New("article not found")
		}
		return a, errors.New("unable to get article")
	}
	return a, nil
}
