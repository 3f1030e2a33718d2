package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/skybrisk/intern-service/internal/models"
)

type InternRepository interface {
	GetAll(ctx context.Context) ([]models.Intern, error)
	GetByEmail(ctx context.Context, email string) (*models.Intern, error)
}

type internRepository struct {
	*PostgresRepository
}

func NewInternRepository(db *sql.DB, logger zerolog.Logger) InternRepository {
	return &internRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *internRepository) GetAll(ctx context.Context) ([]models.Intern, error) {
	query := `
		SELECT intern_id, name, email, mobile_number, start_date, end_date,
			batch_assignment, id_card_type, certificate_sent, id_card_sent, note
		FROM interns
		ORDER BY intern_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interns []models.Intern
	for rows.Next() {
		var intern models.Intern
		err := rows.Scan(
			&intern.InternID,
			&intern.Name,
			&intern.Email,
			&intern.MobileNumber,
			&intern.StartDate,
			&intern.EndDate,
			&intern.BatchAssignment,
			&intern.IDCardType,
			&intern.CertificateSent,
			&intern.IDCardSent,
			&intern.Note,
		)
		if err != nil {
			return nil, err
		}
		interns = append(interns, intern)
	}

	return interns, rows.Err()
}

func (r *internRepository) GetByEmail(ctx context.Context, email string) (*models.Intern, error) {
	query := `
		SELECT intern_id, name, email, mobile_number, start_date, end_date,
			batch_assignment, id_card_type, certificate_sent, id_card_sent, note
		FROM interns
		WHERE email = $1
	`

	intern := &models.Intern{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&intern.InternID,
		&intern.Name,
		&intern.Email,
		&intern.MobileNumber,
		&intern.StartDate,
		&intern.EndDate,
		&intern.BatchAssignment,
		&intern.IDCardType,
		&intern.CertificateSent,
		&intern.IDCardSent,
		&intern.Note,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return intern, err
}
