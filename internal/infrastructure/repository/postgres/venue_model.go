package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/venue"
)

type venueTableModel struct {
	ID        int64          `db:"id"`
	Name      sql.NullString `db:"name"`
	Address   sql.NullString `db:"address"`
	City      sql.NullString `db:"city"`
	Capacity  sql.NullInt64  `db:"capacity"`
	Surface   sql.NullString `db:"surface"`
	Image     sql.NullString `db:"image"`
	CreatedAt time.Time      `db:"created_at"`
}

type venueInsertModel struct {
	ID       int64          `db:"id"`
	Name     sql.NullString `db:"name"`
	Address  sql.NullString `db:"address"`
	City     sql.NullString `db:"city"`
	Capacity sql.NullInt64  `db:"capacity"`
	Surface  sql.NullString `db:"surface"`
	Image    sql.NullString `db:"image"`
}

func (m venueTableModel) toDomain() venue.Venue {
	return venue.Venue{
		ID:       m.ID,
		Name:     nullStringToStringPtr(m.Name),
		Address:  nullStringToStringPtr(m.Address),
		City:     nullStringToStringPtr(m.City),
		Capacity: nullInt64ToIntPtr(m.Capacity),
		Surface:  nullStringToStringPtr(m.Surface),
		Image:    nullStringToStringPtr(m.Image),
	}
}
