package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/team"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	ShortName sql.NullString `db:"short_name"`
	Country   sql.NullString `db:"country"`
	Founded   sql.NullInt64  `db:"founded"`
	National  bool           `db:"national"`
	Logo      sql.NullString `db:"logo"`
	CreatedAt time.Time      `db:"created_at"`
}

type teamInsertModel struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	ShortName sql.NullString `db:"short_name"`
	Country   sql.NullString `db:"country"`
	Founded   sql.NullInt64  `db:"founded"`
	National  bool           `db:"national"`
	Logo      sql.NullString `db:"logo"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: nullStringToStringPtr(m.ShortName),
		Country:   nullStringToStringPtr(m.Country),
		Founded:   nullInt64ToIntPtr(m.Founded),
		National:  m.National,
		Logo:      nullStringToStringPtr(m.Logo),
	}
}
