package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"statcard/gen/model"
	"statcard/gen/table"
	"statcard/internal/domain"
	migrate "statcard/internal/migrate"
	"statcard/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite caps bind variables per statement (999 on older builds), so a
// full league sample of ~10k rows cannot go in a single INSERT. 200
// rows of 4 columns stays well under the cap.
const insertBatchSize = 200

type Storage struct {
	db *sql.DB
}

var _ storage.SampleStorage = (*Storage)(nil)

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	if err := migrate.UpSamplesDB(db); err != nil {
		return nil, fmt.Errorf("migrate samples db: %w", err)
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetSample(season string) (domain.LeagueSample, error) {
	var snapshot model.Snapshots
	err := table.Snapshots.
		SELECT(table.Snapshots.AllColumns).
		FROM(table.Snapshots).
		WHERE(table.Snapshots.Season.EQ(sqlite.String(season))).
		Query(s.db, &snapshot)
	if errors.Is(err, qrm.ErrNoRows) {
		return domain.LeagueSample{}, storage.ErrNoSnapshot
	}
	if err != nil {
		return domain.LeagueSample{}, err
	}

	var samples []model.Samples
	err = table.Samples.
		SELECT(table.Samples.AllColumns).
		FROM(table.Samples).
		WHERE(table.Samples.Season.EQ(sqlite.String(season))).
		Query(s.db, &samples)
	if err != nil {
		return domain.LeagueSample{}, err
	}
	return convertSample(snapshot, samples), nil
}

func (s *Storage) SaveSample(sample domain.LeagueSample) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Samples.
		DELETE().
		WHERE(table.Samples.Season.EQ(sqlite.String(sample.Season))).
		Exec(tx)
	if err != nil {
		return err
	}
	_, err = table.Snapshots.
		DELETE().
		WHERE(table.Snapshots.Season.EQ(sqlite.String(sample.Season))).
		Exec(tx)
	if err != nil {
		return err
	}

	_, err = table.Snapshots.
		INSERT(table.Snapshots.AllColumns).
		MODEL(convertSnapshot(sample)).
		Exec(tx)
	if err != nil {
		return err
	}
	rows := convertValues(sample)
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		_, err = table.Samples.
			INSERT(table.Samples.AllColumns).
			MODELS(rows[start:end]).
			Exec(tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
