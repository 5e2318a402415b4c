package store

import (
	"database/sql"
	goerrors "errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO
)

var _ Store = &SQLite{}

// SQLite is the Store implementation over a local SQLite file, via GORM.
type SQLite struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// migrates the schema.
func Open(path string) (*SQLite, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open sqlite database %s", path)
	}

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to connect to database")
	}

	// WAL + NORMAL is the usual safe/fast combination for a local file.
	if err := db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		return nil, pkgerrors.Wrap(err, "failed to enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous = NORMAL;").Error; err != nil {
		return nil, pkgerrors.Wrap(err, "failed to set synchronous mode")
	}

	// SQLite supports a single writer; serialize at the pool instead of
	// hitting SQLITE_BUSY under concurrent requests.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&Battery{}, &Setting{}, &Feedback{}); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to migrate database")
	}

	logrus.WithField("path", path).Debug("database opened")

	return &SQLite{db: db}, nil
}

func (s *SQLite) ListBatteries(statusFilter string) ([]Battery, error) {
	var batteries []Battery

	q := s.db.Order("label ASC").Order("id DESC")
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}

	if err := q.Find(&batteries).Error; err != nil {
		return nil, pkgerrors.Wrap(err, "failed to list batteries")
	}
	return batteries, nil
}

func (s *SQLite) GetBattery(id uint) (*Battery, error) {
	var b Battery
	if err := s.db.First(&b, id).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatteryNotFound
		}
		return nil, pkgerrors.Wrapf(err, "failed to get battery %d", id)
	}
	return &b, nil
}

func (s *SQLite) CreateBattery(b *Battery) error {
	if err := s.db.Create(b).Error; err != nil {
		return pkgerrors.Wrap(err, "failed to create battery")
	}
	return nil
}

func (s *SQLite) UpdateBattery(b *Battery) error {
	// Save writes every field, including zero values. Partial updates are
	// deliberately not supported.
	if err := s.db.Save(b).Error; err != nil {
		return pkgerrors.Wrapf(err, "failed to update battery %d", b.ID)
	}
	return nil
}

func (s *SQLite) DeleteBattery(id uint) error {
	res := s.db.Delete(&Battery{}, id)
	if res.Error != nil {
		return pkgerrors.Wrapf(res.Error, "failed to delete battery %d", id)
	}
	if res.RowsAffected == 0 {
		return ErrBatteryNotFound
	}
	return nil
}

func (s *SQLite) GetSetting(key, def string) (string, error) {
	var setting Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return def, nil
		}
		return "", pkgerrors.Wrapf(err, "failed to get setting %s", key)
	}
	return setting.Value, nil
}

func (s *SQLite) SetSetting(key, value string) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Key: key, Value: value}).Error
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to set setting %s", key)
	}
	return nil
}

func (s *SQLite) CreateFeedback(f *Feedback) error {
	if err := s.db.Create(f).Error; err != nil {
		return pkgerrors.Wrap(err, "failed to create feedback")
	}
	return nil
}

func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get database instance")
	}
	return sqlDB.Close()
}
