package database

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	drivermysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/config"
	"github.com/srvuthi/Flight-Management-System-DBMS-Project/internal/models"
)

// MySQLStore runs raw statements through gorm. No models are mapped; gorm
// supplies the driver, pool and statement binding.
type MySQLStore struct {
	db *gorm.DB
}

// OpenMySQL connects with parseTime so DATETIME columns scan as time.Time,
// and clientFoundRows so an UPDATE that changes nothing still counts its
// matched row.
func OpenMySQL(ctx context.Context, cfg config.Database) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(mysqlDSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.PoolSize)
	sqlDB.SetMaxIdleConns(cfg.PoolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// mysqlDSN lets the driver escape credentials and database names.
func mysqlDSN(cfg config.Database) string {
	c := drivermysql.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	c.DBName = cfg.Name
	c.Loc = time.UTC
	c.ParseTime = true
	c.ClientFoundRows = true
	c.Params = map[string]string{"charset": "utf8mb4"}
	return c.FormatDSN()
}

func (s *MySQLStore) Dialect() Dialect { return MySQL }

func (s *MySQLStore) Query(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := s.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func (s *MySQLStore) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res := s.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *MySQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
