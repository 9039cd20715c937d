package characters

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
)

// Record is the archived row. The full character is kept as JSON next to
// the columns used for lookups.
type Record struct {
	ID          string `gorm:"primaryKey;size:64"`
	OwnerID     string `gorm:"size:128;index"`
	SessionID   string `gorm:"size:64;index"`
	Class       string `gorm:"size:32;index"`
	Background  string `gorm:"size:32"`
	Race        string `gorm:"size:64"`
	Seed        int64
	PayloadJSON string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName pins the table name
func (Record) TableName() string {
	return "characters"
}

// SQLiteRepoConfig holds the SQLite archive settings
type SQLiteRepoConfig struct {
	Path string
	// Silent disables gorm's SQL logging
	Silent bool
}

// SQLiteRepository stores characters in SQLite through gorm
type SQLiteRepository struct {
	gorm *gorm.DB
	mu   sync.Mutex
}

// NewSQLiteRepository opens (and migrates) the archive at cfg.Path
func NewSQLiteRepository(cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, dnderr.InvalidArgument("archive path is required")
	}

	gormCfg := &gorm.Config{}
	if cfg.Silent {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	if err != nil {
		return nil, dnderr.Wrapf(err, "open archive %s", cfg.Path)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, dnderr.Wrap(err, "auto migrate archive")
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}

	return &SQLiteRepository{gorm: db}, nil
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	if r == nil {
		return nil
	}
	sqlDB, err := r.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Create archives a character
func (r *SQLiteRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	payload, err := json.Marshal(char)
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal character %s", char.ID)
	}

	record := &Record{
		ID:          char.ID,
		OwnerID:     char.OwnerID,
		SessionID:   char.SessionID,
		Class:       char.Class,
		Background:  char.Background,
		Race:        char.Race,
		Seed:        char.Seed,
		PayloadJSON: string(payload),
		CreatedAt:   char.CreatedAt,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	if err := r.gorm.WithContext(ctx).Model(&Record{}).Where("id = ?", char.ID).Count(&count).Error; err != nil {
		return dnderr.Wrapf(err, "failed to check character %s", char.ID)
	}
	if count > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}
	if char.SessionID != "" {
		var existing []Record
		err := r.gorm.WithContext(ctx).Select("id").Where("session_id = ?", char.SessionID).Limit(1).Find(&existing).Error
		if err != nil {
			return dnderr.Wrapf(err, "failed to check session %s", char.SessionID)
		}
		if len(existing) > 0 {
			return dnderr.AlreadyExistsf("session '%s' already archived character '%s'", char.SessionID, existing[0].ID).
				WithMeta("session_id", char.SessionID).
				WithMeta("character_id", existing[0].ID)
		}
	}

	if err := r.gorm.WithContext(ctx).Create(record).Error; err != nil {
		return dnderr.Wrapf(err, "failed to archive character %s", char.ID)
	}
	return nil
}

// Get loads a character by ID
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	var record Record
	err := r.gorm.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, dnderr.Wrapf(err, "failed to load character %s", id)
	}

	return record.decode()
}

// GetBySession loads the character archived for a session
func (r *SQLiteRepository) GetBySession(ctx context.Context, sessionID string) (*character.Character, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	var record Record
	err := r.gorm.WithContext(ctx).First(&record, "session_id = ?", sessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dnderr.NotFoundf("no character archived for session '%s'", sessionID).
				WithMeta("session_id", sessionID)
		}
		return nil, dnderr.Wrapf(err, "failed to load character for session %s", sessionID)
	}

	return record.decode()
}

// ListByOwner returns the owner's characters, oldest first
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	var records []Record
	err := r.gorm.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at asc").
		Order("id asc").
		Find(&records).Error
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list characters for owner %s", ownerID)
	}

	result := make([]*character.Character, 0, len(records))
	for i := range records {
		char, err := records[i].decode()
		if err != nil {
			return nil, err
		}
		result = append(result, char)
	}
	return result, nil
}

func (rec *Record) decode() (*character.Character, error) {
	var char character.Character
	if err := json.Unmarshal([]byte(rec.PayloadJSON), &char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to unmarshal character %s", rec.ID)
	}
	return &char, nil
}
