// Package config is our internal config store: a small key/value table in a
// sqlite database under the user's config dir. Values are json encoded, so
// callers can store strings, bools and numbers without caring about types.
package config

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cast"
	_ "modernc.org/sqlite"

	C "github.com/taskenv/cli/internal/constants"
	"github.com/taskenv/cli/internal/errs"
	"github.com/taskenv/cli/internal/logging"
)

// Instance holds our main config logic
type Instance struct {
	appDataDir string
	mu         sync.Mutex
	db         *sql.DB
	closed     bool
}

func New() (*Instance, error) {
	return NewCustom("")
}

// NewCustom is intended only to be used from tests, it allows overriding the config dir
func NewCustom(localPath string) (*Instance, error) {
	i := &Instance{}

	var err error
	i.appDataDir, err = resolveDir(localPath)
	if err != nil {
		return nil, err
	}

	// Ensure appdata dir exists, because the sqlite driver sure doesn't
	if err := os.MkdirAll(i.appDataDir, os.ModePerm); err != nil {
		return nil, errs.Wrap(err, "Could not create config dir")
	}

	path := filepath.Join(i.appDataDir, C.InternalConfigFileName)
	i.db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "Could not create sqlite connection to %s", path)
	}

	_, err = i.db.Exec(`CREATE TABLE IF NOT EXISTS config (key string NOT NULL PRIMARY KEY, value text)`)
	if err != nil {
		return nil, errs.Wrap(err, "Could not seed settings database")
	}

	return i, nil
}

func resolveDir(localPath string) (string, error) {
	if localPath != "" {
		return localPath, nil
	}
	if dir := os.Getenv(C.ConfigEnvVarName); dir != "" {
		return dir, nil
	}

	userDir, err := os.UserConfigDir()
	if err != nil {
		return "", errs.Wrap(err, "Could not detect user config dir")
	}
	return filepath.Join(userDir, C.CommandName), nil
}

func (i *Instance) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.closed {
		return nil
	}
	i.closed = true
	return i.db.Close()
}

// ConfigDir returns the directory this instance keeps its data in
func (i *Instance) ConfigDir() string {
	return i.appDataDir
}

// Set sets a value at the given key.
func (i *Instance) Set(key string, value interface{}) error {
	return i.GetThenSet(key, func(interface{}) (interface{}, error) {
		return value, nil
	})
}

// GetThenSet updates a value at the given key. The valueF argument returns
// the new value to set based on the previous one. The instance lock ensures
// no other thread can modify the key between the read and the write.
func (i *Instance) GetThenSet(key string, valueF func(currentValue interface{}) (interface{}, error)) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	value, err := valueF(i.rawGet(key))
	if err != nil {
		return errs.Wrap(err, "valueF failed")
	}

	valueMarshaled, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "Could not marshal config value: %v", value)
	}

	_, err = i.db.Exec(`INSERT OR REPLACE INTO config(key, value) VALUES(?, ?)`, key, string(valueMarshaled))
	if err != nil {
		return errs.Wrap(err, "Could not store config value for key: %s", key)
	}

	return nil
}

func (i *Instance) rawGet(key string) interface{} {
	row := i.db.QueryRow(`SELECT value FROM config WHERE key=?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err != sql.ErrNoRows {
			logging.Error("Could not read config value for key %s: %v", key, err)
		}
		return nil
	}

	var result interface{}
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		logging.Error("Could not unmarshal config value for key %s: %v", key, err)
		return nil
	}

	return result
}

// Get retrieves the raw value at the given key, nil if it isn't set
func (i *Instance) Get(key string) interface{} {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.rawGet(key)
}

// IsSet returns whether the given key has a value
func (i *Instance) IsSet(key string) bool {
	return i.Get(key) != nil
}

// GetString retrieves a string for a given key
func (i *Instance) GetString(key string) string {
	return cast.ToString(i.Get(key))
}

// GetBool retrieves a boolean value for a given key
func (i *Instance) GetBool(key string) bool {
	return cast.ToBool(i.Get(key))
}

// GetInt retrieves an integer value for a given key
func (i *Instance) GetInt(key string) int {
	return cast.ToInt(i.Get(key))
}
