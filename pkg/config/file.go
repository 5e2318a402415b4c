package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/battrack/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		Listen:       ptr.To("127.0.0.1:8080"),
		DatabasePath: ptr.To("battrack.db"),
		DefaultBrand: ptr.To("Makita"),
		// Overridden in any real deployment. Only used to sign the flash
		// cookie, there is no account data behind it.
		SessionSecret: ptr.To("battrack-dev-key"),
		Debug:         ptr.To(false),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	Listen        *string `json:"listen,omitempty"`
	DatabasePath  *string `json:"databasePath,omitempty"`
	DefaultBrand  *string `json:"defaultBrand,omitempty"`
	SessionSecret *string `json:"sessionSecret,omitempty"`
	Debug         *bool   `json:"debug,omitempty"`
}

func (f *File) Listen() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var listen string

	if f.c.Listen != nil {
		listen = *f.c.Listen
	} else {
		listen = *defaultFileConfig.Listen
	}

	return listen
}

func (f *File) DatabasePath() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var databasePath string

	if f.c.DatabasePath != nil {
		databasePath = *f.c.DatabasePath
	} else {
		databasePath = *defaultFileConfig.DatabasePath
	}

	return databasePath
}

func (f *File) DefaultBrand() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var defaultBrand string

	if f.c.DefaultBrand != nil {
		defaultBrand = *f.c.DefaultBrand
	} else {
		defaultBrand = *defaultFileConfig.DefaultBrand
	}

	return defaultBrand
}

func (f *File) SessionSecret() string {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var sessionSecret string

	if f.c.SessionSecret != nil {
		sessionSecret = *f.c.SessionSecret
	} else {
		sessionSecret = *defaultFileConfig.SessionSecret
	}

	return sessionSecret
}

func (f *File) Debug() bool {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var debug bool

	if f.c.Debug != nil {
		debug = *f.c.Debug
	} else {
		debug = *defaultFileConfig.Debug
	}

	return debug
}

func (f *File) SetListen(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Listen = &s
}

func (f *File) SetDatabasePath(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DatabasePath = &s
}

func (f *File) SetDefaultBrand(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DefaultBrand = &s
}

func (f *File) SetSessionSecret(s string) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.SessionSecret = &s
}

func (f *File) SetDebug(b bool) {
	if f.c == nil {
		panic("config is nil")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Debug = &b
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}
	configString := string(b)

	if strings.TrimSpace(configString) == "" {
		// If the file is empty, return the empty config.
		// Do not make f.c a nil.
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	if f.c == nil {
		panic("config is nil")
	}

	return logrus.Fields{
		"listen":       f.Listen(),
		"databasePath": f.DatabasePath(),
		"defaultBrand": f.DefaultBrand(),
		"debug":        f.Debug(),
	}
}
