package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/recipeplanner/internal/backup"
	"github.com/julianstephens/recipeplanner/internal/constants"
	apperrors "github.com/julianstephens/recipeplanner/internal/errors"
	"github.com/julianstephens/recipeplanner/internal/keyring"
	"github.com/julianstephens/recipeplanner/internal/logger"
	"github.com/julianstephens/recipeplanner/internal/models"
	"github.com/julianstephens/recipeplanner/internal/planner"
	"github.com/julianstephens/recipeplanner/internal/storage"
	"github.com/julianstephens/recipeplanner/internal/storage/postgres"
	"github.com/julianstephens/recipeplanner/internal/storage/sqlite"
)

// Context is handed to every command's Run method
type Context struct {
	Store storage.Provider
	Out   io.Writer
	In    io.Reader

	session *planner.Session
}

func NewContext(store storage.Provider) *Context {
	return &Context{
		Store: store,
		Out:   os.Stdout,
		In:    os.Stdin,
	}
}

// Load opens the store, creating it on first use
func (c *Context) Load() error {
	err := c.Store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Initializing storage on first use", "path", c.Store.GetConfigPath())
		err = c.Store.Init()
	}
	if errors.Is(err, storage.ErrNotInitialized) {
		return apperrors.WithHint(err, "run 'recipeplanner init'")
	}
	return err
}

// Session loads the store and opens the planner session once per process
func (c *Context) Session() (*planner.Session, error) {
	if c.session != nil {
		return c.session, nil
	}
	if err := c.Load(); err != nil {
		return nil, err
	}
	s, err := planner.Open(c.Store, planner.WithBeforeImport(c.PerformAutomaticBackup))
	if err != nil {
		return nil, err
	}
	c.session = s
	return s, nil
}

// PerformAutomaticBackup backs up file stores and never fails the caller
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if !backup.Supported(path) {
		logger.Debug("Skipping automatic backup for non-file store")
		return
	}
	if _, err := backup.NewManager(path).CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// Confirm asks a yes/no question on In; anything but y or yes is a no
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// ResolveRecipe finds a recipe by id, or by name when exactly one recipe
// carries it
func ResolveRecipe(s *planner.Session, ref string) (models.Recipe, error) {
	if r, ok := s.Recipe(ref); ok {
		return r, nil
	}
	var matches []models.Recipe
	for _, r := range s.Recipes() {
		if strings.EqualFold(r.Name, ref) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return models.Recipe{}, fmt.Errorf("recipe not found: %s", ref)
	case 1:
		return matches[0], nil
	}
	return models.Recipe{}, fmt.Errorf("%d recipes are named %q, use the recipe ID", len(matches), ref)
}

// ParseTags parses dietary tag names; repeated tags collapse
func ParseTags(values []string) ([]models.DietaryTag, error) {
	tags := make([]models.DietaryTag, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			tag, err := models.ParseDietaryTag(part)
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		}
	}
	return models.NormalizeTags(tags), nil
}

// FormatTags renders tags for list output
func FormatTags(tags []models.DietaryTag) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// OpenStore picks the backend for a --config value: PostgreSQL for
// postgres:// URLs, a JSON file for *.json paths, SQLite otherwise
func OpenStore(config string) (storage.Provider, error) {
	switch {
	case postgres.IsConnString(config):
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, apperrors.WithHint(err,
					"store the full connection string with 'recipeplanner keyring set', export "+constants.EnvDBConnection+", or use .pgpass")
			}
			return nil, err
		}
		return postgres.New(config), nil
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return storage.NewJSONStore(config), nil
	}
	return sqlite.NewStore(config), nil
}

// ResolveStore turns the --config value into a store. When the default path
// is in effect a connection string from the environment or the OS keyring
// takes precedence; those sources may carry a password.
func ResolveStore(config string) (storage.Provider, error) {
	if config == constants.DefaultConfigPath {
		if conn := os.Getenv(constants.EnvDBConnection); conn != "" {
			logger.Debug("Using connection string from environment")
			return trustedPostgres(conn)
		}
		if conn, err := keyring.GetConnectionString(); err == nil {
			logger.Debug("Using connection string from keyring")
			return trustedPostgres(conn)
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("Keyring lookup skipped", "error", err)
		}
	}
	return OpenStore(ExpandPath(config))
}

func trustedPostgres(conn string) (storage.Provider, error) {
	if _, err := postgres.ValidateConnString(conn); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return nil, err
	}
	return postgres.New(conn), nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
