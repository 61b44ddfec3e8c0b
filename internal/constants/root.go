package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "recipeplanner"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/recipeplanner/recipeplanner.db"
	Version            = "v0.1.0"

	// EnvDBConnection holds a PostgreSQL connection string that may carry a password
	EnvDBConnection = "RECIPEPLANNER_DB_CONNECTION"

	// Store keys; also the top-level field names of an export document
	KeyRecipes  = "recipes"
	KeyMealPlan = "mealPlan"

	// ExportFilename is the default name of an export document
	ExportFilename = "recipe-planner-export.json"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "recipeplanner-"
)

// Session states; the first three are the tabs in display order
const (
	StateRecipes SessionState = iota
	StatePlanner
	StateShopping
	StateRecipeForm
	StateFilterForm
	StateSlotPicker
	StateConfirmDelete
)
