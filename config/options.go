package config

const (
	defaultBaseURL           = "http://localhost:8000/api/"
	defaultHTTPTimeout       = 30
	defaultData              = "/var/opt/bookly"
	defaultLogFile           = "bookly-cli.log"
	defaultLogLevel          = "info"
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
	defaultPageSize          = 10
	defaultVersion           = "0.1.0"
)

// Why use mapstructure instead of json, if use json as field tags, it can't recgnize the field, since the viper use mapstructure.
// see: https://pkg.go.dev/github.com/mitchellh/mapstructure#hdr-Field_Tags
type Options struct {
	// BaseURL is the base URL of the bookly backend API
	BaseURL string `mapstructure:"base_url"`
	// HTTPTimeout is the request timeout in seconds
	HTTPTimeout int `mapstructure:"http_timeout"`
	// Data is the directory to store local state (session db, logs)
	Data string `mapstructure:"data"`
	// StateDSN is the path of the local state database (sqlite)
	StateDSN string `mapstructure:"state_dsn"`
	// LogFile is the file to write logs to
	LogFile string `mapstructure:"log_file"`
	// LogLevel is the level of logging to show
	LogLevel string `mapstructure:"log_level"`
	// LogFileMaxSize is the maximum size of the log file before it is rotated
	LogFileMaxSize int `mapstructure:"log_file_max_size"`
	// LogFileMaxBackups is the maximum number of log files to keep
	LogFileMaxBackups int `mapstructure:"log_file_max_backups"`
	// LogFileMaxAge is the maximum number of days to keep a log file
	LogFileMaxAge int `mapstructure:"log_file_max_age"`
	// LogCompress is whether or not to compress the log files
	LogCompress bool `mapstructure:"log_compress"`
	// PageSize is the backend paginator page size, used for page-count math
	PageSize int `mapstructure:"page_size"`
	// Version is the version of the application
	Version string `mapstructure:"version"`
}

func GetDefaultOptions() *Options {
	Opts = &Options{
		BaseURL:           defaultBaseURL,
		HTTPTimeout:       defaultHTTPTimeout,
		Data:              defaultData,
		LogFile:           defaultLogFile,
		LogLevel:          defaultLogLevel,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
		PageSize:          defaultPageSize,
		Version:           defaultVersion,
	}
	return Opts
}
