package nexus

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError represents domain-specific configuration errors
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e ConfigError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field: %s)", e.Field)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType   = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound  = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation    = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment   = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge         = "CONFIG_MERGE_FAILED"
	ErrCodeSourceFailed  = "CONFIG_SOURCE_FAILED"
	ErrCodeSecurityCheck = "CONFIG_SECURITY_CHECK_FAILED"
)

// Source represents an extra configuration source applied after env and file.
type Source interface {
	Load(ctx context.Context, target interface{}) error
	Name() string
	Priority() int
}

// Validator handles configuration validation
type Validator interface {
	Validate(ctx context.Context, cfg interface{}) error
}

// SecurityChecker performs security validation on configuration
type SecurityChecker interface {
	CheckSecurity(ctx context.Context, cfg interface{}) error
}

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DefaultFileName string
	FileName        string
	OnlyEnvironment bool
	Validator       Validator
	SecurityChecker SecurityChecker
	Sources         []Source
	Timeout         time.Duration
}

// Loader reads a config struct from the environment, an optional file and
// any extra sources, then checks and validates it.
type Loader struct {
	options LoaderOptions
}

// LoaderOption is a functional option for configuring the loader
type LoaderOption func(*LoaderOptions)

// WithDefaultFileName sets the file read when present and no explicit file is set
func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileName sets a specific configuration file name
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
	}
}

// WithOnlyEnvironment configures loader to only read from environment
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileName = ""
	}
}

// WithSources adds custom configuration sources
func WithSources(sources ...Source) LoaderOption {
	return func(o *LoaderOptions) {
		o.Sources = append(o.Sources, sources...)
	}
}

// WithTimeout sets the timeout for loading operations
func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.Timeout = timeout
	}
}

// NewLoader creates a new configuration loader with options
func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		Validator:       &DefaultValidator{},
		SecurityChecker: &DefaultSecurityChecker{},
		Timeout:         30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options}
}

// Load loads configuration from all configured sources
func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

// LoadWithContext loads configuration with context support
func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	if l.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.Timeout)
		defer cancel()
	}

	if err := validateInputType(cfg); err != nil {
		return err
	}

	if err := l.loadFromBuiltinSources(cfg); err != nil {
		return err
	}

	if err := l.loadFromCustomSources(ctx, cfg); err != nil {
		return err
	}

	if err := l.options.SecurityChecker.CheckSecurity(ctx, cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeSecurityCheck,
			Message: "security validation failed",
			Cause:   err,
		}
	}

	if err := l.options.Validator.Validate(ctx, cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeValidation,
			Message: "configuration validation failed",
			Cause:   err,
		}
	}

	return nil
}

func validateInputType(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}
	return nil
}

func (l *Loader) loadFromBuiltinSources(cfg interface{}) error {
	// env-default tags are applied here
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeEnvironment,
			Message: "failed to read environment variables",
			Cause:   err,
		}
	}

	if l.options.OnlyEnvironment {
		return nil
	}

	fileName := l.resolveFileName()
	if fileName == "" {
		return nil
	}
	return loadFromFile(cfg, fileName)
}

func loadFromFile(cfg interface{}, fileName string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileNotFound,
			Message: "failed to read configuration file",
			Field:   fileName,
			Cause:   err,
		}
	}

	// file values win over defaults; cleanenv.ReadConfig already lets real
	// environment variables override the file
	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return &ConfigError{
			Code:    ErrCodeMerge,
			Message: "failed to merge configuration sources",
			Cause:   err,
		}
	}

	return nil
}

func (l *Loader) loadFromCustomSources(ctx context.Context, cfg interface{}) error {
	sources := make([]Source, len(l.options.Sources))
	copy(sources, l.options.Sources)
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Priority() > sources[j].Priority()
	})

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := source.Load(ctx, cfg); err != nil {
			return &ConfigError{
				Code:    ErrCodeSourceFailed,
				Message: "failed to load from source",
				Field:   source.Name(),
				Cause:   err,
			}
		}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}

// DefaultValidator validates `validate` struct tags with go-playground/validator
type DefaultValidator struct {
	validator *validator.Validate
}

func (v *DefaultValidator) Validate(_ context.Context, cfg interface{}) error {
	if v.validator == nil {
		v.validator = validator.New(validator.WithRequiredStructEnabled())
	}
	return v.validator.Struct(cfg)
}

// DefaultSecurityChecker rejects sensitive fields holding obvious placeholder
// credentials. Nested structs are walked.
type DefaultSecurityChecker struct{}

var (
	sensitiveFields = []string{"password", "secret", "key", "token", "credential"}
	exposedPatterns = []string{"password", "123456", "admin", "changeme"}
)

func (sc *DefaultSecurityChecker) CheckSecurity(_ context.Context, cfg interface{}) error {
	return sc.checkStruct(reflect.ValueOf(cfg).Elem(), "")
}

func (sc *DefaultSecurityChecker) checkStruct(val reflect.Value, prefix string) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		name := prefix + fieldType.Name

		switch field.Kind() {
		case reflect.Struct:
			if err := sc.checkStruct(field, name+"."); err != nil {
				return err
			}
		case reflect.String:
			if isSensitiveField(fieldType.Name) && isValueExposed(field.String()) {
				return fmt.Errorf("sensitive field %s appears to contain exposed credentials", name)
			}
		}
	}
	return nil
}

func isSensitiveField(fieldName string) bool {
	fieldLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldLower, sensitive) {
			return true
		}
	}
	return false
}

func isValueExposed(value string) bool {
	valueLower := strings.ToLower(value)
	for _, pattern := range exposedPatterns {
		if strings.Contains(valueLower, pattern) {
			return true
		}
	}
	return false
}
