package parquet

import (
	"fmt"
	"strings"

	"github.com/segmentio/parquet-page/format"
)

const (
	DefaultCompression     = format.Uncompressed
	DefaultWriteStatistics = true
)

// The PageConfig type carries configuration options for writing data pages.
//
// PageConfig implements the PageOption interface so it can be used directly
// as argument to the WriteDataPage function when needed, for example:
//
//	page, err := parquet.WriteDataPage(column, descriptor, &parquet.PageConfig{
//		Compression: format.Zstd,
//	})
//
// Zero fields of a PageConfig passed as option leave the current value
// unchanged. Statistics are disabled with the WriteStatistics option.
type PageConfig struct {
	Compression     format.CompressionCodec
	WriteStatistics bool
}

// DefaultPageConfig returns a new PageConfig value initialized with the
// default page configuration.
func DefaultPageConfig() *PageConfig {
	return &PageConfig{
		Compression:     DefaultCompression,
		WriteStatistics: DefaultWriteStatistics,
	}
}

// NewPageConfig constructs a new page configuration applying the options
// passed as arguments on top of the defaults.
func NewPageConfig(options ...PageOption) (*PageConfig, error) {
	config := DefaultPageConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *PageConfig) Apply(options ...PageOption) {
	for _, opt := range options {
		opt.ConfigurePage(c)
	}
}

// ConfigurePage applies configuration options from c to config.
func (c *PageConfig) ConfigurePage(config *PageConfig) {
	*config = PageConfig{
		Compression:     coalesceCompression(c.Compression, config.Compression),
		WriteStatistics: c.WriteStatistics || config.WriteStatistics,
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *PageConfig) Validate() error {
	const baseName = "parquet.(*PageConfig)."
	return errorInvalidConfiguration(
		validateCompression(baseName+"Compression", c.Compression),
	)
}

// PageOption is an interface implemented by types that carry configuration
// options for data pages.
type PageOption interface {
	ConfigurePage(*PageConfig)
}

// Compression creates a configuration option which sets the compression codec
// applied to the page payload.
//
// Defaults to UNCOMPRESSED.
func Compression(codec format.CompressionCodec) PageOption {
	return pageOption(func(config *PageConfig) { config.Compression = codec })
}

// WriteStatistics creates a configuration option which enables or disables
// the statistics block embedded in page headers.
//
// Defaults to true.
func WriteStatistics(enabled bool) PageOption {
	return pageOption(func(config *PageConfig) { config.WriteStatistics = enabled })
}

type pageOption func(*PageConfig)

func (opt pageOption) ConfigurePage(config *PageConfig) { opt(config) }

func coalesceCompression(c1, c2 format.CompressionCodec) format.CompressionCodec {
	if c1 != format.Uncompressed {
		return c1
	}
	return c2
}

func validateCompression(optionName string, codec format.CompressionCodec) error {
	if _, err := LookupCompressionCodec(codec); err != nil {
		return fmt.Errorf("invalid option value: %s: %w", optionName, err)
	}
	return nil
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}

func (err *invalidConfiguration) Unwrap() []error {
	return err.reasons
}
