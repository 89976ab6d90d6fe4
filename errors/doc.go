/*
Package errors provides semantic error types for mapperconfig.

Common Errors:

	var (
	    ErrNotFound      = errors.New("definition not found")
	    ErrAlreadyExists = errors.New("definition already registered")
	    ErrInvalidConfig = errors.New("invalid configuration")
	    ErrScanFailed    = errors.New("entity scan failed")
	)

A reference to a missing definition is a hard failure and surfaces as a
NoSuchDefinitionError. A malformed element is a ConfigError; whether it
aborts loading depends on the reporting policy of the surrounding reader.

Usage:

	def, err := reg.Get("myConverter")
	if err != nil {
	    if errors.IsNotFound(err) {
	        return fmt.Errorf("converter must be declared before use: %w", err)
	    }
	    return err
	}
*/
package errors
