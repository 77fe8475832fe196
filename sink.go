package ratessaver

type (
	// Sink durably records one formatted line at one path. Whether the line
	// is appended to a growing series or replaces the file's contents is a
	// property of the Sink implementation.
	Sink interface {
		Write(path, line string) error
	}

	// PathResolver maps a currency code to the file path its lines go to.
	PathResolver func(currency string) string
)
