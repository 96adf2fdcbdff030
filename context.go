package pathcases

type ContextKey string

var (
	// Log context key to specify which logger.
	// Set a context value either to a *logrus.Logger or a *logrus.Entry to use a custom logger.
	// Defaults to logrus.StandardLogger
	Log = ContextKey("logger")
)
