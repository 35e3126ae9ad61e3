package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting CraftMarket"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgDatabaseConnected   = "Database connected"
	LogMsgMigrationsSkipped   = "Automatic migrations disabled"
	LogMsgServicesReady       = "Services initialized"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
