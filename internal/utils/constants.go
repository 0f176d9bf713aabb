package utils

const (
	// ApplicationName is the binary and command name.
	ApplicationName = "textstats"
	// GlobalConfigDirectoryName is the directory under the home directory holding global configuration.
	GlobalConfigDirectoryName = ".textstats"
	// GlobalConfigFileName is the configuration file name inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
	// LocalConfigFileName is the configuration file looked up in the working directory.
	LocalConfigFileName = ".textstats.yaml"
	// ConfigFileType is the format viper parses configuration files as.
	ConfigFileType = "yaml"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors reported by main.
	ApplicationExecutionFailedMessage = "textstats failed"
)
