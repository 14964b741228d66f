package messages

// System messages for internal filesystem operations.
const (
	FsutilCreateTempFileFmt = "create temp file for %s: %w"
	FsutilWriteTempFileFmt  = "write temp file for %s: %w"
	FsutilSyncTempFileFmt   = "sync temp file for %s: %w"
	FsutilCloseTempFileFmt  = "close temp file for %s: %w"
	FsutilChmodTempFileFmt  = "chmod temp file for %s: %w"
	FsutilRenameTempFileFmt = "move temp file into place for %s: %w"
	FsutilOpenLockFmt       = "open %s: %w"
	FsutilLockFmt           = "lock %s: %w"
	FsutilLockTimeoutFmt    = "timed out after %s waiting for lock"
	FsutilAppendFmt         = "append to %s: %w"

	ConfigReadFmt           = "failed to read config %s: %w"
	ConfigInvalidFmt        = "invalid config %s: %w"
	ConfigUnrecognizedKeys  = "unrecognized keys in config %s: %w"
	ConfigResolveWorkdirFmt = "resolve working directory: %w"
	ConfigExpandPathFmt     = "expand path %q: %w"
	ConfigAbsPathFmt        = "resolve absolute path %q: %w"
	ConfigPackageRequired   = "package name must not be empty"

	JSONFmtMarshalFmt         = "marshal JSON: %w"
	JSONFmtObjectRequired     = "expected a JSON object"
	JSONFmtTrailingData       = "unexpected data after JSON object"
	JSONFmtUnexpectedTokenFmt = "unexpected JSON token %v"
)
