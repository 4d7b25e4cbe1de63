package logs

const (
	emptyString = ""

	// OwnerMaxLen bounds, in characters, the OS user name used as a default owner.
	OwnerMaxLen = 128
	// UnknownOwner is used when no owner name can be determined.
	UnknownOwner = "unknown"

	timestampLayout = "02-01-2006 15:04:05"
	fieldSeparator  = " | "
	labelWidth      = 9
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgNilService    = "Logger service is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgOutputFile    = "Unable to open log output file."
	errMsgConfigRead    = "Unable to read logging config file."
	errMsgConfigParse   = "Unable to parse logging config file."
	errMsgConfigFormat  = "Unsupported logging config file format."
	errMsgEnvRead       = "Unable to read environment file."
	errMsgMutexCreate   = "Unable to create named mutex."
	errMsgMutexOpen     = "Unable to open named mutex."
	errMsgMutexClose    = "Unable to close named mutex."
	errMsgMutexUnlink   = "Unable to unlink named mutex."
	errMsgNoMutex       = "No named mutex is active."
	errMsgMutexActive   = "A named mutex is already active."
)
