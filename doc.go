// Package logs provides a small synchronous write-through logger that emits
// one fixed-format text line per call.
//
// Line format
//
//	[DD-MM-YYYY HH:MM:SS] | [ LEVELNAME ] | [owner (pid)] | message
//
// Key features
//   - Six ordered levels with a minimum-level filter evaluated per call
//   - Owner defaulting: an empty or blank owner is replaced by the OS user name
//   - Optional mirror to standard error when the primary output is redirected
//   - Optional named mutex that serializes writers across goroutines and
//     across OS processes sharing the same name
//   - Config loading from YAML/JSON files or LOGS_* environment variables
//
// Typical usage
//
//	svc, err := logs.NewService(&logs.Config{Level: "info"})
//	if err != nil { panic(err) }
//	defer svc.Close()
//
//	if err := svc.EnableMutex("/app-logs"); err != nil { panic(err) }
//	svc.Info("App", "value=%d", 42)
//
// The package-level functions (Info, Warn, SetOutput, ...) operate on a
// process-wide default Service.
package logs
