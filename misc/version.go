// Package misc keeps build time information.
package misc

// Set by the linker: -ldflags "-X docxhtml/misc.version=... -X docxhtml/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "docx2html"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit the program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name used for logs, temporary files and reports.
func GetAppName() string {
	return appName
}
