package utils

import "strings"

var fileNameReplacer = strings.NewReplacer(
	"<", "_", ">", "_", ":", "_", "\"", "_", "/", "_",
	"\\", "_", "|", "_", "?", "_", "*", "_", "\x00", "_",
)

// SanitizeFileName replaces characters that are not allowed in file names on
// common platforms, so the result can never escape its directory.
func SanitizeFileName(fileName string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(fileName))
}
