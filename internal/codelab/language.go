package codelab

import "strings"

var languageExtensions = map[string]string{
	".py":    "python",
	".cpp":   "cpp",
	".c":     "c",
	".java":  "java",
	".js":    "javascript",
	".ts":    "typescript",
	".go":    "go",
	".rs":    "rust",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".cs":    "csharp",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".sh":    "bash",
	".r":     "r",
	".m":     "matlab",
	".scala": "scala",
}

// DetectLanguage maps a filename extension to a language name, or
// "unknown" when the extension is not recognized.
func DetectLanguage(filename string) string {
	lower := strings.ToLower(filename)
	for ext, lang := range languageExtensions {
		if strings.HasSuffix(lower, ext) {
			return lang
		}
	}
	return "unknown"
}
