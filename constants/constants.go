package constants

import "os"

func GetDBPath() string {
	path := os.Getenv("JAZZLINES_DB")
	if path != "" {
		return path
	}
	return "./jazzlines.db"
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DefaultLibrary is where new lines land unless the caller says otherwise.
const DefaultLibrary = "user"

// CaptureGapMillis is the silence gap that closes a captured line.
const CaptureGapMillis = 750

// ExportPPQ is the ticks-per-quarter resolution for exported midi files.
const ExportPPQ = 960
